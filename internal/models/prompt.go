package models

import "time"

// Prompt is a reusable text template, optionally linked to a Collection.
// Description and CollectionID are nullable and serialize as null when
// unset. CollectionID may dangle only transiently; collection deletion
// clears it on every linked prompt.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the prompt, including its nullable fields.
func (p Prompt) Clone() Prompt {
	clone := p
	if p.Description != nil {
		v := *p.Description
		clone.Description = &v
	}
	if p.CollectionID != nil {
		v := *p.CollectionID
		clone.CollectionID = &v
	}
	return clone
}
