package models

import "time"

// Collection groups related prompts under a name. Collections are
// immutable after creation; there is no update operation.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	clone := c
	if c.Description != nil {
		v := *c.Description
		clone.Description = &v
	}
	return clone
}
