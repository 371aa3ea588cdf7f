package prompts

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 500
)

// Validate checks field constraints for prompt creation.
func (c CreateCommand) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&c.Content, validation.Required),
		validation.Field(&c.Description, validation.Length(0, maxDescriptionLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Validate checks field constraints for a full replace. The same rules
// apply as for creation since the body must carry the complete
// representation.
func (c UpdateCommand) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&c.Content, validation.Required),
		validation.Field(&c.Description, validation.Length(0, maxDescriptionLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Validate checks field constraints for a partial update. Only fields
// present in the body are checked; a present field must still satisfy
// its full constraint.
func (c PatchCommand) Validate() error {
	var rules []*validation.FieldRules

	if c.Title != nil {
		rules = append(rules,
			validation.Field(&c.Title, validation.Required, validation.Length(1, maxTitleLength)),
		)
	}
	if c.Content != nil {
		rules = append(rules,
			validation.Field(&c.Content, validation.Required),
		)
	}
	if c.Description != nil {
		rules = append(rules,
			validation.Field(&c.Description, validation.Length(0, maxDescriptionLength)),
		)
	}

	if len(rules) == 0 {
		return nil
	}
	if err := validation.ValidateStruct(&c, rules...); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
