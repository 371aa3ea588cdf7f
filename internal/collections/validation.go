package collections

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// Validate checks field constraints for collection creation.
func (c CreateCommand) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&c.Description, validation.Length(0, maxDescriptionLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
