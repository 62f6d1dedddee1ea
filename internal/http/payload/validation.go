package payload

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
)

var errInvalidUUID error = errors.New("must be a valid UUID")

// isUUID accepts empty values so it composes with validation.Required.
var isUUID = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if err := uuid.Validate(s); err != nil {
		return errInvalidUUID
	}
	return nil
})

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
