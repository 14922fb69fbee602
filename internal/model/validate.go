package model

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	payloadValidator *validator.Validate
	validatorOnce    sync.Once
)

// ValidatePayload checks a create/update payload against its struct
// tags. The API write methods call this before the wire so malformed
// payloads fail locally instead of as a server 422.
func ValidatePayload(payload any) error {
	validatorOnce.Do(func() {
		payloadValidator = validator.New()
	})
	return payloadValidator.Struct(payload)
}
