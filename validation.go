package identity

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
)

func validateSignIn(email, password string) error {
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
	}.Filter()

	if err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid sign in payload").
			WithTextCode(textCodeInvalidPayload).
			WithCode(errors.CodeBadRequest)
	}
	return nil
}

func validateSignUp(email, password, displayName string) error {
	err := validation.Errors{
		"email": validation.Validate(email, validation.Required, is.Email),
		// 72 is the bcrypt input limit upstream gateways enforce
		"password":     validation.Validate(password, validation.Required, validation.Length(8, 72)),
		"display_name": validation.Validate(displayName, validation.Required, validation.Length(1, 128)),
	}.Filter()

	if err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid sign up payload").
			WithTextCode(textCodeInvalidPayload).
			WithCode(errors.CodeBadRequest)
	}
	return nil
}
