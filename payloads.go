package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginParams holds credentials for sign in
type LoginParams struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginParams) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// SignupParams holds values for a new registration
type SignupParams struct {
	Email    string `form:"email" json:"email"`
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will validate the payload
func (r SignupParams) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 256)),
	)
}

// ConfirmSignupParams holds values for registration confirmation
type ConfirmSignupParams struct {
	Email string `form:"email" json:"email"`
	Code  string `form:"code" json:"code"`
}

// Validate will validate the payload
func (r ConfirmSignupParams) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Code, validation.Required, validation.Length(4, 10), is.Digit),
	)
}

// ForgotPasswordParams holds values for starting a password reset
type ForgotPasswordParams struct {
	Email string `form:"email" json:"email"`
}

// Validate will validate the payload
func (r ForgotPasswordParams) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// ResetPasswordParams holds values for completing a password reset
type ResetPasswordParams struct {
	Email       string `form:"email" json:"email"`
	Code        string `form:"code" json:"code"`
	NewPassword string `form:"new_password" json:"new_password"`
}

// Validate will validate the payload
func (r ResetPasswordParams) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Code, validation.Required, validation.Length(4, 10), is.Digit),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 256)),
	)
}
