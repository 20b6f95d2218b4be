package auth_test

import (
	"testing"

	"github.com/rapidphotoflow/go-auth"
	"github.com/stretchr/testify/assert"
)

func TestLoginParamsValidate(t *testing.T) {
	assert.NoError(t, auth.LoginParams{Email: "pepe@example.com", Password: "secret"}.Validate())
	assert.Error(t, auth.LoginParams{Email: "not-an-email", Password: "secret"}.Validate())
	assert.Error(t, auth.LoginParams{Email: "pepe@example.com"}.Validate())
}

func TestSignupParamsValidate(t *testing.T) {
	valid := auth.SignupParams{Email: "pepe@example.com", Username: "pepe", Password: "secret-password"}
	assert.NoError(t, valid.Validate())

	short := valid
	short.Password = "short"
	assert.Error(t, short.Validate())

	noUsername := valid
	noUsername.Username = ""
	assert.Error(t, noUsername.Validate())
}

func TestConfirmSignupParamsValidate(t *testing.T) {
	assert.NoError(t, auth.ConfirmSignupParams{Email: "pepe@example.com", Code: "123456"}.Validate())
	assert.Error(t, auth.ConfirmSignupParams{Email: "pepe@example.com", Code: "abc"}.Validate())
	assert.Error(t, auth.ConfirmSignupParams{Code: "123456"}.Validate())
}

func TestResetPasswordParamsValidate(t *testing.T) {
	valid := auth.ResetPasswordParams{
		Email:       "pepe@example.com",
		Code:        "123456",
		NewPassword: "new-secret-password",
	}
	assert.NoError(t, valid.Validate())

	weak := valid
	weak.NewPassword = "short"
	assert.Error(t, weak.Validate())
}
