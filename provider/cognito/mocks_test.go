package cognito_test

import (
	"context"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/stretchr/testify/mock"
)

// MockAPI implements cognito.API
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.SignUpOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.SignUpOutput)
	}
	return out, args.Error(1)
}

func (m *MockAPI) ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.ConfirmSignUpOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.ConfirmSignUpOutput)
	}
	return out, args.Error(1)
}

func (m *MockAPI) ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.ResendConfirmationCodeOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.ResendConfirmationCodeOutput)
	}
	return out, args.Error(1)
}

func (m *MockAPI) InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.InitiateAuthOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.InitiateAuthOutput)
	}
	return out, args.Error(1)
}

func (m *MockAPI) GlobalSignOut(ctx context.Context, params *cip.GlobalSignOutInput, optFns ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.GlobalSignOutOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.GlobalSignOutOutput)
	}
	return out, args.Error(1)
}

func (m *MockAPI) ForgotPassword(ctx context.Context, params *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.ForgotPasswordOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.ForgotPasswordOutput)
	}
	return out, args.Error(1)
}

func (m *MockAPI) ConfirmForgotPassword(ctx context.Context, params *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error) {
	args := m.Called(ctx, params)
	var out *cip.ConfirmForgotPasswordOutput
	if v := args.Get(0); v != nil {
		out = v.(*cip.ConfirmForgotPasswordOutput)
	}
	return out, args.Error(1)
}
