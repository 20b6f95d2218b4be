package auth

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to classified provider errors. Callers that need to
// branch on a failure class should test these instead of message text.
const (
	TextCodeNotAuthorized     = "NOT_AUTHORIZED"
	TextCodeUserNotFound      = "USER_NOT_FOUND"
	TextCodeUserNotConfirmed  = "USER_NOT_CONFIRMED"
	TextCodeCodeMismatch      = "CODE_MISMATCH"
	TextCodeExpiredCode       = "EXPIRED_CODE"
	TextCodeLimitExceeded     = "LIMIT_EXCEEDED"
	TextCodeInvalidPassword   = "INVALID_PASSWORD"
	TextCodeUsernameExists    = "USERNAME_EXISTS"
	TextCodeAlreadyConfirmed  = "ALREADY_CONFIRMED"
	TextCodeNewPasswordNeeded = "NEW_PASSWORD_REQUIRED"
	TextCodeInvalidParameter  = "INVALID_PARAMETER"
	TextCodeProviderFailure   = "PROVIDER_FAILURE"
	TextCodeSessionExpired    = "SESSION_EXPIRED"
	TextCodeNotConfigured     = "AUTH_NOT_CONFIGURED"
	TextCodeSyncFailed        = "SYNC_FAILED"
)

// ErrNotConfigured is returned by every provider operation when the
// identity provider identifiers are missing.
var ErrNotConfigured = goerrors.New("authentication is not configured", goerrors.CategoryOperation).
	WithTextCode(TextCodeNotConfigured)

// ErrNotAuthenticated is returned when an operation requires a live
// session and none exists.
var ErrNotAuthenticated = goerrors.New("no authenticated user", goerrors.CategoryAuth).
	WithTextCode(TextCodeNotAuthorized).
	WithCode(goerrors.CodeUnauthorized)

// ErrNewPasswordRequired is returned when the provider demands a password
// change before completing sign in. The flow does not support the
// challenge, so the caller can only surface it.
var ErrNewPasswordRequired = goerrors.New("new password required", goerrors.CategoryAuth).
	WithTextCode(TextCodeNewPasswordNeeded).
	WithCode(goerrors.CodeUnauthorized)

// ErrSessionExpired is returned when cached tokens exist but are past
// their expiry.
var ErrSessionExpired = goerrors.New("session expired", goerrors.CategoryAuth).
	WithTextCode(TextCodeSessionExpired).
	WithCode(goerrors.CodeUnauthorized)

type providerErrorClass struct {
	token    string
	textCode string
	category goerrors.Category
	code     int
}

// Ordered: "Current status is CONFIRMED" arrives wrapped in a
// NotAuthorizedException, so it must be matched first.
var providerErrorClasses = []providerErrorClass{
	{"Current status is CONFIRMED", TextCodeAlreadyConfirmed, goerrors.CategoryConflict, goerrors.CodeConflict},
	{"NotAuthorizedException", TextCodeNotAuthorized, goerrors.CategoryAuth, goerrors.CodeUnauthorized},
	{"UserNotFoundException", TextCodeUserNotFound, goerrors.CategoryNotFound, goerrors.CodeNotFound},
	{"UserNotConfirmedException", TextCodeUserNotConfirmed, goerrors.CategoryAuth, goerrors.CodeUnauthorized},
	{"CodeMismatchException", TextCodeCodeMismatch, goerrors.CategoryValidation, goerrors.CodeBadRequest},
	{"ExpiredCodeException", TextCodeExpiredCode, goerrors.CategoryValidation, goerrors.CodeBadRequest},
	{"LimitExceededException", TextCodeLimitExceeded, goerrors.CategoryRateLimit, goerrors.CodeBadRequest},
	{"TooManyRequestsException", TextCodeLimitExceeded, goerrors.CategoryRateLimit, goerrors.CodeBadRequest},
	{"InvalidPasswordException", TextCodeInvalidPassword, goerrors.CategoryValidation, goerrors.CodeBadRequest},
	{"UsernameExistsException", TextCodeUsernameExists, goerrors.CategoryConflict, goerrors.CodeConflict},
	{"AliasExistsException", TextCodeUsernameExists, goerrors.CategoryConflict, goerrors.CodeConflict},
	{"InvalidParameterException", TextCodeInvalidParameter, goerrors.CategoryValidation, goerrors.CodeBadRequest},
}

// WrapProviderError classifies a raw identity provider failure into a
// tagged error. The provider's message text is preserved verbatim so
// existing substring checks keep working alongside text-code checks.
func WrapProviderError(err error) error {
	if err == nil {
		return nil
	}

	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return err
	}

	msg := err.Error()
	for _, class := range providerErrorClasses {
		if strings.Contains(msg, class.token) {
			return goerrors.Wrap(err, class.category, msg).
				WithTextCode(class.textCode).
				WithCode(class.code)
		}
	}

	return goerrors.Wrap(err, goerrors.CategoryOperation, msg).
		WithTextCode(TextCodeProviderFailure)
}

// IsNotAuthorizedError will check for bad credential failures
func IsNotAuthorizedError(err error) bool {
	return matchProviderError(err, TextCodeNotAuthorized, "NotAuthorizedException")
}

// IsUserNotFoundError will check for unknown account failures
func IsUserNotFoundError(err error) bool {
	return matchProviderError(err, TextCodeUserNotFound, "UserNotFoundException")
}

// IsUserNotConfirmedError will check for sign in attempts on pending accounts
func IsUserNotConfirmedError(err error) bool {
	return matchProviderError(err, TextCodeUserNotConfirmed, "UserNotConfirmedException")
}

// IsCodeMismatchError will check for wrong confirmation or reset codes
func IsCodeMismatchError(err error) bool {
	return matchProviderError(err, TextCodeCodeMismatch, "CodeMismatchException")
}

// IsExpiredCodeError will check for stale confirmation or reset codes
func IsExpiredCodeError(err error) bool {
	return matchProviderError(err, TextCodeExpiredCode, "ExpiredCodeException")
}

// IsLimitExceededError will check for provider throttling
func IsLimitExceededError(err error) bool {
	return matchProviderError(err, TextCodeLimitExceeded, "LimitExceededException") ||
		matchProviderError(err, TextCodeLimitExceeded, "TooManyRequestsException")
}

// IsUsernameExistsError will check for duplicate registrations
func IsUsernameExistsError(err error) bool {
	return matchProviderError(err, TextCodeUsernameExists, "UsernameExistsException")
}

// IsAlreadyConfirmedError will check for confirmations of confirmed accounts
func IsAlreadyConfirmedError(err error) bool {
	return matchProviderError(err, TextCodeAlreadyConfirmed, "Current status is CONFIRMED")
}

// IsSessionExpiredError will check for expired cached sessions
func IsSessionExpiredError(err error) bool {
	return matchProviderError(err, TextCodeSessionExpired, "session expired")
}

// IsNewPasswordRequiredError will check for the unsupported password challenge
func IsNewPasswordRequiredError(err error) bool {
	return matchProviderError(err, TextCodeNewPasswordNeeded, "new password required")
}

// IsNotConfiguredError will check for operations attempted without configuration
func IsNotConfiguredError(err error) bool {
	return matchProviderError(err, TextCodeNotConfigured, "not configured")
}

func matchProviderError(err error, textCode, token string) bool {
	if err == nil {
		return false
	}

	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.TextCode != "" {
		return rich.TextCode == textCode
	}

	return strings.Contains(err.Error(), token)
}
