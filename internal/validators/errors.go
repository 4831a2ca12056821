package validators

import "errors"

// Validation errors returned by [RegistrationValidator]. The messages are
// user-facing: the HTTP layer forwards them verbatim in the JSON response.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameRequired = errors.New("Username is required.")
	ErrUsernameTooShort = errors.New("Username must be at least 3 characters long.")
	ErrPasswordRequired = errors.New("Password is required.")
	ErrPasswordMismatch = errors.New("Passwords do not match.")
	ErrPasswordTooWeak  = errors.New("Password must be at least 8 characters long and include uppercase, lowercase, and a number.")
)
