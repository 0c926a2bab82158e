package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyApplicantName  = errors.New("applicant name is required")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptySensitiveID    = errors.New("sensitive identifier is required")
	ErrInvalidSensitiveID  = errors.New("sensitive identifier must contain letters or digits")
	ErrEmptyDateOfBirth    = errors.New("date of birth is required")
	ErrInvalidDateOfBirth  = errors.New("date of birth must be a past date in YYYY-MM-DD format")
	ErrEmptyCheckLevel     = errors.New("check level is required")
	ErrInvalidCheckLevel   = errors.New("invalid check level")
	ErrEmptyLogin          = errors.New("login is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrInvalidSubscription = errors.New("unknown subscription plan")
)
