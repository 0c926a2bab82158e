package validators

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"github.com/MKhiriev/go-tenant-vet/models"
)

const (
	FieldApplicantName = "applicant_name"
	FieldEmail         = "email"
	FieldSensitiveID   = "sensitive_id"
	FieldDateOfBirth   = "date_of_birth"
	FieldCheckLevel    = "check_level"
	FieldLogin         = "login"
	FieldPassword      = "password"
	FieldPlan          = "plan"
)

// DateOfBirthLayout is the only accepted date of birth format.
const DateOfBirthLayout = "2006-01-02"

// RequestValidator validates inbound requests of the check and account
// flows. It returns the first violated rule.
type RequestValidator struct {
	now func() time.Time
}

func NewRequestValidator() Validator {
	return &RequestValidator{now: time.Now}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CheckRequest:
		return v.validateCheckRequest(ctx, value, fields...)
	case *models.CheckRequest:
		return v.validateCheckRequest(ctx, *value, fields...)

	case models.User:
		return v.validateCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateCredentials(ctx, *value, fields...)

	case models.SubscriptionRequest:
		return v.validateSubscription(ctx, value, fields...)
	case *models.SubscriptionRequest:
		return v.validateSubscription(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCheckRequest(ctx context.Context, req models.CheckRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldApplicantName, FieldEmail, FieldSensitiveID, FieldDateOfBirth, FieldCheckLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldApplicantName:
			if strings.TrimSpace(req.ApplicantName) == "" {
				return ErrEmptyApplicantName
			}
		case FieldEmail:
			email := strings.TrimSpace(req.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !govalidator.IsEmail(email) {
				return ErrInvalidEmail
			}
		case FieldSensitiveID:
			if strings.TrimSpace(req.SensitiveID) == "" {
				return ErrEmptySensitiveID
			}
			if alphanumericCount(req.SensitiveID) == 0 {
				return ErrInvalidSensitiveID
			}
		case FieldDateOfBirth:
			if strings.TrimSpace(req.DateOfBirth) == "" {
				return ErrEmptyDateOfBirth
			}
			dob, err := time.Parse(DateOfBirthLayout, req.DateOfBirth)
			if err != nil || !dob.Before(v.now()) {
				return ErrInvalidDateOfBirth
			}
		case FieldCheckLevel:
			if req.CheckLevel == "" {
				return ErrEmptyCheckLevel
			}
			if !req.CheckLevel.Valid() {
				return ErrInvalidCheckLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCredentials(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSubscription(ctx context.Context, req models.SubscriptionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlan}
	}

	for _, f := range fields {
		switch f {
		case FieldPlan:
			if !req.Plan.Valid() {
				return ErrInvalidSubscription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
