package service

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrQuotaExceeded   = errors.New("check quota exceeded")
	ErrCheckNotFound   = errors.New("check not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrLoginTaken      = errors.New("login already taken")
	ErrUnknownPlan     = errors.New("unknown subscription plan")
	ErrInvalidQuota    = errors.New("invalid check quota")
	ErrNoWorkflow      = errors.New("check has no orchestration workflow")
	ErrInvalidCallback = errors.New("invalid orchestration callback")

	ErrOrchestrationDisabled = errors.New("orchestration dependency is not configured")
	ErrWorkflowTimedOut      = errors.New("workflow timed out")

	ErrInvalidCredentials      = errors.New("invalid login or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrPasswordHashing         = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
