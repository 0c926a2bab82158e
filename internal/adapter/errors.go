package adapter

import "errors"

var (
	// ErrOrchestration is wrapped by every error the adapter returns.
	ErrOrchestration = errors.New("orchestration dependency error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("orchestration credential rejected")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	ErrTimeout          = errors.New("orchestration request timed out")
	ErrDecodingResponse = errors.New("cannot decode orchestration response")
	ErrEmptyWorkflowID  = errors.New("empty workflow id")
)
