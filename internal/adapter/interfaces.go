// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport towards the external orchestration
// dependency that runs multi-source background-check workflows.
//
// The primary abstraction is [OrchestrationAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPOrchestrationAdapter]) built on resty.
//
// Every failure returned by the adapter wraps [ErrOrchestration]. Non-2xx
// responses are additionally mapped by mapHTTPError to status-specific
// sentinels (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401) so that
// callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tenant-vet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/orchestration_adapter_mock.go -package=mock

// OrchestrationAdapter defines communication with the orchestration
// dependency. Implementations are responsible for serialisation, credential
// header management, per-call timeouts and mapping transport-level errors to
// the sentinel values defined in this package.
type OrchestrationAdapter interface {
	// Dispatch starts a background-check workflow for the applicant described
	// by req and returns the provider's answer. The raw response body is kept
	// in [models.WorkflowResult.Raw].
	Dispatch(ctx context.Context, req models.DispatchRequest) (models.WorkflowResult, error)

	// WorkflowStatus reads the current state of a previously dispatched
	// workflow. It never starts or changes anything on the dependency.
	WorkflowStatus(ctx context.Context, workflowID string) (models.WorkflowStatus, error)

	// Health checks the dependency. The returned [models.DependencyHealth] is
	// always populated, also when err is non-nil.
	Health(ctx context.Context) (models.DependencyHealth, error)
}
