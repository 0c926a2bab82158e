// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tenant-vet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCheckRequest() models.CheckRequest {
	return models.CheckRequest{
		ApplicantName: "Jane Doe",
		Email:         "jane@example.com",
		SensitiveID:   "123-45-6789",
		DateOfBirth:   "1990-01-01",
		CheckLevel:    models.CheckLevelStandard,
	}
}

func newTestValidator() *RequestValidator {
	return &RequestValidator{now: func() time.Time {
		return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	}}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerAndValue(t *testing.T) {
	v := newTestValidator()
	req := validCheckRequest()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestValidate_UnknownField(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), validCheckRequest(), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// CheckRequest
// ---------------------------------------------------------------------------

func TestValidateCheckRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CheckRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CheckRequest) {}},
		{name: "phone and address are optional", mutate: func(r *models.CheckRequest) { r.Phone, r.PropertyAddress = "", "" }},
		{name: "empty name", mutate: func(r *models.CheckRequest) { r.ApplicantName = "  " }, wantErr: ErrEmptyApplicantName},
		{name: "empty email", mutate: func(r *models.CheckRequest) { r.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "malformed email", mutate: func(r *models.CheckRequest) { r.Email = "jane.example.com" }, wantErr: ErrInvalidEmail},
		{name: "display name email", mutate: func(r *models.CheckRequest) { r.Email = "Jane <jane@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "empty sensitive id", mutate: func(r *models.CheckRequest) { r.SensitiveID = "" }, wantErr: ErrEmptySensitiveID},
		{name: "separators only", mutate: func(r *models.CheckRequest) { r.SensitiveID = "---" }, wantErr: ErrInvalidSensitiveID},
		{name: "empty date of birth", mutate: func(r *models.CheckRequest) { r.DateOfBirth = "" }, wantErr: ErrEmptyDateOfBirth},
		{name: "wrong date layout", mutate: func(r *models.CheckRequest) { r.DateOfBirth = "01/01/1990" }, wantErr: ErrInvalidDateOfBirth},
		{name: "future date of birth", mutate: func(r *models.CheckRequest) { r.DateOfBirth = "2999-01-01" }, wantErr: ErrInvalidDateOfBirth},
		{name: "empty level", mutate: func(r *models.CheckRequest) { r.CheckLevel = "" }, wantErr: ErrEmptyCheckLevel},
		{name: "unknown level", mutate: func(r *models.CheckRequest) { r.CheckLevel = "platinum" }, wantErr: ErrInvalidCheckLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckRequest()
			tt.mutate(&req)

			err := newTestValidator().Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCheckRequest_FieldScoping(t *testing.T) {
	req := validCheckRequest()
	req.Email = ""

	// only the name is checked, so the missing email is not reported
	err := newTestValidator().Validate(context.Background(), req, FieldApplicantName)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Credentials and subscription
// ---------------------------------------------------------------------------

func TestValidateCredentials(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.User{Login: "alice", Password: "secret"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{Password: "secret"}), ErrEmptyLogin)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.User{Login: "alice"}), ErrEmptyPassword)
}

func TestValidateSubscription(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.SubscriptionRequest{Plan: models.TierProfessional}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.SubscriptionRequest{Plan: "gold"}), ErrInvalidSubscription)
}
