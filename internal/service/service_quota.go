package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/store"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// quotaLedger is the concrete implementation of QuotaLedger. Admission is
// delegated to the store's conditional decrement, so the check against the
// remaining allowance and its decrement are one step.
type quotaLedger struct {
	users store.UserStore

	logger *logger.Logger
}

func NewQuotaLedger(users store.UserStore, logger *logger.Logger) QuotaLedger {
	return &quotaLedger{
		users:  users,
		logger: logger,
	}
}

func (q *quotaLedger) Admit(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := q.users.DecrementQuota(ctx, userID)
	switch {
	case errors.Is(err, store.ErrQuotaExhausted):
		log.Info().Int64("user_id", userID).Msg("check submission denied: quota exhausted")
		return models.User{}, ErrQuotaExceeded
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*quotaLedger.Admit").Int64("user_id", userID).Msg("quota admission failed")
		return models.User{}, fmt.Errorf("quota admission failed: %w", err)
	}

	log.Debug().Int64("user_id", userID).Int("checks_remaining", user.ChecksRemaining).Msg("check submission admitted")
	return user, nil
}

func (q *quotaLedger) Refund(ctx context.Context, userID int64) error {
	if err := q.users.RestoreQuota(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("quota refund failed: %w", err)
	}
	return nil
}

func (q *quotaLedger) SetPlan(ctx context.Context, userID int64, tier models.Tier, checksRemaining int) (models.User, error) {
	if !tier.Valid() {
		return models.User{}, ErrUnknownPlan
	}
	if checksRemaining < models.UnlimitedChecks {
		return models.User{}, ErrInvalidQuota
	}

	user, err := q.users.SetPlan(ctx, userID, tier, checksRemaining)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("plan change failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", userID).
		Str("tier", string(tier)).
		Int("checks_remaining", checksRemaining).
		Msg("plan changed")

	return user, nil
}
