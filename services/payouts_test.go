package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

func newPayoutService() (*PayoutService, *memPayouts) {
	repo := newMemPayouts()
	svc := NewPayoutService(zap.NewNop(), repo)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestPayoutLifecycle(t *testing.T) {
	svc, _ := newPayoutService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePayoutInput{InfluencerID: 1, Amount: decimal.Zero})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	payout, err := svc.Create(ctx, CreatePayoutInput{InfluencerID: 1, Amount: decimal.RequireFromString("250"), Currency: "eur"})
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusPending, payout.Status)
	assert.Equal(t, "EUR", payout.Currency)

	_, err = svc.UpdateStatus(ctx, payout.ID, PayoutStatusInput{Status: models.PayoutStatusPaid})
	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	approved, err := svc.UpdateStatus(ctx, payout.ID, PayoutStatusInput{Status: models.PayoutStatusApproved})
	require.NoError(t, err)
	assert.Nil(t, approved.PaidAt)

	amount := decimal.RequireFromString("300")
	_, err = svc.Update(ctx, payout.ID, UpdatePayoutInput{Amount: &amount})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	paid, err := svc.UpdateStatus(ctx, payout.ID, PayoutStatusInput{Status: models.PayoutStatusPaid, Notes: "wire 8812"})
	require.NoError(t, err)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, fixedNow, *paid.PaidAt)
	assert.Equal(t, "wire 8812", paid.Notes)

	_, err = svc.UpdateStatus(ctx, payout.ID, PayoutStatusInput{Status: models.PayoutStatusCancelled})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	assert.ErrorIs(t, svc.Delete(ctx, payout.ID), apperrors.ErrBadRequest)
}

func TestDeletePendingPayout(t *testing.T) {
	svc, repo := newPayoutService()
	payout, err := svc.Create(context.Background(), CreatePayoutInput{InfluencerID: 2, Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), payout.ID))
	assert.Empty(t, repo.items)
}
