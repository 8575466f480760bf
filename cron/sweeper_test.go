package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homebook/clock"
	"homebook/models"
	"homebook/services/booking"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestSessionSweeperDropsExpired(t *testing.T) {
	fc := clock.NewFake(start)
	store := booking.NewMemorySnapshotStore(fc, 10*time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, models.BookingSession{SessionID: "old"}))

	stop := StartSessionSweeper(fc, time.Minute, nil, store)
	fc.Advance(5 * time.Minute)
	require.NoError(t, store.Save(ctx, models.BookingSession{SessionID: "new"}))
	fc.Advance(5 * time.Minute)

	_, err := store.Load(ctx, "old")
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
	_, err = store.Load(ctx, "new")
	assert.NoError(t, err)
	assert.Zero(t, store.Sweep())

	stop()
	assert.Zero(t, fc.Pending())
}

func TestSessionSweeperExpiresIdleAttempts(t *testing.T) {
	fc := clock.NewFake(start)
	settings := booking.DefaultSettings()
	settings.RandomSeed = 3
	store := booking.NewMemorySnapshotStore(fc, settings.SessionTTL)
	svc := booking.NewBookingSessionService(fc, settings, store, nil, zap.NewNop())
	ctx := context.Background()

	session, err := svc.Initiate(ctx, "u1", "plumber")
	require.NoError(t, err)

	stop := StartSessionSweeper(fc, time.Minute, nil, svc, store)
	defer stop()
	fc.Advance(32 * time.Minute)

	got, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionExpired, got.Status)

	_, err = svc.Answer(ctx, session.SessionID, "Leaking pipe")
	assert.ErrorIs(t, err, booking.ErrSessionClosed)

	// the final snapshot ages out of the store one TTL later
	fc.Advance(time.Hour)
	_, err = svc.Get(ctx, session.SessionID)
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}
