//go:build unit

package notify_test

import (
	"context"
	"errors"
	"testing"

	"donorhub/internal/infra"
	infradb "donorhub/internal/infra/db"
	"donorhub/internal/usecase/notify"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationRepo struct {
	created   []shared.NewNotification
	createErr error
}

func (s *stubNotificationRepo) Create(_ context.Context, n shared.NewNotification) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	s.created = append(s.created, n)
	return uuid.New(), nil
}

func (s *stubNotificationRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubReads struct {
	shared.CommandReads
	donorErr error
}

func (s *stubReads) DonorByID(_ context.Context, id uuid.UUID) (*shared.DonorSnapshot, error) {
	if s.donorErr != nil {
		return nil, s.donorErr
	}
	return &shared.DonorSnapshot{ID: id, FullName: "Test Donor"}, nil
}

type stubTx struct {
	shared.Tx
	notifications *stubNotificationRepo
}

func (s *stubTx) Notifications() shared.NotificationRepository {
	return s.notifications
}

type stubUoW struct {
	reads     *stubReads
	tx        *stubTx
	withinErr error
}

func (s *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if s.withinErr != nil {
		return s.withinErr
	}
	return fn(ctx, s.tx)
}

func (s *stubUoW) WithDB(context.Context, func(ctx context.Context, db infradb.DBTX) error) error {
	return nil
}

func (s *stubUoW) CommandReads() shared.CommandReads {
	return s.reads
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		reads: &stubReads{},
		tx:    &stubTx{notifications: &stubNotificationRepo{}},
	}
}

func TestNotifyDonor(t *testing.T) {
	ctx := context.Background()

	t.Run("writes a feed entry with encoded payload", func(t *testing.T) {
		uow := newStubUoW()
		donorID := uuid.New()

		notify.NewFeedDispatcher(uow).NotifyDonor(ctx, &donorID, notify.Notification{
			Type:    notify.TypeStatusChange,
			Title:   "Registration approved",
			Message: "See you at the drive",
			Payload: map[string]any{"status": "approved"},
		})

		require.Len(t, uow.tx.notifications.created, 1)
		got := uow.tx.notifications.created[0]
		assert.Equal(t, donorID, got.DonorID)
		assert.Equal(t, notify.TypeStatusChange, got.Type)
		assert.JSONEq(t, `{"status":"approved"}`, string(got.Payload))
	})

	t.Run("nil payload becomes an empty object", func(t *testing.T) {
		uow := newStubUoW()
		donorID := uuid.New()

		notify.NewFeedDispatcher(uow).NotifyDonor(ctx, &donorID, notify.Notification{
			Type:  notify.TypeDonationUsed,
			Title: "Donation used",
		})

		require.Len(t, uow.tx.notifications.created, 1)
		assert.Equal(t, "{}", string(uow.tx.notifications.created[0].Payload))
	})

	t.Run("walk-in recipient is a no-op", func(t *testing.T) {
		uow := newStubUoW()

		notify.NewFeedDispatcher(uow).NotifyDonor(ctx, nil, notify.Notification{Type: notify.TypeStatusChange})

		assert.Empty(t, uow.tx.notifications.created)
	})

	t.Run("unknown donor is skipped silently", func(t *testing.T) {
		uow := newStubUoW()
		uow.reads.donorErr = infra.WrapRepoErr("donor not found", nil, infra.KindNotFound)
		donorID := uuid.New()

		notify.NewFeedDispatcher(uow).NotifyDonor(ctx, &donorID, notify.Notification{Type: notify.TypeStatusChange})

		assert.Empty(t, uow.tx.notifications.created)
	})

	t.Run("delivery failure is swallowed", func(t *testing.T) {
		uow := newStubUoW()
		uow.tx.notifications.createErr = errors.New("insert failed")
		donorID := uuid.New()

		// must not panic or propagate the error
		notify.NewFeedDispatcher(uow).NotifyDonor(ctx, &donorID, notify.Notification{Type: notify.TypeEligibilityDecided})

		assert.Empty(t, uow.tx.notifications.created)
	})
}
