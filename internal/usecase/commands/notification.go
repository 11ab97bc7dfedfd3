package commands

import (
	"context"

	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, id, donorID uuid.UUID) error
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, id, donorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkRead(ctx, id, donorID)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrNotificationNotFound)
	}
	return err
}
