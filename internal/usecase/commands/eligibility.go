package commands

import (
	"context"
	"encoding/json"
	"errors"

	"donorhub/internal/domain/eligibility"
	"donorhub/internal/infra"
	"donorhub/internal/pkg/clock"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/usecase/notify"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEligibilityNotFound  = errs.New("eligibility request not found")
	ErrEligibilityConflict  = errs.New("eligibility request already decided")
	ErrDonorNotFound        = errs.New("donor not found")
	ErrInvalidQuestionnaire = errs.New("questionnaire must be a JSON document")
)

type DecideEligibilityRequest struct {
	Outcome string
	Notes   string
}

type EligibilityCommands interface {
	Submit(ctx context.Context, donorID uuid.UUID, questionnaire json.RawMessage) (uuid.UUID, error)
	Decide(ctx context.Context, id uuid.UUID, req DecideEligibilityRequest, actor uuid.UUID) error
}

type eligibilityUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
}

func NewEligibilityUseCase(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock) EligibilityCommands {
	return &eligibilityUseCaseImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
	}
}

// Submit stores the questionnaire as an opaque JSON document; the service
// never interprets individual answers.
func (uc *eligibilityUseCaseImpl) Submit(ctx context.Context, donorID uuid.UUID, questionnaire json.RawMessage) (uuid.UUID, error) {
	if len(questionnaire) == 0 || !json.Valid(questionnaire) {
		return uuid.Nil, ErrInvalidQuestionnaire
	}

	req := eligibility.NewRequest(donorID, questionnaire, uc.clock.Now())

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().DonorByID(ctx, donorID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrDonorNotFound
			}
			return rerr
		}

		id, rerr := tx.Eligibility().Create(ctx, req)
		if rerr != nil {
			return rerr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return createdID, nil
}

func (uc *eligibilityUseCaseImpl) Decide(ctx context.Context, id uuid.UUID, req DecideEligibilityRequest, actor uuid.UUID) error {
	now := uc.clock.Now()

	outcome, err := eligibility.NewOutcome(req.Outcome)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	var snap *shared.EligibilitySnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, rerr := tx.Reads().EligibilityByID(ctx, id)
		if rerr != nil {
			return rerr
		}
		snap = s

		request := s.ToDomain()
		if derr := request.Decide(outcome, req.Notes, actor, now); derr != nil {
			if errors.Is(derr, eligibility.ErrAlreadyDecided) {
				return errs.Mark(derr, ErrEligibilityConflict)
			}
			return errs.Mark(derr, ErrDomainValidation)
		}

		return tx.Eligibility().Decide(ctx, id, outcome, request.DecisionNotes(), actor, now)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrEligibilityNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, ErrEligibilityConflict)
		default:
			return err
		}
	}

	donorID := snap.DonorID
	uc.dispatcher.NotifyDonor(ctx, &donorID, notify.Notification{
		Type:    notify.TypeEligibilityDecided,
		Title:   "Eligibility review complete",
		Message: "Your eligibility questionnaire has been reviewed.",
		Payload: map[string]any{
			"request_id": id.String(),
			"outcome":    string(outcome),
		},
	})

	return nil
}
