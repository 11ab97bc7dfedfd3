package eligibility

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNotesLength = 2000

var (
	ErrInvalidOutcome = errors.New("invalid eligibility outcome")
	ErrNotesRequired  = errors.New("decision notes are mandatory")
	ErrNotesTooLong   = errors.New("decision notes too long")
	ErrAlreadyDecided = errors.New("eligibility request is already decided")
)

// Request is a donor's submitted medical questionnaire awaiting staff review.
// The questionnaire payload is opaque to the service.
type Request struct {
	id            uuid.UUID
	donorID       uuid.UUID
	questionnaire json.RawMessage
	status        ReviewStatus
	outcome       *Outcome
	decisionNotes string
	decidedBy     *uuid.UUID
	decidedAt     *time.Time
	createdAt     time.Time
}

func NewRequest(donorID uuid.UUID, questionnaire json.RawMessage, now time.Time) *Request {
	return &Request{
		id:            uuid.New(),
		donorID:       donorID,
		questionnaire: questionnaire,
		status:        ReviewPending,
		createdAt:     now,
	}
}

func ReconstructRequest(
	id, donorID uuid.UUID,
	questionnaire json.RawMessage,
	status ReviewStatus,
	outcome *Outcome,
	decisionNotes string,
	decidedBy *uuid.UUID,
	decidedAt *time.Time,
	createdAt time.Time,
) *Request {
	return &Request{
		id:            id,
		donorID:       donorID,
		questionnaire: questionnaire,
		status:        status,
		outcome:       outcome,
		decisionNotes: decisionNotes,
		decidedBy:     decidedBy,
		decidedAt:     decidedAt,
		createdAt:     createdAt,
	}
}

// Decide records one of the three outcomes with mandatory notes. A request
// can be decided exactly once.
func (r *Request) Decide(outcome Outcome, notes string, actor uuid.UUID, now time.Time) error {
	if r.status != ReviewPending {
		return ErrAlreadyDecided
	}
	if !outcome.IsValid() {
		return ErrInvalidOutcome
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return ErrNotesRequired
	}
	if len(notes) > MaxNotesLength {
		return ErrNotesTooLong
	}

	r.status = ReviewDecided
	r.outcome = &outcome
	r.decisionNotes = notes
	r.decidedBy = &actor
	t := now
	r.decidedAt = &t
	return nil
}

func (r *Request) ID() uuid.UUID                   { return r.id }
func (r *Request) DonorID() uuid.UUID              { return r.donorID }
func (r *Request) Questionnaire() json.RawMessage  { return r.questionnaire }
func (r *Request) Status() ReviewStatus            { return r.status }
func (r *Request) Outcome() *Outcome               { return r.outcome }
func (r *Request) DecisionNotes() string           { return r.decisionNotes }
func (r *Request) DecidedBy() *uuid.UUID           { return r.decidedBy }
func (r *Request) DecidedAt() *time.Time           { return r.decidedAt }
func (r *Request) CreatedAt() time.Time            { return r.createdAt }
