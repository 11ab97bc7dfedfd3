//go:build unit

package eligibility_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"donorhub/internal/domain/eligibility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest() *eligibility.Request {
	return eligibility.NewRequest(uuid.New(), json.RawMessage(`{"recent_travel":false}`), time.Now())
}

func TestDecide(t *testing.T) {
	t.Run("records outcome with notes and audit trail", func(t *testing.T) {
		req := newPendingRequest()
		actor := uuid.New()
		now := time.Now()

		require.NoError(t, req.Decide(eligibility.OutcomeEligible, "all answers clear", actor, now))

		assert.Equal(t, eligibility.ReviewDecided, req.Status())
		assert.Equal(t, eligibility.OutcomeEligible, *req.Outcome())
		assert.Equal(t, "all answers clear", req.DecisionNotes())
		assert.Equal(t, actor, *req.DecidedBy())
		assert.Equal(t, now, *req.DecidedAt())
	})

	t.Run("each outcome is accepted", func(t *testing.T) {
		for _, outcome := range []eligibility.Outcome{
			eligibility.OutcomeEligible,
			eligibility.OutcomeTemporarilyDeferred,
			eligibility.OutcomePermanentlyIneligible,
		} {
			req := newPendingRequest()
			assert.NoError(t, req.Decide(outcome, "reviewed", uuid.New(), time.Now()))
		}
	})

	t.Run("can be decided exactly once", func(t *testing.T) {
		req := newPendingRequest()
		require.NoError(t, req.Decide(eligibility.OutcomeEligible, "ok", uuid.New(), time.Now()))

		err := req.Decide(eligibility.OutcomeTemporarilyDeferred, "changed my mind", uuid.New(), time.Now())
		assert.ErrorIs(t, err, eligibility.ErrAlreadyDecided)
		assert.Equal(t, eligibility.OutcomeEligible, *req.Outcome())
	})

	t.Run("rejects unknown outcome", func(t *testing.T) {
		req := newPendingRequest()
		err := req.Decide(eligibility.Outcome("maybe"), "notes", uuid.New(), time.Now())
		assert.ErrorIs(t, err, eligibility.ErrInvalidOutcome)
		assert.Equal(t, eligibility.ReviewPending, req.Status())
	})

	t.Run("notes are mandatory", func(t *testing.T) {
		req := newPendingRequest()
		err := req.Decide(eligibility.OutcomeEligible, "   ", uuid.New(), time.Now())
		assert.ErrorIs(t, err, eligibility.ErrNotesRequired)
	})

	t.Run("notes length is bounded", func(t *testing.T) {
		req := newPendingRequest()
		err := req.Decide(eligibility.OutcomeEligible, strings.Repeat("a", eligibility.MaxNotesLength+1), uuid.New(), time.Now())
		assert.ErrorIs(t, err, eligibility.ErrNotesTooLong)
	})
}
