package request

import (
	"encoding/json"

	"github.com/google/uuid"
)

type SubmitEligibilityRequest struct {
	DonorID       uuid.UUID       `json:"donor_id" binding:"required"`
	Questionnaire json.RawMessage `json:"questionnaire" binding:"required"`
}

type DecideEligibilityRequest struct {
	Outcome string `json:"outcome" binding:"required"`
	Notes   string `json:"notes" binding:"required"`
}
