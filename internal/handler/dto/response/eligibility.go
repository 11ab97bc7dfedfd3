package response

import (
	"encoding/json"
	"time"

	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type EligibilityResponse struct {
	ID            uuid.UUID       `json:"id"`
	DonorID       uuid.UUID       `json:"donorId"`
	DonorName     string          `json:"donorName"`
	Questionnaire json.RawMessage `json:"questionnaire"`
	Status        string          `json:"status"`
	Outcome       *string         `json:"outcome,omitempty"`
	DecisionNotes *string         `json:"decisionNotes,omitempty"`
	DecidedBy     *uuid.UUID      `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time      `json:"decidedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type EligibilityListResponse struct {
	Items      []*EligibilityResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

type SubmitEligibilityResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromEligibilityView(view *queries.EligibilityView) *EligibilityResponse {
	return &EligibilityResponse{
		ID:            view.ID,
		DonorID:       view.DonorID,
		DonorName:     view.DonorName,
		Questionnaire: view.Questionnaire,
		Status:        view.Status,
		Outcome:       view.Outcome,
		DecisionNotes: view.DecisionNotes,
		DecidedBy:     view.DecidedBy,
		DecidedAt:     view.DecidedAt,
		CreatedAt:     view.CreatedAt,
	}
}

func FromEligibilityList(items []*queries.EligibilityView, next *queries.Cursor) *EligibilityListResponse {
	resp := &EligibilityListResponse{
		Items: make([]*EligibilityResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = FromEligibilityView(item)
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
