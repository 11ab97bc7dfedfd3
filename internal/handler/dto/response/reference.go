package response

import (
	"time"

	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	HospitalID   *uuid.UUID `json:"hospitalId,omitempty"`
	HospitalName *string    `json:"hospitalName,omitempty"`
	Location     *string    `json:"location,omitempty"`
	StartsAt     time.Time  `json:"startsAt"`
	EndsAt       time.Time  `json:"endsAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type HospitalResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromEventView(view *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:           view.ID,
		Name:         view.Name,
		HospitalID:   view.HospitalID,
		HospitalName: view.HospitalName,
		Location:     view.Location,
		StartsAt:     view.StartsAt,
		EndsAt:       view.EndsAt,
		CreatedAt:    view.CreatedAt,
	}
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	result := make([]*EventResponse, len(views))
	for i, view := range views {
		result[i] = FromEventView(view)
	}
	return result
}

func FromHospitalViews(views []*queries.HospitalView) []*HospitalResponse {
	result := make([]*HospitalResponse, len(views))
	for i, view := range views {
		result[i] = &HospitalResponse{
			ID:        view.ID,
			Name:      view.Name,
			City:      view.City,
			CreatedAt: view.CreatedAt,
		}
	}
	return result
}
