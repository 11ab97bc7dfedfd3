package response

import (
	"time"

	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegistrationResponse struct {
	ID           uuid.UUID  `json:"id"`
	EventID      uuid.UUID  `json:"eventId"`
	EventName    string     `json:"eventName"`
	DonorID      *uuid.UUID `json:"donorId,omitempty"`
	DonorName    *string    `json:"donorName,omitempty"`
	WalkInName   *string    `json:"walkInName,omitempty"`
	SlotStart    time.Time  `json:"slotStart"`
	SlotEnd      time.Time  `json:"slotEnd"`
	Status       string     `json:"status"`
	RejectReason *string    `json:"rejectReason,omitempty"`
	SpecialNotes *string    `json:"specialNotes,omitempty"`
	BloodUsed    bool       `json:"bloodUsed"`
	CheckedInAt  *time.Time `json:"checkedInAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type RegistrationListResponse struct {
	Items      []*RegistrationListItemResponse `json:"items"`
	NextCursor *string                         `json:"nextCursor,omitempty"`
}

type RegistrationListItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	DonorID    *uuid.UUID `json:"donorId,omitempty"`
	DonorName  *string    `json:"donorName,omitempty"`
	WalkInName *string    `json:"walkInName,omitempty"`
	BloodType  *string    `json:"bloodType,omitempty"`
	SlotStart  time.Time  `json:"slotStart"`
	SlotEnd    time.Time  `json:"slotEnd"`
	Status     string     `json:"status"`
	BloodUsed  bool       `json:"bloodUsed"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type CreateRegistrationResponse struct {
	ID uuid.UUID `json:"id"`
}

type CompleteRegistrationResponse struct {
	DonationID uuid.UUID `json:"donationId"`
}

func FromRegistrationView(view *queries.RegistrationView) *RegistrationResponse {
	return &RegistrationResponse{
		ID:           view.ID,
		EventID:      view.EventID,
		EventName:    view.EventName,
		DonorID:      view.DonorID,
		DonorName:    view.DonorName,
		WalkInName:   view.WalkInName,
		SlotStart:    view.SlotStart,
		SlotEnd:      view.SlotEnd,
		Status:       view.Status,
		RejectReason: view.RejectReason,
		SpecialNotes: view.SpecialNotes,
		BloodUsed:    view.BloodUsed,
		CheckedInAt:  view.CheckedInAt,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

func FromRegistrationList(items []*queries.RegistrationListItem, next *queries.Cursor) *RegistrationListResponse {
	resp := &RegistrationListResponse{
		Items: make([]*RegistrationListItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = &RegistrationListItemResponse{
			ID:         item.ID,
			DonorID:    item.DonorID,
			DonorName:  item.DonorName,
			WalkInName: item.WalkInName,
			BloodType:  item.BloodType,
			SlotStart:  item.SlotStart,
			SlotEnd:    item.SlotEnd,
			Status:     item.Status,
			BloodUsed:  item.BloodUsed,
			CreatedAt:  item.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
