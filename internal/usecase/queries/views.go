package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RegistrationView struct {
	ID           uuid.UUID  `json:"id"`
	EventID      uuid.UUID  `json:"event_id"`
	EventName    string     `json:"event_name"`
	DonorID      *uuid.UUID `json:"donor_id,omitempty"`
	DonorName    *string    `json:"donor_name,omitempty"`
	WalkInName   *string    `json:"walk_in_name,omitempty"`
	SlotStart    time.Time  `json:"slot_start"`
	SlotEnd      time.Time  `json:"slot_end"`
	Status       string     `json:"status"`
	RejectReason *string    `json:"reject_reason,omitempty"`
	SpecialNotes *string    `json:"special_notes,omitempty"`
	BloodUsed    bool       `json:"blood_used"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type RegistrationListItem struct {
	ID         uuid.UUID  `json:"id"`
	DonorID    *uuid.UUID `json:"donor_id,omitempty"`
	DonorName  *string    `json:"donor_name,omitempty"`
	WalkInName *string    `json:"walk_in_name,omitempty"`
	BloodType  *string    `json:"blood_type,omitempty"`
	SlotStart  time.Time  `json:"slot_start"`
	SlotEnd    time.Time  `json:"slot_end"`
	Status     string     `json:"status"`
	BloodUsed  bool       `json:"blood_used"`
	CreatedAt  time.Time  `json:"created_at"`
}

type DonationView struct {
	ID               uuid.UUID  `json:"id"`
	RegistrationID   uuid.UUID  `json:"registration_id"`
	DonorID          *uuid.UUID `json:"donor_id,omitempty"`
	DonorName        *string    `json:"donor_name,omitempty"`
	BloodType        string     `json:"blood_type"`
	VolumeML         int32      `json:"volume_ml"`
	SerialNumber     string     `json:"serial_number"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	Status           string     `json:"status"`
	Used             bool       `json:"used"`
	UsedHospitalID   *uuid.UUID `json:"used_hospital_id,omitempty"`
	UsedHospitalName *string    `json:"used_hospital_name,omitempty"`
	UsedAt           *time.Time `json:"used_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type InventoryCounterView struct {
	ID            uuid.UUID `json:"id"`
	HospitalID    uuid.UUID `json:"hospital_id"`
	HospitalName  string    `json:"hospital_name"`
	BloodType     string    `json:"blood_type"`
	Units         int32     `json:"units"`
	MinimumStock  int32     `json:"minimum_stock"`
	CriticalStock int32     `json:"critical_stock"`
	BelowMinimum  bool      `json:"below_minimum"`
	Critical      bool      `json:"critical"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EligibilityView struct {
	ID            uuid.UUID       `json:"id"`
	DonorID       uuid.UUID       `json:"donor_id"`
	DonorName     string          `json:"donor_name"`
	Questionnaire json.RawMessage `json:"questionnaire"`
	Status        string          `json:"status"`
	Outcome       *string         `json:"outcome,omitempty"`
	DecisionNotes *string         `json:"decision_notes,omitempty"`
	DecidedBy     *uuid.UUID      `json:"decided_by,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID       `json:"id"`
	DonorID   uuid.UUID       `json:"donor_id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Payload   json.RawMessage `json:"payload"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

type HospitalView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EventView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	HospitalID   *uuid.UUID `json:"hospital_id,omitempty"`
	HospitalName *string    `json:"hospital_name,omitempty"`
	Location     *string    `json:"location,omitempty"`
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       time.Time  `json:"ends_at"`
	CreatedAt    time.Time  `json:"created_at"`
}
