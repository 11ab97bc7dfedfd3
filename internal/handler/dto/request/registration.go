package request

import (
	"time"

	"donorhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	EventID      uuid.UUID  `json:"event_id" binding:"required"`
	DonorID      *uuid.UUID `json:"donor_id,omitempty"`
	WalkInName   string     `json:"walk_in_name,omitempty"`
	WalkInPhone  string     `json:"walk_in_phone,omitempty"`
	SlotStart    time.Time  `json:"slot_start" binding:"required"`
	SlotEnd      time.Time  `json:"slot_end" binding:"required"`
	SpecialNotes string     `json:"special_notes,omitempty"`
}

func (r CreateRegistrationRequest) ToCommand() commands.CreateRegistrationRequest {
	return commands.CreateRegistrationRequest{
		EventID:      r.EventID,
		DonorID:      r.DonorID,
		WalkInName:   r.WalkInName,
		WalkInPhone:  r.WalkInPhone,
		SlotStart:    r.SlotStart,
		SlotEnd:      r.SlotEnd,
		SpecialNotes: r.SpecialNotes,
	}
}

type RejectRegistrationRequest struct {
	Reason string `json:"reason,omitempty"`
}

type CompleteRegistrationRequest struct {
	SerialNumber string     `json:"serial_number" binding:"required"`
	VolumeML     int32      `json:"volume_ml" binding:"required"`
	BloodType    string     `json:"blood_type,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date" binding:"required"`
}

func (r CompleteRegistrationRequest) ToCommand() commands.CompleteRegistrationRequest {
	return commands.CompleteRegistrationRequest{
		SerialNumber: r.SerialNumber,
		VolumeML:     r.VolumeML,
		BloodType:    r.BloodType,
		ExpiryDate:   r.ExpiryDate,
	}
}
