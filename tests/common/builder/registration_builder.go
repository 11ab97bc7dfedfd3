//go:build unit || e2e

package builder

import (
	"time"

	domreg "donorhub/internal/domain/registration"
	reqdto "donorhub/internal/handler/dto/request"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegistrationBuilder struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	EventName    string
	DonorID      *uuid.UUID
	DonorName    string
	WalkInName   string
	WalkInPhone  string
	SlotStart    time.Time
	SlotEnd      time.Time
	Status       domreg.Status
	SpecialNotes string
	BloodUsed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewRegistrationBuilder() *RegistrationBuilder {
	now := time.Now()
	donorID := uuid.New()
	return &RegistrationBuilder{
		ID:           uuid.New(),
		EventID:      uuid.New(),
		EventName:    "Spring Blood Drive",
		DonorID:      &donorID,
		DonorName:    "Test Donor",
		SlotStart:    now.Add(24 * time.Hour),
		SlotEnd:      now.Add(25 * time.Hour),
		Status:       domreg.StatusPending,
		SpecialNotes: "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(b)
	return b
}

func (b *RegistrationBuilder) AsWalkIn(name, phone string) *RegistrationBuilder {
	b.DonorID = nil
	b.WalkInName = name
	b.WalkInPhone = phone
	return b
}

func (b *RegistrationBuilder) WithStatus(s domreg.Status) *RegistrationBuilder {
	b.Status = s
	return b
}

func (b *RegistrationBuilder) BuildDomain() (*domreg.Registration, error) {
	slot, err := domreg.NewTimeSlot(b.SlotStart, b.SlotEnd)
	if err != nil {
		return nil, err
	}

	var walkIn *domreg.WalkIn
	if b.WalkInName != "" {
		w, werr := domreg.NewWalkIn(b.WalkInName, b.WalkInPhone)
		if werr != nil {
			return nil, werr
		}
		walkIn = &w
	}

	return domreg.NewRegistration(b.EventID, b.DonorID, walkIn, slot, domreg.NewNotes(b.SpecialNotes), b.CreatedAt)
}

// BuildDomainAt reconstructs a registration already sitting in b.Status,
// bypassing the transition rules the way a database load does.
func (b *RegistrationBuilder) BuildDomainAt() *domreg.Registration {
	slot, _ := domreg.NewTimeSlot(b.SlotStart, b.SlotEnd)

	var walkIn *domreg.WalkIn
	if b.WalkInName != "" {
		w, _ := domreg.NewWalkIn(b.WalkInName, b.WalkInPhone)
		walkIn = &w
	}

	var checkedInAt *time.Time
	if b.Status == domreg.StatusCheckedIn || b.Status == domreg.StatusCompleted {
		t := b.CreatedAt
		checkedInAt = &t
	}

	return domreg.ReconstructRegistration(
		b.ID, b.EventID, b.DonorID, walkIn, slot, b.Status,
		domreg.Reason{}, domreg.NewNotes(b.SpecialNotes),
		b.BloodUsed, checkedInAt, nil, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *RegistrationBuilder) BuildCreateRequestDTO() reqdto.CreateRegistrationRequest {
	return reqdto.CreateRegistrationRequest{
		EventID:      b.EventID,
		DonorID:      b.DonorID,
		WalkInName:   b.WalkInName,
		WalkInPhone:  b.WalkInPhone,
		SlotStart:    b.SlotStart,
		SlotEnd:      b.SlotEnd,
		SpecialNotes: b.SpecialNotes,
	}
}

func (b *RegistrationBuilder) BuildCompleteRequestDTO() reqdto.CompleteRegistrationRequest {
	expiry := time.Now().Add(42 * 24 * time.Hour)
	return reqdto.CompleteRegistrationRequest{
		SerialNumber: "SN-0001",
		VolumeML:     450,
		BloodType:    "A+",
		ExpiryDate:   &expiry,
	}
}

func (b *RegistrationBuilder) BuildCompleteCommand() commands.CompleteRegistrationRequest {
	expiry := time.Now().Add(42 * 24 * time.Hour)
	return commands.CompleteRegistrationRequest{
		SerialNumber: "SN-0001",
		VolumeML:     450,
		BloodType:    "A+",
		ExpiryDate:   &expiry,
	}
}

func (b *RegistrationBuilder) BuildView() *queries.RegistrationView {
	var donorName *string
	if b.DonorID != nil {
		name := b.DonorName
		donorName = &name
	}
	var walkInName *string
	if b.WalkInName != "" {
		walkInName = &b.WalkInName
	}
	return &queries.RegistrationView{
		ID:         b.ID,
		EventID:    b.EventID,
		EventName:  b.EventName,
		DonorID:    b.DonorID,
		DonorName:  donorName,
		WalkInName: walkInName,
		SlotStart:  b.SlotStart,
		SlotEnd:    b.SlotEnd,
		Status:     string(b.Status),
		BloodUsed:  b.BloodUsed,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *RegistrationBuilder) BuildListItem() *queries.RegistrationListItem {
	var donorName *string
	if b.DonorID != nil {
		name := b.DonorName
		donorName = &name
	}
	return &queries.RegistrationListItem{
		ID:        b.ID,
		DonorID:   b.DonorID,
		DonorName: donorName,
		SlotStart: b.SlotStart,
		SlotEnd:   b.SlotEnd,
		Status:    string(b.Status),
		BloodUsed: b.BloodUsed,
		CreatedAt: b.CreatedAt,
	}
}
