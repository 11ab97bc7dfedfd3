package response

import (
	"time"

	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DonationResponse struct {
	ID               uuid.UUID  `json:"id"`
	RegistrationID   uuid.UUID  `json:"registrationId"`
	DonorID          *uuid.UUID `json:"donorId,omitempty"`
	DonorName        *string    `json:"donorName,omitempty"`
	BloodType        string     `json:"bloodType"`
	VolumeML         int32      `json:"volumeMl"`
	SerialNumber     string     `json:"serialNumber"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`
	Status           string     `json:"status"`
	Used             bool       `json:"used"`
	UsedHospitalID   *uuid.UUID `json:"usedHospitalId,omitempty"`
	UsedHospitalName *string    `json:"usedHospitalName,omitempty"`
	UsedAt           *time.Time `json:"usedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type MarkUsedResponse struct {
	HospitalID   uuid.UUID `json:"hospitalId"`
	HospitalName string    `json:"hospitalName"`
	Resolution   string    `json:"resolution"`
}

func FromDonationView(view *queries.DonationView) *DonationResponse {
	return &DonationResponse{
		ID:               view.ID,
		RegistrationID:   view.RegistrationID,
		DonorID:          view.DonorID,
		DonorName:        view.DonorName,
		BloodType:        view.BloodType,
		VolumeML:         view.VolumeML,
		SerialNumber:     view.SerialNumber,
		ExpiryDate:       view.ExpiryDate,
		Status:           view.Status,
		Used:             view.Used,
		UsedHospitalID:   view.UsedHospitalID,
		UsedHospitalName: view.UsedHospitalName,
		UsedAt:           view.UsedAt,
		CreatedAt:        view.CreatedAt,
	}
}

func FromMarkUsedResult(result *commands.MarkUsedResult) *MarkUsedResponse {
	return &MarkUsedResponse{
		HospitalID:   result.HospitalID,
		HospitalName: result.HospitalName,
		Resolution:   string(result.Tier),
	}
}
