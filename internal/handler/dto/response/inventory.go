package response

import (
	"time"

	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryCounterResponse struct {
	ID            uuid.UUID `json:"id"`
	HospitalID    uuid.UUID `json:"hospitalId"`
	HospitalName  string    `json:"hospitalName"`
	BloodType     string    `json:"bloodType"`
	Units         int32     `json:"units"`
	MinimumStock  int32     `json:"minimumStock"`
	CriticalStock int32     `json:"criticalStock"`
	BelowMinimum  bool      `json:"belowMinimum"`
	Critical      bool      `json:"critical"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RestockInventoryResponse struct {
	CounterID uuid.UUID `json:"counterId"`
	BloodType string    `json:"bloodType"`
	Units     int32     `json:"units"`
}

func FromInventoryCounterViews(views []*queries.InventoryCounterView) []*InventoryCounterResponse {
	result := make([]*InventoryCounterResponse, len(views))
	for i, view := range views {
		result[i] = &InventoryCounterResponse{
			ID:            view.ID,
			HospitalID:    view.HospitalID,
			HospitalName:  view.HospitalName,
			BloodType:     view.BloodType,
			Units:         view.Units,
			MinimumStock:  view.MinimumStock,
			CriticalStock: view.CriticalStock,
			BelowMinimum:  view.BelowMinimum,
			Critical:      view.Critical,
			UpdatedAt:     view.UpdatedAt,
		}
	}
	return result
}
