package request

import (
	"donorhub/internal/usecase/commands"
)

type RestockInventoryRequest struct {
	BloodType     string `json:"blood_type" binding:"required"`
	Units         int32  `json:"units" binding:"min=0"`
	MinimumStock  int32  `json:"minimum_stock" binding:"min=0"`
	CriticalStock int32  `json:"critical_stock" binding:"min=0"`
}

func (r RestockInventoryRequest) ToCommand() commands.RestockInventoryRequest {
	return commands.RestockInventoryRequest{
		BloodType:     r.BloodType,
		Units:         r.Units,
		MinimumStock:  r.MinimumStock,
		CriticalStock: r.CriticalStock,
	}
}
