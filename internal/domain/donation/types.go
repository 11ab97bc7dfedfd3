package donation

import (
	"errors"
	"strings"
)

var ErrUnknownBloodType = errors.New("blood type is unknown")

type BloodType string

const (
	BloodAPos     BloodType = "A+"
	BloodANeg     BloodType = "A-"
	BloodBPos     BloodType = "B+"
	BloodBNeg     BloodType = "B-"
	BloodABPos    BloodType = "AB+"
	BloodABNeg    BloodType = "AB-"
	BloodOPos     BloodType = "O+"
	BloodONeg     BloodType = "O-"
	BloodUnknown  BloodType = "Unknown"
)

func (b BloodType) String() string {
	return string(b)
}

func (b BloodType) IsKnown() bool {
	switch b {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg,
		BloodABPos, BloodABNeg, BloodOPos, BloodONeg:
		return true
	default:
		return false
	}
}

// NormalizeBloodType maps upstream spellings ("o pos", "AB Negative", "0+")
// onto the canonical set. Anything unrecognized becomes BloodUnknown.
func NormalizeBloodType(s string) BloodType {
	raw := strings.ToUpper(strings.TrimSpace(s))
	raw = strings.NewReplacer(" ", "", "POSITIVE", "+", "NEGATIVE", "-", "POS", "+", "NEG", "-").Replace(raw)
	// A leading zero is a common data-entry slip for the O group.
	if strings.HasPrefix(raw, "0") {
		raw = "O" + raw[1:]
	}

	bt := BloodType(raw)
	if bt.IsKnown() {
		return bt
	}
	return BloodUnknown
}

type UsageStatus string

const (
	// UsageStored means the unit sits in inventory and may be consumed.
	UsageStored    UsageStatus = "stored"
	UsageDiscarded UsageStatus = "discarded"
	UsageConsumed  UsageStatus = "consumed"
)

func (s UsageStatus) String() string {
	return string(s)
}

func (s UsageStatus) IsValid() bool {
	switch s {
	case UsageStored, UsageDiscarded, UsageConsumed:
		return true
	default:
		return false
	}
}
