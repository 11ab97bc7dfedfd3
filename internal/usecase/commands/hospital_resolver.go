package commands

import (
	"context"
	"strings"

	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/usecase/shared"
)

var ErrHospitalUnresolved = errs.New("no hospital could be resolved for this donation")

// ResolutionTier names which fallback produced the hospital, so callers can
// log how confident the attribution is.
type ResolutionTier string

const (
	TierEventHospital        ResolutionTier = "event_hospital_id"
	TierEventHospitalName    ResolutionTier = "event_hospital_name"
	TierRegistrationHospital ResolutionTier = "registration_hospital"
	TierFirstHospital        ResolutionTier = "first_hospital"
)

type HospitalResolution struct {
	Hospital *shared.HospitalSnapshot
	Tier     ResolutionTier
}

// Inferred reports whether the hospital came from a fallback rather than a
// direct reference.
func (r *HospitalResolution) Inferred() bool {
	return r.Tier != TierEventHospital
}

// resolveHospital walks the attribution cascade for a consumed donation:
// the event's hospital reference, then the event's free-text hospital name,
// then the hospital recorded on the registration, then the oldest hospital
// on file. Dangling references fall through to the next tier.
func resolveHospital(ctx context.Context, reads shared.CommandReads, reg *shared.RegistrationSnapshot) (*HospitalResolution, error) {
	event, err := reads.EventByID(ctx, reg.EventID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	if event != nil {
		if event.HospitalID != nil {
			h, herr := reads.HospitalByID(ctx, *event.HospitalID)
			if herr == nil {
				return &HospitalResolution{Hospital: h, Tier: TierEventHospital}, nil
			}
			if !infra.IsKind(herr, infra.KindNotFound) {
				return nil, herr
			}
		}

		if event.HospitalName != nil && strings.TrimSpace(*event.HospitalName) != "" {
			h, herr := reads.HospitalByName(ctx, *event.HospitalName)
			if herr == nil {
				return &HospitalResolution{Hospital: h, Tier: TierEventHospitalName}, nil
			}
			if !infra.IsKind(herr, infra.KindNotFound) {
				return nil, herr
			}
		}
	}

	if reg.HospitalID != nil {
		h, herr := reads.HospitalByID(ctx, *reg.HospitalID)
		if herr == nil {
			return &HospitalResolution{Hospital: h, Tier: TierRegistrationHospital}, nil
		}
		if !infra.IsKind(herr, infra.KindNotFound) {
			return nil, herr
		}
	}

	h, herr := reads.FirstHospital(ctx)
	if herr != nil {
		if infra.IsKind(herr, infra.KindNotFound) {
			return nil, ErrHospitalUnresolved
		}
		return nil, herr
	}
	return &HospitalResolution{Hospital: h, Tier: TierFirstHospital}, nil
}
