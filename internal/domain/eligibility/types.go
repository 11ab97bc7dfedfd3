package eligibility

type Outcome string

const (
	OutcomeEligible              Outcome = "eligible"
	OutcomeTemporarilyDeferred   Outcome = "temporarily_deferred"
	OutcomePermanentlyIneligible Outcome = "permanently_ineligible"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeEligible, OutcomeTemporarilyDeferred, OutcomePermanentlyIneligible:
		return true
	default:
		return false
	}
}

func NewOutcome(s string) (Outcome, error) {
	outcome := Outcome(s)
	if !outcome.IsValid() {
		return "", ErrInvalidOutcome
	}
	return outcome, nil
}

type ReviewStatus string

const (
	ReviewPending ReviewStatus = "pending"
	ReviewDecided ReviewStatus = "decided"
)

func (s ReviewStatus) String() string {
	return string(s)
}
