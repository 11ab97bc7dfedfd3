package registration

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const MaxReasonLength = 500

var (
	ErrInvalidTimeSlot   = errors.New("slot start must be before slot end")
	ErrReasonTooLong     = errors.New("rejection reason too long")
	ErrEmptyWalkInName   = errors.New("walk-in registration requires a donor name")
	ErrWalkInNameTooLong = errors.New("walk-in donor name too long")
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Label() string {
	return fmt.Sprintf("%s - %s", ts.start.Format("15:04"), ts.end.Format("15:04"))
}

type Reason struct {
	value string
}

func NewReason(value string) (Reason, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxReasonLength {
		return Reason{}, ErrReasonTooLong
	}
	return Reason{value: trimmed}, nil
}

func (r Reason) String() string { return r.value }
func (r Reason) IsEmpty() bool  { return r.value == "" }

type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: strings.TrimSpace(value)}
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }

// WalkIn identifies a donor without an account, by free-text fields only.
type WalkIn struct {
	name  string
	phone string
}

func NewWalkIn(name, phone string) (WalkIn, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return WalkIn{}, ErrEmptyWalkInName
	}
	if len(name) > 200 {
		return WalkIn{}, ErrWalkInNameTooLong
	}
	return WalkIn{name: name, phone: strings.TrimSpace(phone)}, nil
}

func (w WalkIn) Name() string  { return w.name }
func (w WalkIn) Phone() string { return w.phone }
