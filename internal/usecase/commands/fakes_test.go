//go:build unit

package commands_test

import (
	"context"
	"time"

	"donorhub/internal/domain/donation"
	"donorhub/internal/domain/registration"
	"donorhub/internal/infra"
	infradb "donorhub/internal/infra/db"
	"donorhub/internal/usecase/notify"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory unit of work. Every write is recorded so the
// tests can assert exactly what reached the storage layer.
type fakeStore struct {
	registration *shared.RegistrationSnapshot
	donor        *shared.DonorSnapshot
	event        *shared.EventSnapshot
	hospital     *shared.HospitalSnapshot

	createdDonations []*donation.Donation
	transitions      []shared.RegistrationTransition
	upserts          []counterUpsert
	notifications    []shared.NewNotification
}

type counterUpsert struct {
	hospitalID uuid.UUID
	bloodType  string
	units      int32
	minimum    int32
	critical   int32
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeUnitOfWork struct{ store *fakeStore }

func (u *fakeUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db infradb.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUnitOfWork) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct{ store *fakeStore }

func (t *fakeTx) Registrations() shared.RegistrationRepository {
	return &fakeRegistrationRepo{store: t.store}
}
func (t *fakeTx) Donations() shared.DonationRepository {
	return &fakeDonationRepo{store: t.store}
}
func (t *fakeTx) Inventory() shared.InventoryRepository {
	return &fakeInventoryRepo{store: t.store}
}
func (t *fakeTx) Eligibility() shared.EligibilityRepository { return nil }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotificationRepo{store: t.store}
}
func (t *fakeTx) Users() shared.UserRepository { return nil }
func (t *fakeTx) Reads() shared.CommandReads   { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() infradb.DBTX             { return nil }

type fakeReads struct{ store *fakeStore }

func (r *fakeReads) RegistrationByID(_ context.Context, id uuid.UUID) (*shared.RegistrationSnapshot, error) {
	if r.store.registration != nil && r.store.registration.ID == id {
		return r.store.registration, nil
	}
	return nil, notFoundErr("registration not found")
}

func (r *fakeReads) DonationByID(_ context.Context, _ uuid.UUID) (*shared.DonationSnapshot, error) {
	return nil, notFoundErr("donation not found")
}

func (r *fakeReads) DonationByRegistrationID(_ context.Context, _ uuid.UUID) (*shared.DonationSnapshot, error) {
	return nil, notFoundErr("donation not found")
}

func (r *fakeReads) EventByID(_ context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	if r.store.event != nil && r.store.event.ID == id {
		return r.store.event, nil
	}
	return nil, notFoundErr("event not found")
}

func (r *fakeReads) HospitalByID(_ context.Context, id uuid.UUID) (*shared.HospitalSnapshot, error) {
	if r.store.hospital != nil && r.store.hospital.ID == id {
		return r.store.hospital, nil
	}
	return nil, notFoundErr("hospital not found")
}

func (r *fakeReads) HospitalByName(_ context.Context, name string) (*shared.HospitalSnapshot, error) {
	if r.store.hospital != nil && r.store.hospital.Name == name {
		return r.store.hospital, nil
	}
	return nil, notFoundErr("hospital not found")
}

func (r *fakeReads) FirstHospital(_ context.Context) (*shared.HospitalSnapshot, error) {
	if r.store.hospital != nil {
		return r.store.hospital, nil
	}
	return nil, notFoundErr("no hospitals")
}

func (r *fakeReads) CounterByHospitalAndType(_ context.Context, _ uuid.UUID, _ string) (*shared.CounterSnapshot, error) {
	return nil, notFoundErr("counter not found")
}

func (r *fakeReads) CountersByHospital(_ context.Context, _ uuid.UUID) ([]*shared.CounterSnapshot, error) {
	return nil, nil
}

func (r *fakeReads) EligibilityByID(_ context.Context, _ uuid.UUID) (*shared.EligibilitySnapshot, error) {
	return nil, notFoundErr("eligibility request not found")
}

func (r *fakeReads) DonorByID(_ context.Context, id uuid.UUID) (*shared.DonorSnapshot, error) {
	if r.store.donor != nil && r.store.donor.ID == id {
		return r.store.donor, nil
	}
	return nil, notFoundErr("donor not found")
}

type fakeRegistrationRepo struct{ store *fakeStore }

func (f *fakeRegistrationRepo) Create(_ context.Context, _ *registration.Registration) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeRegistrationRepo) Transition(_ context.Context, p shared.RegistrationTransition) error {
	f.store.transitions = append(f.store.transitions, p)
	return nil
}

func (f *fakeRegistrationRepo) MarkBloodUsed(_ context.Context, _, _ uuid.UUID, _ time.Time) error {
	return nil
}

type fakeDonationRepo struct{ store *fakeStore }

func (f *fakeDonationRepo) Create(_ context.Context, d *donation.Donation) (uuid.UUID, error) {
	f.store.createdDonations = append(f.store.createdDonations, d)
	return d.ID(), nil
}

func (f *fakeDonationRepo) MarkUsed(_ context.Context, _, _, _ uuid.UUID, _ time.Time) error {
	return nil
}

type fakeInventoryRepo struct{ store *fakeStore }

func (f *fakeInventoryRepo) DecrementUnits(_ context.Context, _ uuid.UUID, _ int32, _ int64) error {
	return nil
}

func (f *fakeInventoryRepo) Upsert(_ context.Context, hospitalID uuid.UUID, bloodType string, units, minimum, critical int32) (uuid.UUID, error) {
	f.store.upserts = append(f.store.upserts, counterUpsert{
		hospitalID: hospitalID,
		bloodType:  bloodType,
		units:      units,
		minimum:    minimum,
		critical:   critical,
	})
	return uuid.New(), nil
}

type fakeNotificationRepo struct{ store *fakeStore }

func (f *fakeNotificationRepo) Create(_ context.Context, n shared.NewNotification) (uuid.UUID, error) {
	f.store.notifications = append(f.store.notifications, n)
	return uuid.New(), nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

type fakeLocker struct{}

func (fakeLocker) WithRegistrationLock(ctx context.Context, _ uuid.UUID, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type sentNotification struct {
	donorID *uuid.UUID
	note    notify.Notification
}

type recordingDispatcher struct {
	sent []sentNotification
}

func (d *recordingDispatcher) NotifyDonor(_ context.Context, donorID *uuid.UUID, n notify.Notification) {
	d.sent = append(d.sent, sentNotification{donorID: donorID, note: n})
}

func registrationSnapshot(status registration.Status, donorID *uuid.UUID) *shared.RegistrationSnapshot {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &shared.RegistrationSnapshot{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		DonorID:   donorID,
		SlotStart: now.Add(time.Hour),
		SlotEnd:   now.Add(2 * time.Hour),
		Status:    string(status),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
