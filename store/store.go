// Package store defines the persistence contract used by the services.
// store/mongo is the production implementation, store/memory backs tests and
// the STORE=memory development mode.
package store

import (
	"context"
	"errors"
	"time"

	"ClinicBook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// Accounts is the credential surface shared by the users and doctors
// collections.
type Accounts interface {
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
	// ProvisionMFASecret stores secret and enables MFA only when the account
	// has no secret yet. It returns the secret in effect afterwards.
	ProvisionMFASecret(ctx context.Context, id primitive.ObjectID, secret string) (string, error)
	SetResetOTP(ctx context.Context, id primitive.ObjectID, otp string, expires time.Time) error
	// ConsumeResetOTP clears both OTP fields in one step when email, otp and
	// an expiry after now all match. ErrNotFound otherwise.
	ConsumeResetOTP(ctx context.Context, email, otp string, now time.Time) error
	PurgeExpiredResetOTPs(ctx context.Context, now time.Time) (int64, error)
}

type Users interface {
	Accounts
	CreateUser(ctx context.Context, user *models.User) error
	UserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

type Doctors interface {
	Accounts
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	LicenseHashExists(ctx context.Context, hash string) (bool, error)
	FindDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	DoctorNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)

	PruneSlotsBefore(ctx context.Context, id primitive.ObjectID, cutoff time.Time) error
	// AppendSlotIfAbsent pushes slot unless one with the same date and time
	// exists. It reports whether the slot was added.
	AppendSlotIfAbsent(ctx context.Context, id primitive.ObjectID, slot models.Slot) (bool, error)
	// BookSlot flips isBooked on the matching unbooked slot, ErrNotFound when
	// there is none.
	BookSlot(ctx context.Context, id primitive.ObjectID, date time.Time, label string) error
}

// AppointmentUpdate sets only the non-nil fields.
type AppointmentUpdate struct {
	Date      *time.Time
	Time      *string
	Notes     *string
	Status    *string
	UpdatedAt time.Time
}

type Appointments interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	FindAppointmentByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patient primitive.ObjectID) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctor primitive.ObjectID) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, id primitive.ObjectID, update AppointmentUpdate) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id primitive.ObjectID) error
}
