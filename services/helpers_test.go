package services

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"ClinicBook/config/encryption"
	"ClinicBook/config/jwt"
	"ClinicBook/config/redis"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/store/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type sentMail struct {
	To, Subject, Body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

var codePattern = regexp.MustCompile(`<b>(\d{6})</b>`)

// lastCode returns the code from the most recent mail.
func (m *recordingMailer) lastCode(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	match := codePattern.FindStringSubmatch(m.sent[len(m.sent)-1].Body)
	require.Len(t, match, 2)
	return match[1]
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type fixture struct {
	now     time.Time
	mail    *recordingMailer
	db      *memory.DB
	cipher  *encryption.Cipher
	cache   *redis.Memory
	users   *Auth
	doctors *Auth
	reg     *Registration
	dir     *Directory
	slots   *Slots
	appts   *Appointments
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cipher, err := encryption.New(testKey)
	require.NoError(t, err)

	f := &fixture{
		now:    time.Date(2030, 3, 4, 8, 0, 0, 0, time.UTC),
		mail:   &recordingMailer{},
		db:     memory.New(),
		cipher: cipher,
		cache:  redis.NewMemory(time.Minute),
	}
	clock := func() time.Time { return f.now }
	tokens := jwt.NewIssuer("test-secret", time.Hour).WithClock(clock)

	f.users = NewAuth("user", f.db.Users(), f.mail, tokens, "ClinicBook").WithClock(clock)
	f.doctors = NewAuth("doctor", f.db.Doctors(), f.mail, tokens, "ClinicBook").WithClock(clock)
	f.reg = NewRegistration(f.db.Users(), f.db.Doctors(), cipher, f.cache).WithClock(clock)
	f.dir = NewDirectory(f.db.Doctors(), cipher, f.cache)
	slots, err := NewSlots(f.db.Doctors(), SlotTemplate{Start: "09:00", End: "17:00", Step: time.Hour})
	require.NoError(t, err)
	f.slots = slots.WithClock(clock)
	f.appts = NewAppointments(f.db.Appointments(), f.db.Users(), f.db.Doctors()).WithClock(clock)
	return f
}

func (f *fixture) registerUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	user, err := f.reg.RegisterUser(context.Background(), models.RegisterUserRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "555-0100",
		Address:     "1 Main St",
		DOB:         "1990-12-10",
		Email:       email,
		Password:    password,
		Gender:      "female",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) registerDoctor(t *testing.T, email, license string) *models.Doctor {
	t.Helper()
	doctor, err := f.reg.RegisterDoctor(context.Background(), doctorRequest(email, license))
	require.NoError(t, err)
	return doctor
}

func doctorRequest(email, license string) models.RegisterDoctorRequest {
	return models.RegisterDoctorRequest{
		FullName:       "Dr. Grey",
		Email:          email,
		Password:       "doctor-pass",
		Specialization: "cardiology",
		Phone:          "555-0199",
		LicenseNumber:  license,
		ClinicAddress:  "2 Side St",
	}
}

// hookedDoctors runs the hooks around the wrapped store calls, letting a
// test interleave another write with a read or a registration.
type hookedDoctors struct {
	store.Doctors
	afterFind    func()
	licenseCheck func(exists bool) bool
	emailCheck   func(err error) error
}

func (h *hookedDoctors) FindDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	doctor, err := h.Doctors.FindDoctorByID(ctx, id)
	if h.afterFind != nil {
		fn := h.afterFind
		h.afterFind = nil
		fn()
	}
	return doctor, err
}

func (h *hookedDoctors) LicenseHashExists(ctx context.Context, hash string) (bool, error) {
	exists, err := h.Doctors.LicenseHashExists(ctx, hash)
	if err == nil && h.licenseCheck != nil {
		fn := h.licenseCheck
		h.licenseCheck = nil
		exists = fn(exists)
	}
	return exists, err
}

func (h *hookedDoctors) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	acc, err := h.Doctors.FindAccountByEmail(ctx, email)
	if h.emailCheck != nil {
		fn := h.emailCheck
		h.emailCheck = nil
		err = fn(err)
	}
	return acc, err
}
