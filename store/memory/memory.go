// Package memory keeps every collection in process memory behind one mutex.
// It honours the same uniqueness and atomicity rules as the Mongo store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"ClinicBook/models"
	"ClinicBook/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DB struct {
	mu           sync.Mutex
	users        map[primitive.ObjectID]*models.User
	doctors      map[primitive.ObjectID]*models.Doctor
	appointments map[primitive.ObjectID]*models.Appointment
}

func New() *DB {
	return &DB{
		users:        make(map[primitive.ObjectID]*models.User),
		doctors:      make(map[primitive.ObjectID]*models.Doctor),
		appointments: make(map[primitive.ObjectID]*models.Appointment),
	}
}

func (db *DB) Users() *Users               { return &Users{accounts{db: db, pick: db.userAccounts}} }
func (db *DB) Doctors() *Doctors           { return &Doctors{accounts{db: db, pick: db.doctorAccounts}} }
func (db *DB) Appointments() *Appointments { return &Appointments{db: db} }

func (db *DB) userAccounts() []*models.Account {
	out := make([]*models.Account, 0, len(db.users))
	for _, u := range db.users {
		out = append(out, &u.Account)
	}
	return out
}

func (db *DB) doctorAccounts() []*models.Account {
	out := make([]*models.Account, 0, len(db.doctors))
	for _, d := range db.doctors {
		out = append(out, &d.Account)
	}
	return out
}

// accounts works on pointers into whichever map pick returns. Callers hold
// db.mu.
type accounts struct {
	db   *DB
	pick func() []*models.Account
}

func (a *accounts) byEmail(email string) *models.Account {
	for _, acc := range a.pick() {
		if acc.Email == email {
			return acc
		}
	}
	return nil
}

func (a *accounts) byID(id primitive.ObjectID) *models.Account {
	for _, acc := range a.pick() {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}

func (a *accounts) FindAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	acc := a.byEmail(email)
	if acc == nil {
		return nil, store.ErrNotFound
	}
	cp := *acc
	if acc.ResetPasswordExpires != nil {
		exp := *acc.ResetPasswordExpires
		cp.ResetPasswordExpires = &exp
	}
	return &cp, nil
}

func (a *accounts) SetPassword(_ context.Context, id primitive.ObjectID, hash string) error {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	acc := a.byID(id)
	if acc == nil {
		return store.ErrNotFound
	}
	acc.Password = hash
	return nil
}

func (a *accounts) ProvisionMFASecret(_ context.Context, id primitive.ObjectID, secret string) (string, error) {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	acc := a.byID(id)
	if acc == nil {
		return "", store.ErrNotFound
	}
	if acc.MFASecret == "" {
		acc.MFASecret = secret
		acc.MFAEnabled = true
	}
	return acc.MFASecret, nil
}

func (a *accounts) SetResetOTP(_ context.Context, id primitive.ObjectID, otp string, expires time.Time) error {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	acc := a.byID(id)
	if acc == nil {
		return store.ErrNotFound
	}
	acc.ResetPasswordOTP = otp
	acc.ResetPasswordExpires = &expires
	return nil
}

func (a *accounts) ConsumeResetOTP(_ context.Context, email, otp string, now time.Time) error {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	acc := a.byEmail(email)
	if acc == nil || !acc.ResetOTPValid(now) || acc.ResetPasswordOTP != otp {
		return store.ErrNotFound
	}
	acc.ResetPasswordOTP = ""
	acc.ResetPasswordExpires = nil
	return nil
}

func (a *accounts) PurgeExpiredResetOTPs(_ context.Context, now time.Time) (int64, error) {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	var n int64
	for _, acc := range a.pick() {
		if acc.ResetPasswordExpires != nil && !acc.ResetPasswordExpires.After(now) {
			acc.ResetPasswordOTP = ""
			acc.ResetPasswordExpires = nil
			n++
		}
	}
	return n, nil
}

type Users struct {
	accounts
}

var _ store.Users = (*Users)(nil)

func (u *Users) CreateUser(_ context.Context, user *models.User) error {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()
	if u.byEmail(user.Email) != nil {
		return store.ErrDuplicate
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	u.db.users[cp.ID] = &cp
	return nil
}

func (u *Users) UserNames(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()
	names := make(map[primitive.ObjectID]string, len(ids))
	for _, id := range ids {
		if user, ok := u.db.users[id]; ok {
			names[id] = strings.TrimSpace(user.FirstName + " " + user.LastName)
		}
	}
	return names, nil
}

type Doctors struct {
	accounts
}

var _ store.Doctors = (*Doctors)(nil)

func (d *Doctors) CreateDoctor(_ context.Context, doctor *models.Doctor) error {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	if d.byEmail(doctor.Email) != nil {
		return store.ErrDuplicate
	}
	for _, other := range d.db.doctors {
		if other.LicenseHash == doctor.LicenseHash {
			return store.ErrDuplicate
		}
	}
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	cp := *doctor
	cp.AvailableTimes = append([]models.Slot{}, doctor.AvailableTimes...)
	d.db.doctors[cp.ID] = &cp
	return nil
}

func (d *Doctors) LicenseHashExists(_ context.Context, hash string) (bool, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	for _, doctor := range d.db.doctors {
		if doctor.LicenseHash == hash {
			return true, nil
		}
	}
	return false, nil
}

func (d *Doctors) FindDoctorByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	doctor, ok := d.db.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyDoctor(doctor), nil
}

func (d *Doctors) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	out := make([]models.Doctor, 0, len(d.db.doctors))
	for _, doctor := range d.db.doctors {
		cp := copyDoctor(doctor)
		cp.Password = ""
		cp.MFASecret = ""
		cp.ResetPasswordOTP = ""
		cp.ResetPasswordExpires = nil
		cp.LicenseNumber = ""
		cp.LicenseHash = ""
		cp.AvailableTimes = nil
		out = append(out, *cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (d *Doctors) DoctorNames(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	names := make(map[primitive.ObjectID]string, len(ids))
	for _, id := range ids {
		if doctor, ok := d.db.doctors[id]; ok {
			names[id] = doctor.FullName
		}
	}
	return names, nil
}

func (d *Doctors) PruneSlotsBefore(_ context.Context, id primitive.ObjectID, cutoff time.Time) error {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	doctor, ok := d.db.doctors[id]
	if !ok {
		return store.ErrNotFound
	}
	kept := doctor.AvailableTimes[:0]
	for _, slot := range doctor.AvailableTimes {
		if !slot.Date.Before(cutoff) {
			kept = append(kept, slot)
		}
	}
	doctor.AvailableTimes = kept
	return nil
}

func (d *Doctors) AppendSlotIfAbsent(_ context.Context, id primitive.ObjectID, slot models.Slot) (bool, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	doctor, ok := d.db.doctors[id]
	if !ok {
		return false, nil
	}
	for _, existing := range doctor.AvailableTimes {
		if existing.Date.Equal(slot.Date) && existing.Time == slot.Time {
			return false, nil
		}
	}
	doctor.AvailableTimes = append(doctor.AvailableTimes, slot)
	return true, nil
}

func (d *Doctors) BookSlot(_ context.Context, id primitive.ObjectID, date time.Time, label string) error {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()
	doctor, ok := d.db.doctors[id]
	if !ok {
		return store.ErrNotFound
	}
	for i := range doctor.AvailableTimes {
		slot := &doctor.AvailableTimes[i]
		if slot.Date.Equal(date) && slot.Time == label && !slot.IsBooked {
			slot.IsBooked = true
			return nil
		}
	}
	return store.ErrNotFound
}

func copyDoctor(doctor *models.Doctor) *models.Doctor {
	cp := *doctor
	cp.AvailableTimes = append([]models.Slot{}, doctor.AvailableTimes...)
	return &cp
}

type Appointments struct {
	db *DB
}

var _ store.Appointments = (*Appointments)(nil)

func (a *Appointments) CreateAppointment(_ context.Context, appointment *models.Appointment) error {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	cp := *appointment
	a.db.appointments[cp.ID] = &cp
	return nil
}

func (a *Appointments) FindAppointmentByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	appointment, ok := a.db.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *appointment
	return &cp, nil
}

func (a *Appointments) ListByPatient(_ context.Context, patient primitive.ObjectID) ([]models.Appointment, error) {
	return a.list(func(ap *models.Appointment) bool { return ap.Patient == patient }), nil
}

func (a *Appointments) ListByDoctor(_ context.Context, doctor primitive.ObjectID) ([]models.Appointment, error) {
	return a.list(func(ap *models.Appointment) bool { return ap.Doctor == doctor }), nil
}

func (a *Appointments) list(match func(*models.Appointment) bool) []models.Appointment {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range a.db.appointments {
		if match(ap) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].Time < out[j].Time
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (a *Appointments) UpdateAppointment(_ context.Context, id primitive.ObjectID, update store.AppointmentUpdate) (*models.Appointment, error) {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	appointment, ok := a.db.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if update.Date != nil {
		appointment.Date = *update.Date
	}
	if update.Time != nil {
		appointment.Time = *update.Time
	}
	if update.Notes != nil {
		appointment.Notes = *update.Notes
	}
	if update.Status != nil {
		appointment.Status = *update.Status
	}
	appointment.UpdatedAt = update.UpdatedAt
	cp := *appointment
	return &cp, nil
}

func (a *Appointments) DeleteAppointment(_ context.Context, id primitive.ObjectID) error {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	if _, ok := a.db.appointments[id]; !ok {
		return store.ErrNotFound
	}
	delete(a.db.appointments, id)
	return nil
}
