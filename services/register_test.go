package services

import (
	"context"
	"testing"

	"ClinicBook/models"
	"ClinicBook/role"
	"ClinicBook/store"
	"ClinicBook/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegisterUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.registerUser(t, "Ada@Example.com", "pass")
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, role.Patient, user.Role)
	assert.NotEqual(t, "pass", user.Password)
	assert.Equal(t, 1990, user.DOB.Year())

	_, err := f.reg.RegisterUser(ctx, models.RegisterUserRequest{Email: "ada@example.com", Password: "x", DOB: "1990-01-01"})
	assert.ErrorIs(t, err, util.ErrAlreadyExists)

	_, err = f.reg.RegisterUser(ctx, models.RegisterUserRequest{Email: "b@example.com", Password: "x", DOB: "1990-01-01", Role: role.Doctor})
	assert.ErrorIs(t, err, util.ErrBadRequest)

	_, err = f.reg.RegisterUser(ctx, models.RegisterUserRequest{Email: "c@example.com", Password: "x", DOB: "10/12/1990"})
	assert.ErrorIs(t, err, util.ErrBadRequest)
}

func TestRegisterDoctorEncryptsLicense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.registerDoctor(t, "grey@clinic.com", "LIC123")
	assert.Equal(t, role.Doctor, doctor.Role)

	stored, err := f.db.Doctors().FindDoctorByID(ctx, doctor.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "LIC123", stored.LicenseNumber)
	plain, err := f.cipher.Decrypt(stored.LicenseNumber)
	require.NoError(t, err)
	assert.Equal(t, "LIC123", plain)

	_, err = f.reg.RegisterDoctor(ctx, doctorRequest("other@clinic.com", "LIC123"))
	assert.ErrorIs(t, err, util.ErrAlreadyExists)
	assert.Equal(t, util.DOCTOR_LICENSE_EXISTS, err.Error())

	_, err = f.reg.RegisterDoctor(ctx, doctorRequest("GREY@clinic.com", "LIC999"))
	assert.ErrorIs(t, err, util.ErrAlreadyExists)
	assert.Equal(t, util.DOCTOR_EMAIL_EXISTS, err.Error())

	req := doctorRequest("third@clinic.com", "LIC777")
	req.Role = role.Patient
	_, err = f.reg.RegisterDoctor(ctx, req)
	assert.ErrorIs(t, err, util.ErrBadRequest)
}

func TestRegisterDoctorRacingDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDoctor(t, "grey@clinic.com", "LIC123")

	// the other registration lands between the lookups and the insert
	hooked := &hookedDoctors{Doctors: f.db.Doctors()}
	hooked.licenseCheck = func(bool) bool { return false }
	reg := NewRegistration(f.db.Users(), hooked, f.cipher, f.cache)
	_, err := reg.RegisterDoctor(ctx, doctorRequest("other@clinic.com", "LIC123"))
	assert.ErrorIs(t, err, util.ErrAlreadyExists)
	assert.Equal(t, util.DOCTOR_LICENSE_EXISTS, err.Error())

	hooked.emailCheck = func(error) error { return store.ErrNotFound }
	_, err = reg.RegisterDoctor(ctx, doctorRequest("grey@clinic.com", "LIC999"))
	assert.ErrorIs(t, err, util.ErrAlreadyExists)
	assert.Equal(t, util.DOCTOR_EMAIL_EXISTS, err.Error())
}

func TestDirectory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.dir.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	doctor := f.registerDoctor(t, "grey@clinic.com", "LIC123")

	// registration drops the cached listing
	list, err = f.dir.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Password)
	assert.Empty(t, list[0].LicenseNumber)

	profile, err := f.dir.Profile(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "LIC123", profile.License)

	_, err = f.dir.Availability(ctx, doctor.ID)
	require.NoError(t, err)
	_, err = f.dir.Profile(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, util.ErrNotFound)
}
