package services

import (
	"context"
	"errors"

	"ClinicBook/config/logger"
	"ClinicBook/config/redis"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Directory serves the public doctor listing and the doctor's own profile.
// Only the listing is cached. It carries no slots, so booking never makes it
// stale.
type Directory struct {
	doctors store.Doctors
	cipher  LicenseCipher
	cache   redis.Cache
}

func NewDirectory(doctors store.Doctors, cipher LicenseCipher, cache redis.Cache) *Directory {
	return &Directory{doctors: doctors, cipher: cipher, cache: cache}
}

func (d *Directory) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if hit, err := d.cache.GetCache(ctx, util.DoctorListKey, &doctors); err != nil {
		logger.Log.Warn("cache read failed", zap.String("key", util.DoctorListKey), zap.Error(err))
	} else if hit {
		return doctors, nil
	}

	doctors, err := d.doctors.ListDoctors(ctx)
	if err != nil {
		logger.Log.Error("doctor list failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	if err := d.cache.SetCache(ctx, util.DoctorListKey, doctors); err != nil {
		logger.Log.Warn("cache write failed", zap.String("key", util.DoctorListKey), zap.Error(err))
	}
	return doctors, nil
}

// Availability always reads the store, booking changes it on every call.
func (d *Directory) Availability(ctx context.Context, doctorID primitive.ObjectID) ([]models.Slot, error) {
	doctor, err := findDoctor(ctx, d.doctors, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.AvailableTimes == nil {
		return []models.Slot{}, nil
	}
	return doctor.AvailableTimes, nil
}

// Profile is only served to the doctor the token belongs to.
func (d *Directory) Profile(ctx context.Context, doctorID primitive.ObjectID) (*models.DoctorProfile, error) {
	doctor, err := findDoctor(ctx, d.doctors, doctorID)
	if err != nil {
		return nil, err
	}
	license, err := d.cipher.Decrypt(doctor.LicenseNumber)
	if err != nil {
		logger.Log.Error("license decryption failed", zap.String("id", doctorID.Hex()), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	return &models.DoctorProfile{Doctor: *doctor, License: license}, nil
}

func findDoctor(ctx context.Context, doctors store.Doctors, id primitive.ObjectID) (*models.Doctor, error) {
	doctor, err := doctors.FindDoctorByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.NotFound(util.DOCTOR_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("doctor lookup failed", zap.String("id", id.Hex()), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	return doctor, nil
}
