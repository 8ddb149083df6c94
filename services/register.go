package services

import (
	"context"
	"errors"
	"time"

	"ClinicBook/config/logger"
	"ClinicBook/config/redis"
	"ClinicBook/models"
	"ClinicBook/role"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.uber.org/zap"
)

// LicenseCipher protects doctor license numbers at rest.
type LicenseCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	Index(plaintext string) string
}

type Registration struct {
	users   store.Users
	doctors store.Doctors
	cipher  LicenseCipher
	cache   redis.Cache
	now     func() time.Time
}

func NewRegistration(users store.Users, doctors store.Doctors, cipher LicenseCipher, cache redis.Cache) *Registration {
	return &Registration{users: users, doctors: doctors, cipher: cipher, cache: cache, now: time.Now}
}

func (r *Registration) WithClock(now func() time.Time) *Registration {
	r.now = now
	return r
}

/*
* Resolve the role, parse the birth date
* Hash the password and insert
* The unique index on email catches a concurrent duplicate
 */
func (r *Registration) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	userRole, ok := role.Resolve(req.Role, role.UserRoles)
	if !ok {
		return nil, util.BadRequest(util.INVALID_ROLE)
	}
	dob, err := ParseDate(req.DOB)
	if err != nil {
		return nil, err
	}
	email := NormalizeEmail(req.Email)

	if _, err := r.users.FindAccountByEmail(ctx, email); err == nil {
		return nil, util.AlreadyExists(util.USER_ALREADY_EXISTS)
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Log.Error("user lookup failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		logger.Log.Error("password hash failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}

	user := &models.User{
		Account: models.Account{
			Email:     email,
			Password:  hash,
			Role:      userRole,
			CreatedAt: r.now().UTC(),
		},
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		DOB:         dob,
		Gender:      req.Gender,
	}
	if err := r.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, util.AlreadyExists(util.USER_ALREADY_EXISTS)
		}
		logger.Log.Error("user insert failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	logger.Log.Info("user registered", zap.String("id", user.ID.Hex()), zap.String("role", userRole))
	return user, nil
}

/*
* Email and license must both be unused
* The license is looked up by its blind index and stored only encrypted
 */
func (r *Registration) RegisterDoctor(ctx context.Context, req models.RegisterDoctorRequest) (*models.Doctor, error) {
	doctorRole, ok := role.Resolve(req.Role, role.DoctorRoles)
	if !ok {
		return nil, util.BadRequest(util.INVALID_ROLE)
	}
	email := NormalizeEmail(req.Email)

	if _, err := r.doctors.FindAccountByEmail(ctx, email); err == nil {
		return nil, util.AlreadyExists(util.DOCTOR_EMAIL_EXISTS)
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Log.Error("doctor lookup failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}

	licenseHash := r.cipher.Index(req.LicenseNumber)
	exists, err := r.doctors.LicenseHashExists(ctx, licenseHash)
	if err != nil {
		logger.Log.Error("license lookup failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	if exists {
		return nil, util.AlreadyExists(util.DOCTOR_LICENSE_EXISTS)
	}

	encrypted, err := r.cipher.Encrypt(req.LicenseNumber)
	if err != nil {
		logger.Log.Error("license encryption failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		logger.Log.Error("password hash failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}

	doctor := &models.Doctor{
		Account: models.Account{
			Email:     email,
			Password:  hash,
			Role:      doctorRole,
			CreatedAt: r.now().UTC(),
		},
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		LicenseNumber:  encrypted,
		LicenseHash:    licenseHash,
		ClinicAddress:  req.ClinicAddress,
		AvailableTimes: []models.Slot{},
	}
	if err := r.doctors.CreateDoctor(ctx, doctor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, r.duplicateDoctor(ctx, licenseHash)
		}
		logger.Log.Error("doctor insert failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	invalidate(ctx, r.cache, util.DoctorListKey)
	logger.Log.Info("doctor registered", zap.String("id", doctor.ID.Hex()), zap.String("role", doctorRole))
	return doctor, nil
}

// A concurrent registration won the insert. Either unique key may have
// collided, the license is checked again to tell which.
func (r *Registration) duplicateDoctor(ctx context.Context, licenseHash string) error {
	exists, err := r.doctors.LicenseHashExists(ctx, licenseHash)
	if err != nil {
		logger.Log.Warn("license recheck failed", zap.Error(err))
	}
	if exists {
		return util.AlreadyExists(util.DOCTOR_LICENSE_EXISTS)
	}
	return util.AlreadyExists(util.DOCTOR_EMAIL_EXISTS)
}

// Cache failures never fail a request.
func invalidate(ctx context.Context, cache redis.Cache, keys ...string) {
	if err := cache.DeleteCache(ctx, keys...); err != nil {
		logger.Log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
