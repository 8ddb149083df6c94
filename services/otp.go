package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"ClinicBook/config/logger"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.uber.org/zap"
)

const otpTTL = 15 * time.Minute

var otpMax = big.NewInt(1000000)

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

/*
* Store the otp and its expiry together, then mail it
* A failed mail leaves the otp in place
 */
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	acc, err := a.accounts.FindAccountByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return util.NotFound(util.USER_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("account lookup failed", zap.String("kind", a.kind), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}

	code, err := generateOTP()
	if err != nil {
		logger.Log.Error("otp generation failed", zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}
	if err := a.accounts.SetResetOTP(ctx, acc.ID, code, a.now().Add(otpTTL)); err != nil {
		logger.Log.Error("otp save failed", zap.String("kind", a.kind), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}

	body := fmt.Sprintf("<p>Your password reset code is <b>%s</b>. It is valid for 15 minutes.</p>", code)
	if err := a.mailer.Send(ctx, acc.Email, "Password reset code", body); err != nil {
		logger.Log.Error("otp mail failed", zap.String("kind", a.kind), zap.Error(err))
		return util.NewError(util.ErrDelivery, util.FAILED_TO_SEND_OTP)
	}
	return nil
}

// VerifyOTP consumes the code. Wrong and expired codes are not told apart.
func (a *Auth) VerifyOTP(ctx context.Context, email, code string) error {
	err := a.accounts.ConsumeResetOTP(ctx, NormalizeEmail(email), code, a.now())
	if errors.Is(err, store.ErrNotFound) {
		return util.InvalidCredentials(util.INVALID_OR_EXPIRED_OTP)
	}
	if err != nil {
		logger.Log.Error("otp consume failed", zap.String("kind", a.kind), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}
	return nil
}

// ResetPassword does not require a verified otp.
func (a *Auth) ResetPassword(ctx context.Context, email, newPassword string) error {
	acc, err := a.accounts.FindAccountByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return util.NotFound(util.USER_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("account lookup failed", zap.String("kind", a.kind), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("password hash failed", zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}
	if err := a.accounts.SetPassword(ctx, acc.ID, hash); err != nil {
		logger.Log.Error("password save failed", zap.String("kind", a.kind), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}
	return nil
}

// PurgeExpiredOTPs is run by the cleanup job.
func (a *Auth) PurgeExpiredOTPs(ctx context.Context) (int64, error) {
	return a.accounts.PurgeExpiredResetOTPs(ctx, a.now())
}
