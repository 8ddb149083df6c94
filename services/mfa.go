package services

import (
	"context"
	"fmt"

	"ClinicBook/config/logger"
	"ClinicBook/models"
	"ClinicBook/util"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      2,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

/*
* Verify the credentials
* Provision a secret on first use, which also turns MFA on
* Mail the current code
 */
func (a *Auth) SendMFA(ctx context.Context, req models.CredentialsRequest) error {
	acc, err := a.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	secret := acc.MFASecret
	if secret == "" {
		key, err := totp.Generate(totp.GenerateOpts{
			Issuer:      a.mfaIssuer,
			AccountName: acc.Email,
			Period:      totpOpts.Period,
			Digits:      totpOpts.Digits,
			Algorithm:   totpOpts.Algorithm,
		})
		if err != nil {
			logger.Log.Error("mfa secret generation failed", zap.Error(err))
			return util.Internal(util.SERVER_ERROR)
		}
		secret, err = a.accounts.ProvisionMFASecret(ctx, acc.ID, key.Secret())
		if err != nil {
			logger.Log.Error("mfa secret save failed", zap.String("kind", a.kind), zap.Error(err))
			return util.Internal(util.SERVER_ERROR)
		}
	}

	code, err := totp.GenerateCodeCustom(secret, a.now(), totpOpts)
	if err != nil {
		logger.Log.Error("mfa code generation failed", zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}

	body := fmt.Sprintf("<p>Your verification code is <b>%s</b>. It expires in about a minute.</p>", code)
	if err := a.mailer.Send(ctx, acc.Email, "Your MFA code", body); err != nil {
		logger.Log.Error("mfa mail failed", zap.String("kind", a.kind), zap.Error(err))
		return util.NewError(util.ErrDelivery, util.FAILED_TO_SEND_MFA)
	}
	return nil
}

func (a *Auth) validMFACode(code, secret string) bool {
	if code == "" || secret == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, a.now(), totpOpts)
	return err == nil && ok
}
