package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"ClinicBook/config/logger"
	"ClinicBook/config/mail"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.uber.org/zap"
)

type TokenIssuer interface {
	GenerateJWT(id, role string) (string, error)
}

// Auth runs login, MFA and password reset against one account collection.
// The users and doctors routes each get their own Auth.
type Auth struct {
	kind      string
	accounts  store.Accounts
	mailer    mail.Mailer
	tokens    TokenIssuer
	mfaIssuer string
	now       func() time.Time
}

func NewAuth(kind string, accounts store.Accounts, mailer mail.Mailer, tokens TokenIssuer, mfaIssuer string) *Auth {
	return &Auth{
		kind:      kind,
		accounts:  accounts,
		mailer:    mailer,
		tokens:    tokens,
		mfaIssuer: mfaIssuer,
		now:       time.Now,
	}
}

func (a *Auth) WithClock(now func() time.Time) *Auth {
	a.now = now
	return a
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

/*
* Unknown email and wrong password give the same error
 */
func (a *Auth) authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	acc, err := a.accounts.FindAccountByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.InvalidCredentials(util.INVALID_CREDENTIALS)
	}
	if err != nil {
		logger.Log.Error("account lookup failed", zap.String("kind", a.kind), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	if !CheckPassword(password, acc.Password) {
		return nil, util.InvalidCredentials(util.INVALID_CREDENTIALS)
	}
	return acc, nil
}

/*
* Check the password first
* When MFA is enabled the code has to be valid for the stored secret
* Only then issue the session token
 */
func (a *Auth) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	acc, err := a.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if acc.MFAEnabled && !a.validMFACode(req.MFACode, acc.MFASecret) {
		return nil, util.InvalidCredentials(util.INVALID_MFA_CODE)
	}

	token, err := a.tokens.GenerateJWT(acc.ID.Hex(), acc.Role)
	if err != nil {
		logger.Log.Error("token generation failed", zap.String("kind", a.kind), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	logger.Log.Info("login", zap.String("kind", a.kind), zap.String("id", acc.ID.Hex()))
	return &models.LoginResponse{Token: token}, nil
}
