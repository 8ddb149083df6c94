package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the credential part shared by users and doctors. It is stored
// inline in both collections so one auth implementation can read either.
type Account struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email                string             `json:"email" bson:"email"`
	Password             string             `json:"-" bson:"password"`
	Role                 string             `json:"role" bson:"role"`
	MFASecret            string             `json:"-" bson:"mfaSecret,omitempty"`
	MFAEnabled           bool               `json:"mfaEnabled" bson:"mfaEnabled"`
	ResetPasswordOTP     string             `json:"-" bson:"resetPasswordOTP,omitempty"`
	ResetPasswordExpires *time.Time         `json:"-" bson:"resetPasswordExpires,omitempty"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
}

// ResetOTPValid reports whether both OTP fields are present and unexpired.
func (a *Account) ResetOTPValid(now time.Time) bool {
	return a.ResetPasswordOTP != "" && a.ResetPasswordExpires != nil && a.ResetPasswordExpires.After(now)
}
