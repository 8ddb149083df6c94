package models

import (
	"time"
)

type Doctor struct {
	Account        `bson:",inline"`
	FullName       string `json:"fullName" bson:"fullName"`
	Specialization string `json:"specialization" bson:"specialization"`
	Phone          string `json:"phone" bson:"phone"`
	LicenseNumber  string `json:"-" bson:"licenseNumber"`
	LicenseHash    string `json:"-" bson:"licenseHash"`
	ClinicAddress  string `json:"clinicAddress" bson:"clinicAddress"`
	AvailableTimes []Slot `json:"availableTimes,omitempty" bson:"availableTimes"`
}

// Slot is keyed by (Date, Time) within one doctor.
type Slot struct {
	Date     time.Time `json:"date" bson:"date"`
	Time     string    `json:"time" bson:"time"`
	IsBooked bool      `json:"isBooked" bson:"isBooked"`
}

// DoctorProfile is what a doctor sees about themself, license decrypted.
type DoctorProfile struct {
	Doctor
	License string `json:"licenseNumber"`
}
