package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment only links a patient and a doctor by id, neither is embedded.
type Appointment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient   primitive.ObjectID `json:"patient" bson:"patient"`
	Doctor    primitive.ObjectID `json:"doctor" bson:"doctor"`
	Date      time.Time          `json:"date" bson:"date"`
	Time      string             `json:"time" bson:"time"`
	Status    string             `json:"status" bson:"status"`
	Notes     string             `json:"notes" bson:"notes"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type AppointmentView struct {
	Appointment
	DoctorName  string `json:"doctorName,omitempty"`
	PatientName string `json:"patientName,omitempty"`
}
