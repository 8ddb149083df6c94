package models

import "time"

type User struct {
	Account     `bson:",inline"`
	FirstName   string    `json:"firstName" bson:"firstName"`
	LastName    string    `json:"lastName" bson:"lastName"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	Address     string    `json:"address" bson:"address"`
	DOB         time.Time `json:"dob" bson:"dob"`
	Gender      string    `json:"gender" bson:"gender"`
}
