package models

type CreateAppointmentRequest struct {
	Patient string `json:"patient" binding:"required"`
	Doctor  string `json:"doctor" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

// Empty fields keep their stored value.
type UpdateAppointmentRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddDefaultSlotsRequest struct {
	Date string `json:"date" binding:"required"`
}

type BookSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
