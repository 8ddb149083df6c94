package services

import (
	"context"
	"errors"
	"time"

	"ClinicBook/config/logger"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Appointments are independent of slot state. Patient and doctor are weak
// references and are not checked for existence.
type Appointments struct {
	appointments store.Appointments
	users        store.Users
	doctors      store.Doctors
	now          func() time.Time
}

func NewAppointments(appointments store.Appointments, users store.Users, doctors store.Doctors) *Appointments {
	return &Appointments{appointments: appointments, users: users, doctors: doctors, now: time.Now}
}

func (a *Appointments) WithClock(now func() time.Time) *Appointments {
	a.now = now
	return a
}

func (a *Appointments) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	patient, err := ParseID(req.Patient)
	if err != nil {
		return nil, err
	}
	doctor, err := ParseID(req.Doctor)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusConfirmed
	}
	if !models.ValidStatus(status) {
		return nil, util.BadRequest(util.INVALID_STATUS)
	}

	now := a.now().UTC()
	appointment := &models.Appointment{
		Patient:   patient,
		Doctor:    doctor,
		Date:      date,
		Time:      req.Time,
		Status:    status,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.appointments.CreateAppointment(ctx, appointment); err != nil {
		logger.Log.Error("appointment insert failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	return appointment, nil
}

/*
* List the patient's appointments
* Attach the doctor name from one batched lookup
 */
func (a *Appointments) ListForPatient(ctx context.Context, patient primitive.ObjectID) ([]models.AppointmentView, error) {
	list, err := a.appointments.ListByPatient(ctx, patient)
	if err != nil {
		logger.Log.Error("appointment list failed", zap.String("patient", patient.Hex()), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	names, err := a.doctors.DoctorNames(ctx, distinct(list, func(ap models.Appointment) primitive.ObjectID { return ap.Doctor }))
	if err != nil {
		logger.Log.Error("doctor names failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	views := make([]models.AppointmentView, 0, len(list))
	for _, ap := range list {
		views = append(views, models.AppointmentView{Appointment: ap, DoctorName: names[ap.Doctor]})
	}
	return views, nil
}

func (a *Appointments) ListForDoctor(ctx context.Context, doctor primitive.ObjectID) ([]models.AppointmentView, error) {
	list, err := a.appointments.ListByDoctor(ctx, doctor)
	if err != nil {
		logger.Log.Error("appointment list failed", zap.String("doctor", doctor.Hex()), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	names, err := a.users.UserNames(ctx, distinct(list, func(ap models.Appointment) primitive.ObjectID { return ap.Patient }))
	if err != nil {
		logger.Log.Error("patient names failed", zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	views := make([]models.AppointmentView, 0, len(list))
	for _, ap := range list {
		views = append(views, models.AppointmentView{Appointment: ap, PatientName: names[ap.Patient]})
	}
	return views, nil
}

// Update changes only the fields that are not empty.
func (a *Appointments) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	update := store.AppointmentUpdate{UpdatedAt: a.now().UTC()}
	if req.Date != "" {
		date, err := ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		update.Date = &date
	}
	if req.Time != "" {
		update.Time = &req.Time
	}
	if req.Notes != "" {
		update.Notes = &req.Notes
	}
	return a.apply(ctx, id, update)
}

func (a *Appointments) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, util.BadRequest(util.INVALID_STATUS)
	}
	return a.apply(ctx, id, store.AppointmentUpdate{Status: &status, UpdatedAt: a.now().UTC()})
}

func (a *Appointments) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := a.appointments.DeleteAppointment(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("appointment delete failed", zap.String("id", id.Hex()), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}
	return nil
}

func (a *Appointments) apply(ctx context.Context, id primitive.ObjectID, update store.AppointmentUpdate) (*models.Appointment, error) {
	appointment, err := a.appointments.UpdateAppointment(ctx, id, update)
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("appointment update failed", zap.String("id", id.Hex()), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}
	return appointment, nil
}

func distinct(list []models.Appointment, key func(models.Appointment) primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(list))
	var ids []primitive.ObjectID
	for _, ap := range list {
		id := key(ap)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
