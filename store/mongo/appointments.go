package mongo

import (
	"context"

	"ClinicBook/config/db"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Appointments struct {
	coll *mongo.Collection
}

var _ store.Appointments = (*Appointments)(nil)

func NewAppointments(database *mongo.Database) *Appointments {
	return &Appointments{coll: db.OpenCollections(database, util.AppointmentCollection)}
}

func (a *Appointments) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	res, err := db.CreateOne(ctx, a.coll, appointment)
	if err != nil {
		return translate(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		appointment.ID = id
	}
	return nil
}

func (a *Appointments) FindAppointmentByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := db.FindOne(ctx, a.coll, bson.M{"_id": id}, &appointment); err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (a *Appointments) ListByPatient(ctx context.Context, patient primitive.ObjectID) ([]models.Appointment, error) {
	return a.list(ctx, bson.M{"patient": patient})
}

func (a *Appointments) ListByDoctor(ctx context.Context, doctor primitive.ObjectID) ([]models.Appointment, error) {
	return a.list(ctx, bson.M{"doctor": doctor})
}

func (a *Appointments) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	if err := db.FindAll(ctx, a.coll, filter, &appointments, opts); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *Appointments) UpdateAppointment(ctx context.Context, id primitive.ObjectID, update store.AppointmentUpdate) (*models.Appointment, error) {
	set := bson.M{"updatedAt": update.UpdatedAt}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Time != nil {
		set["time"] = *update.Time
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	var appointment models.Appointment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := a.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&appointment)
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (a *Appointments) DeleteAppointment(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, a.coll, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
