package mongo

import (
	"context"
	"time"

	"ClinicBook/config/db"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// publicDoctorFields hides credentials and the license from listings.
// Slots are served by the availability lookup only.
var publicDoctorFields = bson.M{
	"availableTimes":       0,
	"password":             0,
	"mfaSecret":            0,
	"resetPasswordOTP":     0,
	"resetPasswordExpires": 0,
	"licenseNumber":        0,
	"licenseHash":          0,
}

type Doctors struct {
	accounts
}

var _ store.Doctors = (*Doctors)(nil)

func NewDoctors(database *mongo.Database) *Doctors {
	return &Doctors{accounts{coll: db.OpenCollections(database, util.DoctorCollection)}}
}

func (d *Doctors) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if doctor.AvailableTimes == nil {
		// $push fails on a null field
		doctor.AvailableTimes = []models.Slot{}
	}
	res, err := db.CreateOne(ctx, d.coll, doctor)
	if err != nil {
		return translate(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = id
	}
	return nil
}

func (d *Doctors) LicenseHashExists(ctx context.Context, hash string) (bool, error) {
	n, err := d.coll.CountDocuments(ctx, bson.M{"licenseHash": hash}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *Doctors) FindDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := db.FindOne(ctx, d.coll, bson.M{"_id": id}, &doctor); err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

func (d *Doctors) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	opts := options.Find().SetProjection(publicDoctorFields).SetSort(bson.M{"fullName": 1})
	if err := db.FindAll(ctx, d.coll, bson.M{}, &doctors, opts); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *Doctors) DoctorNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var doctors []models.Doctor
	opts := options.Find().SetProjection(bson.M{"fullName": 1})
	if err := db.FindAll(ctx, d.coll, bson.M{"_id": bson.M{"$in": ids}}, &doctors, opts); err != nil {
		return nil, err
	}
	for _, doctor := range doctors {
		names[doctor.ID] = doctor.FullName
	}
	return names, nil
}

func (d *Doctors) PruneSlotsBefore(ctx context.Context, id primitive.ObjectID, cutoff time.Time) error {
	update := bson.M{"$pull": bson.M{"availableTimes": bson.M{"date": bson.M{"$lt": cutoff}}}}
	res, err := db.UpdateOne(ctx, d.coll, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (d *Doctors) AppendSlotIfAbsent(ctx context.Context, id primitive.ObjectID, slot models.Slot) (bool, error) {
	filter := bson.M{
		"_id": id,
		"availableTimes": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"date": slot.Date,
			"time": slot.Time,
		}}},
	}
	res, err := db.UpdateOne(ctx, d.coll, filter, bson.M{"$push": bson.M{"availableTimes": slot}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

/*
* Match the doctor only while the slot is still free
* The positional operator then flips exactly that element
* Two concurrent bookings cannot both match
 */
func (d *Doctors) BookSlot(ctx context.Context, id primitive.ObjectID, date time.Time, label string) error {
	filter := bson.M{
		"_id": id,
		"availableTimes": bson.M{"$elemMatch": bson.M{
			"date":     date,
			"time":     label,
			"isBooked": false,
		}},
	}
	update := bson.M{"$set": bson.M{"availableTimes.$.isBooked": true}}
	res, err := db.UpdateOne(ctx, d.coll, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
