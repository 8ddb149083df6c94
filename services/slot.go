package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ClinicBook/config/logger"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const clockLayout = "15:04"

// SlotTemplate is the working day every fresh date is filled with.
type SlotTemplate struct {
	Start string
	End   string
	Step  time.Duration
}

/*
* Walk from start to end in steps
* A trailing step that would pass the end is dropped
 */
func (t SlotTemplate) Labels() ([]string, error) {
	start, err := time.Parse(clockLayout, t.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid slot start %q: %w", t.Start, err)
	}
	end, err := time.Parse(clockLayout, t.End)
	if err != nil {
		return nil, fmt.Errorf("invalid slot end %q: %w", t.End, err)
	}
	if t.Step <= 0 || !start.Before(end) {
		return nil, fmt.Errorf("invalid slot template %s-%s every %s", t.Start, t.End, t.Step)
	}

	var labels []string
	for cur := start; !cur.Add(t.Step).After(end); cur = cur.Add(t.Step) {
		labels = append(labels, cur.Format(clockLayout)+" - "+cur.Add(t.Step).Format(clockLayout))
	}
	return labels, nil
}

type Slots struct {
	doctors store.Doctors
	labels  []string
	now     func() time.Time
}

func NewSlots(doctors store.Doctors, template SlotTemplate) (*Slots, error) {
	labels, err := template.Labels()
	if err != nil {
		return nil, err
	}
	return &Slots{doctors: doctors, labels: labels, now: time.Now}, nil
}

func (s *Slots) WithClock(now func() time.Time) *Slots {
	s.now = now
	return s
}

/*
* Reject a date before today
* Drop slots whose day is before today
* Append every template label the date does not have yet
* Existing slots, booked or not, are left as they are
 */
func (s *Slots) AddDefaultSlots(ctx context.Context, doctorID primitive.ObjectID, date time.Time) ([]models.Slot, error) {
	day := StartOfDay(date)
	today := StartOfDay(s.now())
	if day.Before(today) {
		return nil, util.BadRequest(util.INVALID_DATE)
	}
	if _, err := findDoctor(ctx, s.doctors, doctorID); err != nil {
		return nil, err
	}

	if err := s.doctors.PruneSlotsBefore(ctx, doctorID, today); err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.Log.Error("slot prune failed", zap.String("doctor", doctorID.Hex()), zap.Error(err))
		return nil, util.Internal(util.SERVER_ERROR)
	}

	added := 0
	for _, label := range s.labels {
		ok, err := s.doctors.AppendSlotIfAbsent(ctx, doctorID, models.Slot{Date: day, Time: label})
		if err != nil {
			logger.Log.Error("slot append failed", zap.String("doctor", doctorID.Hex()), zap.Error(err))
			return nil, util.Internal(util.SERVER_ERROR)
		}
		if ok {
			added++
		}
	}
	logger.Log.Info("default slots added", zap.String("doctor", doctorID.Hex()), zap.Time("date", day), zap.Int("added", added))

	doctor, err := findDoctor(ctx, s.doctors, doctorID)
	if err != nil {
		return nil, err
	}
	return slotsOn(doctor.AvailableTimes, day), nil
}

// BookSlot succeeds for exactly one caller per free slot.
func (s *Slots) BookSlot(ctx context.Context, doctorID primitive.ObjectID, date time.Time, label string) error {
	err := s.doctors.BookSlot(ctx, doctorID, StartOfDay(date), label)
	if errors.Is(err, store.ErrNotFound) {
		return util.NotFound(util.SLOT_NOT_AVAILABLE)
	}
	if err != nil {
		logger.Log.Error("slot booking failed", zap.String("doctor", doctorID.Hex()), zap.Error(err))
		return util.Internal(util.SERVER_ERROR)
	}
	return nil
}

func slotsOn(slots []models.Slot, day time.Time) []models.Slot {
	out := []models.Slot{}
	for _, slot := range slots {
		if slot.Date.Equal(day) {
			out = append(out, slot)
		}
	}
	return out
}
