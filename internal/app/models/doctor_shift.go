package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShiftStatus string

const (
	ShiftStatusActive   ShiftStatus = "active"
	ShiftStatusInactive ShiftStatus = "inactive"
)

// DoctorShift maps a time-of-day window to one on-duty doctor. Position
// records insertion order and breaks ties between overlapping windows.
type DoctorShift struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ShiftID   string             `json:"shift_id" bson:"shift_id"`
	ShiftType string             `json:"shift_type" bson:"shift_type"`
	DoctorID  string             `json:"doctor_id" bson:"doctor_id"`
	StartHour int                `json:"start_hour" bson:"start_hour"`
	EndHour   int                `json:"end_hour" bson:"end_hour"`
	Status    ShiftStatus        `json:"status" bson:"status"`
	Position  int                `json:"position" bson:"position"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Covers reports whether the shift window contains the given hour
// (startHour <= hour < endHour).
func (s *DoctorShift) Covers(hour int) bool {
	return s.Status == ShiftStatusActive && hour >= s.StartHour && hour < s.EndHour
}

func (s *DoctorShift) Validate() error {
	if s.StartHour < 0 || s.EndHour > 23 || s.StartHour >= s.EndHour {
		return fmt.Errorf("invalid shift window %d-%d", s.StartHour, s.EndHour)
	}
	if s.DoctorID == "" {
		return fmt.Errorf("shift requires a doctor id")
	}
	return nil
}
