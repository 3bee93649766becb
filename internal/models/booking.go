package models

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusDenied   BookingStatus = "denied"
)

// IsValid reports whether the status is one of the three allowed values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusDenied:
		return true
	}
	return false
}

type Booking struct {
	ID     string        `json:"id" gorm:"column:id;primaryKey"`
	UserID string        `json:"user_id" gorm:"column:user_id;index"`
	TripID string        `json:"trip_id" gorm:"column:trip_id;index"`
	Status BookingStatus `json:"status" gorm:"column:status"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}
