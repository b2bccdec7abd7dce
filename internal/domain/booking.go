package domain

import (
	"fmt"
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	RoomID        string        `json:"room_id"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TotalPrice    float64       `json:"total_price"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights counts billable nights between check-in and check-out with
// ceiling division at day granularity, so a partial last day is charged
// as a full night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// ValidateStayDates enforces the stay-date schema shared by the API layer
// and the booking service: both dates set, check-out strictly after
// check-in.
func ValidateStayDates(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	return nil
}
