package dto

import (
	"time"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProfileResponse struct {
	ID                    string `json:"id"`
	Email                 string `json:"email"`
	FullName              string `json:"full_name"`
	Phone                 string `json:"phone"`
	Address               string `json:"address"`
	Gender                string `json:"gender"`
	DateOfBirth           string `json:"date_of_birth"`
	CallUpNumber          string `json:"call_up_number"`
	StateOfOrigin         string `json:"state_of_origin"`
	LGA                   string `json:"lga"`
	Institution           string `json:"institution"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	NextOfKinName         string `json:"next_of_kin_name"`
	NextOfKinPhone        string `json:"next_of_kin_phone"`
	Role                  string `json:"role"`
	Status                string `json:"status"`
	CreatedAt             string `json:"created_at"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	IsAvailable   bool     `json:"is_available"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	RoomID        string  `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	TotalPrice    float64 `json:"total_price"`
	CreatedAt     string  `json:"created_at"`
}

type ReceiptResponse struct {
	ID                   string  `json:"id"`
	BookingID            string  `json:"booking_id"`
	Amount               float64 `json:"amount"`
	TransactionDate      string  `json:"transaction_date"`
	TransactionReference string  `json:"transaction_reference"`
	BankName             string  `json:"bank_name"`
	AccountNumber        string  `json:"account_number"`
	ReceiptURL           string  `json:"receipt_url"`
	CreatedAt            string  `json:"created_at"`
}

// SubmitPaymentResponse reports the stored receipt and whether the
// acknowledgement email was queued. A false flag means the receipt was
// accepted but the acknowledgement could not be recorded.
type SubmitPaymentResponse struct {
	Receipt            ReceiptResponse `json:"receipt"`
	NotificationQueued bool            `json:"notification_queued"`
}

type PendingReceiptResponse struct {
	ReceiptResponse
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type UserDetailsResponse struct {
	Profile  ProfileResponse   `json:"profile"`
	Bookings []BookingResponse `json:"bookings"`
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                    p.ID,
		Email:                 p.Email,
		FullName:              p.FullName,
		Phone:                 p.Phone,
		Address:               p.Address,
		Gender:                p.Gender,
		DateOfBirth:           p.DateOfBirth,
		CallUpNumber:          p.CallUpNumber,
		StateOfOrigin:         p.StateOfOrigin,
		LGA:                   p.LGA,
		Institution:           p.Institution,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		NextOfKinName:         p.NextOfKinName,
		NextOfKinPhone:        p.NextOfKinPhone,
		Role:                  string(p.Role),
		Status:                string(p.Status),
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Amenities:     r.Amenities,
		IsAvailable:   r.IsAvailable,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn.Format(time.RFC3339),
		CheckOut:      b.CheckOut.Format(time.RFC3339),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToReceiptResponse(r *domain.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                   r.ID,
		BookingID:            r.BookingID,
		Amount:               r.Amount,
		TransactionDate:      r.TransactionDate.Format(time.RFC3339),
		TransactionReference: r.TransactionReference,
		BankName:             r.BankName,
		AccountNumber:        r.AccountNumber,
		ReceiptURL:           r.ReceiptURL,
		CreatedAt:            r.CreatedAt.Format(time.RFC3339),
	}
}

func ToPendingReceiptResponse(r *domain.PendingReceipt) PendingReceiptResponse {
	return PendingReceiptResponse{
		ReceiptResponse: ToReceiptResponse(&r.PaymentReceipt),
		UserID:          r.UserID,
		FullName:        r.FullName,
		Email:           r.Email,
	}
}

func ToUserDetailsResponse(d *domain.UserDetails) UserDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return UserDetailsResponse{
		Profile:  ToProfileResponse(&d.Profile),
		Bookings: bookings,
	}
}
