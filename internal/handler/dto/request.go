package dto

type RegisterRequest struct {
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=6"`
	FullName              string `json:"full_name" binding:"required"`
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
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateBookingRequest struct {
	RoomID   string `json:"room_id" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// SubmitPaymentForm is bound from the multipart form that carries the
// receipt file. The transaction date arrives as RFC3339.
type SubmitPaymentForm struct {
	BookingID            string  `form:"booking_id" binding:"required,uuid"`
	Amount               float64 `form:"amount" binding:"required,gt=0"`
	TransactionDate      string  `form:"transaction_date" binding:"required"`
	TransactionReference string  `form:"transaction_reference" binding:"required"`
	BankName             string  `form:"bank_name" binding:"required"`
	AccountNumber        string  `form:"account_number" binding:"required"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
