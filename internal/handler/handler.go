package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/handler/dto"
	"github.com/abdul977/lodgebooker/internal/middleware"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type BookingSvc interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	Book(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context, status, paymentStatus string) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	Instructions() domain.PaymentInstructions
	Submit(ctx context.Context, userID string, input domain.SubmitPaymentInput, file io.Reader) (*domain.PaymentReceipt, bool, error)
	ListPending(ctx context.Context) ([]*domain.PendingReceipt, error)
	Approve(ctx context.Context, adminID, receiptID string) error
	Reject(ctx context.Context, adminID, receiptID, reason string) error
}

type UserSvc interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Profile, error)
	Details(ctx context.Context, id string) (*domain.UserDetails, error)
	SetStatus(ctx context.Context, id string, status domain.AccountStatus) error
	SetRole(ctx context.Context, id string, role domain.Role) error
	Stats(ctx context.Context) (*domain.AdminStats, error)
}

type LetterSvc interface {
	Generate(ctx context.Context, profileID string) ([]byte, string, error)
}

type Handler struct {
	authService    AuthSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	userService    UserSvc
	letterService  LetterSvc
}

func NewHandler(
	authService AuthSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	userService UserSvc,
	letterService LetterSvc,
) *Handler {
	return &Handler{
		authService:    authService,
		bookingService: bookingService,
		paymentService: paymentService,
		userService:    userService,
		letterService:  letterService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Email:                 req.Email,
		Password:              req.Password,
		FullName:              req.FullName,
		Phone:                 req.Phone,
		Address:               req.Address,
		Gender:                req.Gender,
		DateOfBirth:           req.DateOfBirth,
		CallUpNumber:          req.CallUpNumber,
		StateOfOrigin:         req.StateOfOrigin,
		LGA:                   req.LGA,
		Institution:           req.Institution,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		NextOfKinName:         req.NextOfKinName,
		NextOfKinPhone:        req.NextOfKinPhone,
	}

	profile, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, profile, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:   token,
		Profile: dto.ToProfileResponse(profile),
	})
}

func (h *Handler) ForgotPassword(c *ginext.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

func (h *Handler) ResetPassword(c *ginext.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "password updated"})
}

func (h *Handler) Me(c *ginext.Context) {
	profile, err := h.userService.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// Rooms and bookings

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.bookingService.ListRooms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_in format, expected RFC3339",
		})
		return
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_out format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	booking, err := h.bookingService.Book(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) PaymentInstructions(c *ginext.Context) {
	c.JSON(http.StatusOK, h.paymentService.Instructions())
}

func (h *Handler) SubmitPayment(c *ginext.Context) {
	var form dto.SubmitPaymentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	txnDate, err := time.Parse(time.RFC3339, form.TransactionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid transaction_date format, expected RFC3339",
		})
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "receipt file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read receipt file"})
		return
	}
	defer file.Close()

	input := domain.SubmitPaymentInput{
		BookingID:            form.BookingID,
		Amount:               form.Amount,
		TransactionDate:      txnDate,
		TransactionReference: form.TransactionReference,
		BankName:             form.BankName,
		AccountNumber:        form.AccountNumber,
		FileName:             fileHeader.Filename,
		ContentType:          fileHeader.Header.Get("Content-Type"),
		Size:                 fileHeader.Size,
	}

	receipt, notified, err := h.paymentService.Submit(c.Request.Context(), middleware.UserID(c), input, file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitPaymentResponse{
		Receipt:            dto.ToReceiptResponse(receipt),
		NotificationQueued: notified,
	})
}

// Admin

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.userService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) PendingPayments(c *ginext.Context) {
	pending, err := h.paymentService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PendingReceiptResponse, 0, len(pending))
	for _, p := range pending {
		resp = append(resp, dto.ToPendingReceiptResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApprovePayment(c *ginext.Context) {
	receiptID := c.Param("id")
	if _, err := uuid.Parse(receiptID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid receipt id"})
		return
	}

	if err := h.paymentService.Approve(c.Request.Context(), middleware.UserID(c), receiptID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectPayment(c *ginext.Context) {
	receiptID := c.Param("id")
	if _, err := uuid.Parse(receiptID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid receipt id"})
		return
	}

	var req dto.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.paymentService.Reject(c.Request.Context(), middleware.UserID(c), receiptID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) AdminBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListAll(
		c.Request.Context(),
		c.Query("status"),
		c.Query("payment_status"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUsers(c *ginext.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	users, err := h.userService.List(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProfileResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToProfileResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	details, err := h.userService.Details(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDetailsResponse(details))
}

func (h *Handler) UpdateUserStatus(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.SetStatus(c.Request.Context(), userID, domain.AccountStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) UpdateUserRole(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.SetRole(c.Request.Context(), userID, domain.Role(req.Role)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) ConfirmationLetter(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	data, filename, err := h.letterService.Generate(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrReceiptNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrReceiptAlreadyDecided),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAccountNotActive):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrRejectionReasonRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
