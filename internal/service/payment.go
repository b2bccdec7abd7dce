package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports"
)

type PaymentService struct {
	receiptRepo  ports.ReceiptRepo
	decisionRepo ports.VerificationRepo
	bookingRepo  ports.BookingRepo
	profileRepo  ports.ProfileRepo
	store        ports.FileStore
	notifier     ports.Notifier
	instructions domain.PaymentInstructions
	logger       logger.Logger
}

func NewPaymentService(
	receiptRepo ports.ReceiptRepo,
	decisionRepo ports.VerificationRepo,
	bookingRepo ports.BookingRepo,
	profileRepo ports.ProfileRepo,
	store ports.FileStore,
	notifier ports.Notifier,
	instructions domain.PaymentInstructions,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		receiptRepo:  receiptRepo,
		decisionRepo: decisionRepo,
		bookingRepo:  bookingRepo,
		profileRepo:  profileRepo,
		store:        store,
		notifier:     notifier,
		instructions: instructions,
		logger:       logger,
	}
}

func (s *PaymentService) Instructions() domain.PaymentInstructions {
	return s.instructions
}

// Submit stores the receipt file, records the receipt row and enqueues
// the acknowledgement email. The file upload happens first; if the row
// insert then fails the uploaded object is removed again so no orphan
// is left behind. The returned bool reports whether the acknowledgement
// was queued: a false value means the receipt was still accepted.
func (s *PaymentService) Submit(ctx context.Context, userID string, input domain.SubmitPaymentInput, file io.Reader) (*domain.PaymentReceipt, bool, error) {
	if err := input.Validate(time.Now()); err != nil {
		return nil, false, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, false, fmt.Errorf("check booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, false, domain.ErrBookingNotFound
	}

	key := fmt.Sprintf("%s/%d.%s", userID, time.Now().UnixNano(), domain.AllowedReceiptTypes[input.ContentType])
	if err = s.store.Upload(ctx, key, file, input.Size, input.ContentType); err != nil {
		return nil, false, fmt.Errorf("upload receipt: %w", err)
	}

	receipt := &domain.PaymentReceipt{
		ID:                   uuid.New().String(),
		UserID:               userID,
		BookingID:            booking.ID,
		Amount:               input.Amount,
		TransactionDate:      input.TransactionDate,
		TransactionReference: input.TransactionReference,
		BankName:             input.BankName,
		AccountNumber:        input.AccountNumber,
		ReceiptURL:           s.store.PublicURL(key),
		ObjectKey:            key,
		CreatedAt:            time.Now().UTC(),
	}
	if err = s.receiptRepo.Create(ctx, receipt); err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.logger.Error("failed to remove orphaned receipt file",
				logger.String("object_key", key),
				logger.String("error", rmErr.Error()),
			)
		}
		return nil, false, fmt.Errorf("create receipt: %w", err)
	}

	s.logger.Info("payment receipt submitted",
		logger.String("receipt_id", receipt.ID),
		logger.String("booking_id", booking.ID),
		logger.String("user_id", userID),
	)

	notified := s.notifySubmitter(ctx, userID, domain.TemplatePaymentReceived, domain.EmailData{
		BookingID:       booking.ID,
		Amount:          receipt.Amount,
		TransactionDate: receipt.TransactionDate,
		Reference:       receipt.TransactionReference,
	})

	return receipt, notified, nil
}

func (s *PaymentService) ListPending(ctx context.Context) ([]*domain.PendingReceipt, error) {
	return s.receiptRepo.ListPending(ctx)
}

// Approve appends an approved decision and marks the booking paid and
// active, all in one transaction. The confirmation email is enqueued
// only after the transaction committed, and its failure does not undo
// the approval.
func (s *PaymentService) Approve(ctx context.Context, adminID, receiptID string) error {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("get receipt: %w", err)
	}

	decision := &domain.VerificationDecision{
		ID:               uuid.New().String(),
		PaymentReceiptID: receipt.ID,
		Status:           domain.DecisionStatusApproved,
		VerificationDate: time.Now().UTC(),
		DecidedBy:        adminID,
		CreatedAt:        time.Now().UTC(),
	}
	if err = s.decisionRepo.Approve(ctx, decision); err != nil {
		return fmt.Errorf("approve receipt: %w", err)
	}

	s.logger.Info("payment approved",
		logger.String("receipt_id", receipt.ID),
		logger.String("booking_id", receipt.BookingID),
		logger.String("decided_by", adminID),
	)

	s.notifySubmitter(ctx, receipt.UserID, domain.TemplatePaymentApproved, domain.EmailData{
		BookingID:       receipt.BookingID,
		Amount:          receipt.Amount,
		TransactionDate: receipt.TransactionDate,
		Reference:       receipt.TransactionReference,
	})

	return nil
}

// Reject appends a rejected decision. The booking stays untouched so
// the guest can submit a corrected receipt for it.
func (s *PaymentService) Reject(ctx context.Context, adminID, receiptID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.ErrRejectionReasonRequired
	}

	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("get receipt: %w", err)
	}

	decision := &domain.VerificationDecision{
		ID:               uuid.New().String(),
		PaymentReceiptID: receipt.ID,
		Status:           domain.DecisionStatusRejected,
		VerificationDate: time.Now().UTC(),
		RejectionReason:  reason,
		DecidedBy:        adminID,
		CreatedAt:        time.Now().UTC(),
	}
	if err = s.decisionRepo.Reject(ctx, decision); err != nil {
		return fmt.Errorf("reject receipt: %w", err)
	}

	s.logger.Info("payment rejected",
		logger.String("receipt_id", receipt.ID),
		logger.String("decided_by", adminID),
	)

	s.notifySubmitter(ctx, receipt.UserID, domain.TemplatePaymentRejected, domain.EmailData{
		BookingID:       receipt.BookingID,
		Amount:          receipt.Amount,
		TransactionDate: receipt.TransactionDate,
		Reference:       receipt.TransactionReference,
		RejectionReason: reason,
	})

	return nil
}

// notifySubmitter looks up the recipient and enqueues the email.
// Failures are logged and swallowed: the triggering action already
// succeeded.
func (s *PaymentService) notifySubmitter(ctx context.Context, userID string, template domain.EmailTemplate, data domain.EmailData) bool {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get profile for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return false
	}

	data.UserName = profile.FullName
	if err = s.notifier.Enqueue(ctx, template, profile.Email, data); err != nil {
		s.logger.Error("failed to enqueue notification",
			logger.String("template", string(template)),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}
