package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"caregiver-marketplace/internal/converter"
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/pricing"
	"caregiver-marketplace/internal/domain/repository"
	"caregiver-marketplace/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotOwned    = errors.New("booking does not belong to you")
	ErrBookingNotEditable = errors.New("booking can only be edited while it is pending")
	ErrCareTypeNotOffered = errors.New("caregiver does not offer this care type")
	ErrPackageNotFound    = errors.New("caregiver does not offer this package")
	ErrPaymentNotDue      = errors.New("no payment is due for this booking")
	ErrAdvanceTooLow      = errors.New("amount paid is below the minimum advance")
	ErrAdvanceTooHigh     = errors.New("amount paid exceeds the booking total")
	ErrInvalidStatus      = errors.New("invalid status")
)

type BookingUsecase interface {
	QuoteBooking(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID uuid.UUID) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	SubmitAdvance(ctx context.Context, userID, bookingID uuid.UUID, req *dto.SubmitAdvanceRequest) (*dto.BookingResponse, error)
	SubmitFinalPayment(ctx context.Context, userID, bookingID uuid.UUID, req *dto.SubmitFinalPaymentRequest) (*dto.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, adminID, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	bookingRepo      repository.BookingRepository
	caregiverRepo    repository.CaregiverRepository
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	caregiverRepo repository.CaregiverRepository,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		bookingRepo:      bookingRepo,
		caregiverRepo:    caregiverRepo,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

// QuoteBooking prices a booking form as it is being filled in. Incomplete
// input is not an error; it simply prices to zero.
func (u *bookingUsecase) QuoteBooking(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	caregiver, err := u.findCaregiver(ctx, req.CaregiverID)
	if err != nil {
		return nil, err
	}

	dayType := entity.DayType(req.DayType)
	pkg := caregiver.PackageByName(req.PackageName)
	total := pricing.ComputeTotal(pkg, dayType, req.SingleDate, req.StartDate, req.EndDate)

	response := &dto.QuoteResponse{
		Days:           pricing.DayCount(dayType, req.SingleDate, req.StartDate, req.EndDate),
		Total:          total,
		MinimumAdvance: pricing.MinimumAdvance(total),
	}
	if pkg != nil {
		response.PackageName = pkg.Name
		response.UnitPrice = pkg.Price
	}
	return response, nil
}

// CreateBooking validates the form, prices it server side and stores the
// request together with a notification for the user.
func (u *bookingUsecase) CreateBooking(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	caregiver, err := u.findCaregiver(ctx, req.CaregiverID)
	if err != nil {
		return nil, err
	}

	draft := toDraft(req.BookingDetails)
	pkg, err := checkDraft(caregiver, draft)
	if err != nil {
		return nil, err
	}

	total := draft.Total(pkg)
	if req.TotalPrice != nil && !req.TotalPrice.Equal(total) {
		u.log.Infof("Client total %s differs from computed total %s for caregiver %s", req.TotalPrice, total, caregiver.ID)
	}

	booking := &entity.Booking{
		UserID:        userID,
		CaregiverID:   caregiver.ID,
		PackageName:   pkg.Name,
		TotalPrice:    total,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPendingAdvance,
	}
	applyDraft(booking, draft)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isForeignKeyError(err, "caregiver") {
			return nil, ErrCaregiverNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	message := fmt.Sprintf("Your booking request for %s has been sent to %s.", booking.PatientName, caregiver.Name)
	if err := u.notificationRepo.Create(tx, entity.NewBookingNotification(userID, booking.ID, message)); err != nil {
		u.log.Warnf("Failed to create booking notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), bookingSnapshot(booking)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Caregiver = *caregiver
	u.log.Infof("Booking created: id=%s, caregiver=%s, total=%s", booking.ID, caregiver.ID, total)
	return converter.BookingToResponse(booking), nil
}

// GetMyBookings returns all bookings of the user, newest first
func (u *bookingUsecase) GetMyBookings(ctx context.Context, userID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// UpdateBooking replaces the form fields of a booking the caregiver has not
// accepted yet. The total is recomputed from the new fields.
func (u *bookingUsecase) UpdateBooking(ctx context.Context, userID, bookingID uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsEditable() {
		return nil, ErrBookingNotEditable
	}

	draft := toDraft(req.BookingDetails)
	pkg, err := checkDraft(&booking.Caregiver, draft)
	if err != nil {
		return nil, err
	}

	before := bookingSnapshot(booking)
	applyDraft(booking, draft)
	booking.PackageName = pkg.Name
	booking.TotalPrice = draft.Total(pkg)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionBookingUpdate, "booking", booking.ID.String(), before, bookingSnapshot(booking)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

// SubmitAdvance records the advance payment receipt of an accepted booking
// and moves it to verification.
func (u *bookingUsecase) SubmitAdvance(ctx context.Context, userID, bookingID uuid.UUID, req *dto.SubmitAdvanceRequest) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.AwaitingAdvance() {
		return nil, ErrPaymentNotDue
	}
	if req.AmountPaid.LessThan(pricing.MinimumAdvance(booking.TotalPrice)) {
		return nil, ErrAdvanceTooLow
	}
	if req.AmountPaid.GreaterThan(booking.TotalPrice) {
		return nil, ErrAdvanceTooHigh
	}

	booking.PaymentStatus = entity.PaymentStatusPendingVerification
	booking.AdvancePaid = req.AmountPaid
	booking.ReceiptURL = req.PaymentReceiptURL

	message := fmt.Sprintf("Your advance payment of Rs. %s has been submitted and is awaiting verification.", req.AmountPaid.StringFixed(2))
	if err := u.recordPayment(ctx, userID, booking, entity.PaymentStatusPendingAdvance, message); err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// SubmitFinalPayment records how the remaining balance was settled
func (u *bookingUsecase) SubmitFinalPayment(ctx context.Context, userID, bookingID uuid.UUID, req *dto.SubmitFinalPaymentRequest) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.AwaitingFinalPayment() {
		return nil, ErrPaymentNotDue
	}

	booking.PaymentStatus = entity.PaymentStatusPendingVerification
	booking.FinalMethod = entity.PaymentMethod(req.PaymentMethod)
	if booking.FinalMethod == entity.PaymentMethodBank {
		booking.ReceiptURL = req.PaymentReceiptURL
	}

	message := fmt.Sprintf("Your final payment of Rs. %s (%s) has been submitted and is awaiting verification.", booking.Balance().StringFixed(2), booking.FinalMethod)
	if err := u.recordPayment(ctx, userID, booking, entity.PaymentStatusAdvancePaid, message); err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// UpdateBookingStatus is the back-office transition of a booking. The owner is
// notified of every change.
func (u *bookingUsecase) UpdateBookingStatus(ctx context.Context, adminID, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	status := entity.BookingStatus(req.Status)
	payment := entity.PaymentStatus(req.PaymentStatus)
	if !status.Valid() || !payment.Valid() {
		return nil, ErrInvalidStatus
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	before := entity.JSON{"status": booking.Status, "payment_status": booking.PaymentStatus}
	booking.Status = status
	booking.PaymentStatus = payment

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = bookingStatusMessage(booking)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.UpdateStatus(tx, booking.ID, status, payment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		u.log.Warnf("Failed to update booking status %s: %+v", booking.ID, err)
		return nil, err
	}

	if err := u.notificationRepo.Create(tx, entity.NewBookingNotification(booking.UserID, booking.ID, message)); err != nil {
		u.log.Warnf("Failed to create booking notification: %+v", err)
		return nil, err
	}

	after := entity.JSON{"status": status, "payment_status": payment}
	if err := u.auditService.LogUpdate(tx, &adminID, entity.AuditActionBookingStatus, "booking", booking.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking %s moved to %s/%s", booking.ID, status, payment)
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) recordPayment(ctx context.Context, userID uuid.UUID, booking *entity.Booking, from entity.PaymentStatus, message string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.UpdatePayment(tx, booking, from); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotDue
		}
		u.log.Warnf("Failed to record payment for booking %s: %+v", booking.ID, err)
		return err
	}

	if err := u.notificationRepo.Create(tx, entity.NewBookingNotification(userID, booking.ID, message)); err != nil {
		u.log.Warnf("Failed to create payment notification: %+v", err)
		return err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionBookingPayment, "booking", booking.ID.String(),
		entity.JSON{"payment_status": from},
		entity.JSON{"payment_status": booking.PaymentStatus, "advance_paid": booking.AdvancePaid.String(), "final_payment_method": booking.FinalMethod},
	); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *bookingUsecase) findCaregiver(ctx context.Context, id uuid.UUID) (*entity.Caregiver, error) {
	caregiver, err := u.caregiverRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find caregiver %s: %+v", id, err)
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrCaregiverNotFound
	}
	return caregiver, nil
}

func (u *bookingUsecase) findOwnedBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotOwned
	}
	return booking, nil
}

// checkDraft resolves the selected package and applies the form rules
func checkDraft(caregiver *entity.Caregiver, draft pricing.Draft) (*entity.ServicePackage, error) {
	if (draft.CareType == entity.CareTypeHome || draft.CareType == entity.CareTypeHospital) &&
		!caregiver.SupportsCareType(draft.CareType) {
		return nil, ErrCareTypeNotOffered
	}

	pkg := caregiver.PackageByName(draft.PackageName)
	if pkg == nil && strings.TrimSpace(draft.PackageName) != "" {
		return nil, ErrPackageNotFound
	}

	if err := draft.Validate(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func toDraft(d dto.BookingDetails) pricing.Draft {
	return pricing.Draft{
		PatientName:     strings.TrimSpace(d.PatientName),
		GuardianName:    strings.TrimSpace(d.GuardianName),
		GuardianContact: strings.TrimSpace(d.GuardianContact),
		CareType:        entity.CareType(d.CareType),
		PackageName:     d.PackageName,
		DayType:         entity.DayType(d.DayType),
		SingleDate:      d.SingleDate,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		Address:         d.Address,
		HospitalName:    d.HospitalName,
		WardNumber:      d.WardNumber,
	}
}

func applyDraft(booking *entity.Booking, draft pricing.Draft) {
	booking.PatientName = draft.PatientName
	booking.GuardianName = draft.GuardianName
	booking.GuardianContact = draft.GuardianContact
	booking.CareType = draft.CareType
	booking.DayType = draft.DayType
	booking.SingleDate, booking.StartDate, booking.EndDate = draft.Dates()
	booking.Address, booking.HospitalName, booking.WardNumber = draft.Location()
}

func bookingSnapshot(b *entity.Booking) entity.JSON {
	return entity.JSON{
		"patient_name": b.PatientName,
		"care_type":    b.CareType,
		"day_type":     b.DayType,
		"package_name": b.PackageName,
		"total_price":  b.TotalPrice.String(),
	}
}

func bookingStatusMessage(b *entity.Booking) string {
	switch {
	case b.Status == entity.BookingStatusCancelled:
		return fmt.Sprintf("Your booking for %s was cancelled.", b.PatientName)
	case b.Status == entity.BookingStatusConfirmed && b.PaymentStatus == entity.PaymentStatusPendingAdvance:
		return fmt.Sprintf("Your booking for %s was accepted. Please pay the advance to confirm it.", b.PatientName)
	case b.Status == entity.BookingStatusInProgress && b.PaymentStatus == entity.PaymentStatusPendingVerification:
		return "Your final payment is being verified."
	case b.PaymentStatus == entity.PaymentStatusPendingVerification:
		return "Your advance payment is being verified."
	case b.Status == entity.BookingStatusConfirmed && b.PaymentStatus == entity.PaymentStatusAdvancePaid:
		return "Your advance payment was verified. Your booking is confirmed."
	case b.Status == entity.BookingStatusInProgress && b.PaymentStatus == entity.PaymentStatusAdvancePaid:
		return "Care has started. The final payment is now due."
	case b.Status == entity.BookingStatusCompleted && b.PaymentStatus == entity.PaymentStatusFullyPaid:
		return "Your final payment was verified. Thank you for using our service."
	default:
		return fmt.Sprintf("Your booking is now %s (%s).", b.Status, b.PaymentStatus)
	}
}
