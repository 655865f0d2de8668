package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"caregiver-marketplace/internal/converter"
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/repository"
	"caregiver-marketplace/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineRequestNotFound = errors.New("medicine request not found")
	ErrMedicineRequestNotOwned = errors.New("medicine request does not belong to you")
	ErrMedicineOrderNotFound   = errors.New("medicine order not found")
	ErrMedicineOrderNotOwned   = errors.New("medicine order does not belong to you")

	ErrMedicineRequestEmpty     = errors.New("a medicine name or a prescription is required")
	ErrMedicineRequestNotQuoted = errors.New("medicine request has no pharmacy quotes yet")
	ErrInvalidMedicinePrice     = errors.New("medicine price must be positive")
	ErrMedicinePaymentNotDue    = errors.New("medicine order is not ready for payment")
)

type MedicineUsecase interface {
	CreateMedicineRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateMedicineRequestRequest) (*dto.MedicineRequestResponse, error)
	CreateMedicineOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateMedicineOrderRequest) (*dto.MedicineOrderResponse, error)
	SubmitMedicinePayment(ctx context.Context, userID, orderID uuid.UUID, req *dto.SubmitMedicinePaymentRequest) (*dto.MedicineOrderResponse, error)
	GetMedicineRequest(ctx context.Context, userID, requestID uuid.UUID) (*dto.MedicineRequestResponse, error)
	GetMedicineOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.MedicineOrderResponse, error)
	UpdateMedicineRequestStatus(ctx context.Context, adminID, requestID uuid.UUID, req *dto.UpdateMedicineStatusRequest) (*dto.MedicineRequestResponse, error)
	UpdateMedicineOrderStatus(ctx context.Context, adminID, orderID uuid.UUID, req *dto.UpdateMedicineStatusRequest) (*dto.MedicineOrderResponse, error)
}

type medicineUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	requestRepo      repository.MedicineRequestRepository
	orderRepo        repository.MedicineOrderRepository
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.MedicineRequestRepository,
	orderRepo repository.MedicineOrderRepository,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		db:               db,
		log:              log,
		requestRepo:      requestRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

// CreateMedicineRequest sends a prescription or medicine name out for
// pharmacy quotes.
func (u *medicineUsecase) CreateMedicineRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateMedicineRequestRequest) (*dto.MedicineRequestResponse, error) {
	request := &entity.MedicineRequest{
		UserID:          userID,
		MedicineName:    strings.TrimSpace(req.MedicineName),
		PrescriptionURL: strings.TrimSpace(req.PrescriptionURL),
		Notes:           strings.TrimSpace(req.Notes),
		Status:          entity.MedicineRequestStatusPending,
	}
	if request.MedicineName == "" && request.PrescriptionURL == "" {
		return nil, ErrMedicineRequestEmpty
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.requestRepo.Create(tx, request); err != nil {
		u.log.Warnf("Failed to create medicine request: %+v", err)
		return nil, err
	}

	message := "Your request has been sent to nearby pharmacies!"
	if err := u.notificationRepo.Create(tx, entity.NewMedicineRequestNotification(userID, request.ID, message)); err != nil {
		u.log.Warnf("Failed to create medicine request notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionMedicineRequestCreate, "medicine_request", request.ID.String(),
		entity.JSON{"medicine_name": request.MedicineName, "has_prescription": request.PrescriptionURL != ""}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Medicine request created: id=%s", request.ID)
	return converter.MedicineRequestToResponse(request), nil
}

// CreateMedicineOrder accepts a pharmacy quote on one of the user's quoted
// requests. The total is unit price times quantity.
func (u *medicineUsecase) CreateMedicineOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateMedicineOrderRequest) (*dto.MedicineOrderResponse, error) {
	if !req.Price.IsPositive() {
		return nil, ErrInvalidMedicinePrice
	}

	request, err := u.findRequest(ctx, req.MedicineRequestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, ErrMedicineRequestNotOwned
	}
	if request.Status != entity.MedicineRequestStatusQuoted {
		return nil, ErrMedicineRequestNotQuoted
	}

	order := &entity.MedicineOrder{
		UserID:       userID,
		RequestID:    request.ID,
		PharmacyRef:  strings.TrimSpace(req.PharmacyID),
		PharmacyName: strings.TrimSpace(req.PharmacyName),
		UnitPrice:    req.Price,
		Quantity:     req.Quantity,
		QuantityUnit: req.QuantityUnit,
		TotalPrice:   req.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Status:       entity.MedicineOrderStatusPendingConfirmation,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.orderRepo.Create(tx, order); err != nil {
		u.log.Warnf("Failed to create medicine order: %+v", err)
		return nil, err
	}

	message := fmt.Sprintf("Your order at %s was placed and is waiting for the pharmacy to confirm.", order.PharmacyName)
	if err := u.notificationRepo.Create(tx, entity.NewMedicineOrderNotification(userID, order.ID, message)); err != nil {
		u.log.Warnf("Failed to create medicine order notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionMedicineOrderCreate, "medicine_order", order.ID.String(), entity.JSON{
		"request_id":  order.RequestID,
		"pharmacy":    order.PharmacyRef,
		"quantity":    order.Quantity,
		"total_price": order.TotalPrice.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Medicine order created: id=%s, request=%s, total=%s", order.ID, request.ID, order.TotalPrice)
	return converter.MedicineOrderToResponse(order), nil
}

// SubmitMedicinePayment records how a ready order was paid and hands it to
// an admin for verification.
func (u *medicineUsecase) SubmitMedicinePayment(ctx context.Context, userID, orderID uuid.UUID, req *dto.SubmitMedicinePaymentRequest) (*dto.MedicineOrderResponse, error) {
	order, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrMedicineOrderNotOwned
	}
	if order.Status != entity.MedicineOrderStatusReadyForPickup {
		return nil, ErrMedicinePaymentNotDue
	}

	order.Status = entity.MedicineOrderStatusPaymentPendingVerification
	order.PaymentMethod = entity.MedicinePaymentMethod(req.PaymentMethod)
	order.ReceiptURL = ""
	if order.PaymentMethod == entity.MedicinePaymentBankTransfer {
		order.ReceiptURL = req.PaymentReceiptURL
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.orderRepo.UpdatePayment(tx, order, entity.MedicineOrderStatusReadyForPickup); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicinePaymentNotDue
		}
		u.log.Warnf("Failed to submit payment for medicine order %s: %+v", order.ID, err)
		return nil, err
	}

	if err := u.notificationRepo.Create(tx, entity.NewMedicineOrderNotification(userID, order.ID, medicineOrderMessage(order))); err != nil {
		u.log.Warnf("Failed to create medicine order notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionMedicineOrderPayment, "medicine_order", order.ID.String(),
		entity.JSON{"status": entity.MedicineOrderStatusReadyForPickup},
		entity.JSON{"status": order.Status, "payment_method": order.PaymentMethod}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineOrderToResponse(order), nil
}

func (u *medicineUsecase) GetMedicineRequest(ctx context.Context, userID, requestID uuid.UUID) (*dto.MedicineRequestResponse, error) {
	request, err := u.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, ErrMedicineRequestNotOwned
	}
	return converter.MedicineRequestToResponse(request), nil
}

func (u *medicineUsecase) GetMedicineOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.MedicineOrderResponse, error) {
	order, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrMedicineOrderNotOwned
	}
	return converter.MedicineOrderToResponse(order), nil
}

// UpdateMedicineRequestStatus moves a request along and notifies its owner
func (u *medicineUsecase) UpdateMedicineRequestStatus(ctx context.Context, adminID, requestID uuid.UUID, req *dto.UpdateMedicineStatusRequest) (*dto.MedicineRequestResponse, error) {
	status := entity.MedicineRequestStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	request, err := u.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	before := request.Status
	request.Status = status

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = medicineRequestMessage(status)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.requestRepo.UpdateStatus(tx, request.ID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicineRequestNotFound
		}
		u.log.Warnf("Failed to update medicine request %s: %+v", request.ID, err)
		return nil, err
	}

	if err := u.notificationRepo.Create(tx, entity.NewMedicineRequestNotification(request.UserID, request.ID, message)); err != nil {
		u.log.Warnf("Failed to create medicine request notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &adminID, entity.AuditActionMedicineRequestStatus, "medicine_request", request.ID.String(),
		entity.JSON{"status": before}, entity.JSON{"status": status}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineRequestToResponse(request), nil
}

// UpdateMedicineOrderStatus moves an order along and notifies its owner
func (u *medicineUsecase) UpdateMedicineOrderStatus(ctx context.Context, adminID, orderID uuid.UUID, req *dto.UpdateMedicineStatusRequest) (*dto.MedicineOrderResponse, error) {
	status := entity.MedicineOrderStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	before := order.Status
	order.Status = status

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = medicineOrderMessage(order)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.orderRepo.UpdateStatus(tx, order.ID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicineOrderNotFound
		}
		u.log.Warnf("Failed to update medicine order %s: %+v", order.ID, err)
		return nil, err
	}

	if err := u.notificationRepo.Create(tx, entity.NewMedicineOrderNotification(order.UserID, order.ID, message)); err != nil {
		u.log.Warnf("Failed to create medicine order notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &adminID, entity.AuditActionMedicineOrderStatus, "medicine_order", order.ID.String(),
		entity.JSON{"status": before}, entity.JSON{"status": status}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineOrderToResponse(order), nil
}

func (u *medicineUsecase) findRequest(ctx context.Context, id uuid.UUID) (*entity.MedicineRequest, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine request %s: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrMedicineRequestNotFound
	}
	return request, nil
}

func (u *medicineUsecase) findOrder(ctx context.Context, id uuid.UUID) (*entity.MedicineOrder, error) {
	order, err := u.orderRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine order %s: %+v", id, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrMedicineOrderNotFound
	}
	return order, nil
}

func medicineRequestMessage(status entity.MedicineRequestStatus) string {
	switch status {
	case entity.MedicineRequestStatusQuoted:
		return "Pharmacies have sent quotes for your medicine request."
	case entity.MedicineRequestStatusFulfilled:
		return "Your medicine request has been fulfilled."
	case entity.MedicineRequestStatusCancelled:
		return "Your medicine request was cancelled."
	default:
		return "Your medicine request is waiting for pharmacy quotes."
	}
}

func medicineOrderMessage(order *entity.MedicineOrder) string {
	switch order.Status {
	case entity.MedicineOrderStatusReadyForPickup:
		return fmt.Sprintf("Your order of Rs. %s is ready for pickup!", order.TotalPrice.StringFixed(2))
	case entity.MedicineOrderStatusPaymentPendingVerification:
		return "Your medicine payment is being verified."
	case entity.MedicineOrderStatusCompleted:
		return "Your medicine payment was verified. Thank you!"
	case entity.MedicineOrderStatusCancelled:
		return "Your medicine order was cancelled."
	default:
		return "Your medicine order was placed and is waiting for the pharmacy to confirm."
	}
}
