package converter

import (
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
)

func MedicineRequestToResponse(req *entity.MedicineRequest) *dto.MedicineRequestResponse {
	if req == nil {
		return nil
	}

	return &dto.MedicineRequestResponse{
		ID:              req.ID,
		MedicineName:    req.MedicineName,
		PrescriptionURL: req.PrescriptionURL,
		Notes:           req.Notes,
		Status:          string(req.Status),
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
}

func MedicineOrderToResponse(order *entity.MedicineOrder) *dto.MedicineOrderResponse {
	if order == nil {
		return nil
	}

	return &dto.MedicineOrderResponse{
		ID:                order.ID,
		RequestID:         order.RequestID,
		PharmacyRef:       order.PharmacyRef,
		PharmacyName:      order.PharmacyName,
		UnitPrice:         order.UnitPrice,
		Quantity:          order.Quantity,
		QuantityUnit:      order.QuantityUnit,
		TotalPrice:        order.TotalPrice,
		Status:            string(order.Status),
		PaymentMethod:     string(order.PaymentMethod),
		PaymentReceiptURL: order.ReceiptURL,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
