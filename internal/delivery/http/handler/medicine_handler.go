package handler

import (
	"net/http"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/usecase"
	"caregiver-marketplace/pkg/response"
	"caregiver-marketplace/pkg/validator"

	"github.com/goccy/go-json"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) CreateMedicineRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateMedicineRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.medicineUsecase.CreateMedicineRequest(r.Context(), userID, &req)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Medicine request sent to nearby pharmacies", request)
}

func (h *MedicineHandler) CreateMedicineOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateMedicineOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.medicineUsecase.CreateMedicineOrder(r.Context(), userID, &req)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Medicine order placed successfully", order)
}

func (h *MedicineHandler) SubmitMedicinePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "medicine order")
	if !ok {
		return
	}

	var req dto.SubmitMedicinePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.medicineUsecase.SubmitMedicinePayment(r.Context(), userID, orderID, &req)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment submitted and awaiting verification", order)
}

func (h *MedicineHandler) GetMedicineRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	requestID, ok := pathUUID(w, r, "medicine request")
	if !ok {
		return
	}

	request, err := h.medicineUsecase.GetMedicineRequest(r.Context(), userID, requestID)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicine request retrieved successfully", request)
}

func (h *MedicineHandler) GetMedicineOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "medicine order")
	if !ok {
		return
	}

	order, err := h.medicineUsecase.GetMedicineOrder(r.Context(), userID, orderID)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicine order retrieved successfully", order)
}

func (h *MedicineHandler) UpdateMedicineRequestStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	requestID, ok := pathUUID(w, r, "medicine request")
	if !ok {
		return
	}

	var req dto.UpdateMedicineStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.medicineUsecase.UpdateMedicineRequestStatus(r.Context(), adminID, requestID, &req)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicine request status updated successfully", request)
}

func (h *MedicineHandler) UpdateMedicineOrderStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "medicine order")
	if !ok {
		return
	}

	var req dto.UpdateMedicineStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.medicineUsecase.UpdateMedicineOrderStatus(r.Context(), adminID, orderID, &req)
	if err != nil {
		writeMedicineError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicine order status updated successfully", order)
}

func writeMedicineError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrMedicineRequestNotFound:
		response.NotFound(w, "Medicine request not found")
	case usecase.ErrMedicineOrderNotFound:
		response.NotFound(w, "Medicine order not found")
	case usecase.ErrMedicineRequestNotOwned, usecase.ErrMedicineOrderNotOwned:
		response.Forbidden(w, err.Error())
	case usecase.ErrInvalidStatus:
		response.BadRequest(w, "Invalid status")
	case usecase.ErrMedicineRequestEmpty, usecase.ErrInvalidMedicinePrice:
		response.BadRequest(w, err.Error())
	case usecase.ErrMedicineRequestNotQuoted, usecase.ErrMedicinePaymentNotDue:
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to process medicine request")
	}
}
