package handler

import (
	"net/http"
	"strings"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/availability"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/pricing"
	"caregiver-marketplace/internal/usecase"
	"caregiver-marketplace/pkg/response"
	"caregiver-marketplace/pkg/validator"

	"github.com/goccy/go-json"
)

type CaregiverHandler struct {
	caregiverUsecase usecase.CaregiverUsecase
	validator        *validator.CustomValidator
}

func NewCaregiverHandler(caregiverUsecase usecase.CaregiverUsecase, validator *validator.CustomValidator) *CaregiverHandler {
	return &CaregiverHandler{
		caregiverUsecase: caregiverUsecase,
		validator:        validator,
	}
}

// SearchCaregivers lists caregivers matching the query filters
// @Summary Search available caregivers
// @Tags Caregivers
// @Produce json
// @Param care_type query string true "Home care or Hospital care"
// @Param location query string false "Substring of location or area"
// @Param gender query string false "Any, Male or Female"
// @Param languages query string false "Comma separated languages, all required"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Router /caregivers [get]
func (h *CaregiverHandler) SearchCaregivers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.SearchCaregiversRequest{
		CareType:  query.Get("care_type"),
		Location:  query.Get("location"),
		Gender:    query.Get("gender"),
		Languages: splitList(query.Get("languages")),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	caregivers, err := h.caregiverUsecase.SearchCaregivers(r.Context(), availability.Criteria{
		CareType:  entity.CareType(req.CareType),
		Location:  req.Location,
		Gender:    req.Gender,
		Languages: req.Languages,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		response.InternalServerError(w, "Failed to search caregivers")
		return
	}

	response.Success(w, http.StatusOK, "Caregivers retrieved successfully", caregivers)
}

func (h *CaregiverHandler) GetCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverID, ok := pathUUID(w, r, "caregiver")
	if !ok {
		return
	}

	caregiver, err := h.caregiverUsecase.GetCaregiver(r.Context(), caregiverID)
	if err != nil {
		switch err {
		case usecase.ErrCaregiverNotFound:
			response.NotFound(w, "Caregiver not found")
		default:
			response.InternalServerError(w, "Failed to get caregiver")
		}
		return
	}

	response.Success(w, http.StatusOK, "Caregiver retrieved successfully", caregiver)
}

// CreateCaregiver adds a caregiver profile (admin only)
func (h *CaregiverHandler) CreateCaregiver(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	caregiver, err := h.caregiverUsecase.CreateCaregiver(r.Context(), adminID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPackagePrice, usecase.ErrInvalidAvailability, pricing.ErrInvalidDate:
			response.BadRequest(w, err.Error())
		case usecase.ErrDuplicatePackage:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create caregiver")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Caregiver created successfully", caregiver)
}

// splitList splits a comma separated query value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
