package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/usecase"
	"caregiver-marketplace/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if err == usecase.ErrAuditLogNotFound {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// ListAuditLogs serves GET /admin/audit-logs?action=&user_id=&entity=&entity_id=&page=&limit=
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query, err := parseAuditLogQuery(r.URL.Query())
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.auditLogUsecase.ListAuditLogs(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	totalPages := int((result.Total + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", result.Logs, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: totalPages,
	})
}

func parseAuditLogQuery(values url.Values) (*dto.AuditLogQuery, error) {
	query := &dto.AuditLogQuery{
		Action:   strings.TrimSpace(values.Get("action")),
		Entity:   strings.TrimSpace(values.Get("entity")),
		EntityID: strings.TrimSpace(values.Get("entity_id")),
	}

	if raw := values.Get("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("user_id must be a UUID")
		}
		query.UserID = &userID
	}

	for name, dst := range map[string]*int{"page": &query.Page, "limit": &query.Limit} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", name)
		}
		*dst = n
	}
	return query, nil
}
