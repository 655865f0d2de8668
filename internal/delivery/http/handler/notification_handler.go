package handler

import (
	"errors"
	"net/http"

	"caregiver-marketplace/internal/usecase"
	"caregiver-marketplace/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	notifications, err := h.notificationUsecase.GetMyNotifications(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	notificationID, ok := pathUUID(w, r, "notification")
	if !ok {
		return
	}

	if err := h.notificationUsecase.MarkAsRead(r.Context(), userID, notificationID); err != nil {
		writeNotificationError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}

// OpenNotification marks a notification read and returns the screen to open.
// If it cannot be marked read, the error still carries the notifications
// list route so the client has somewhere to go.
// @Summary Open a notification
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /notifications/{id}/open [post]
func (h *NotificationHandler) OpenNotification(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	notificationID, ok := pathUUID(w, r, "notification")
	if !ok {
		return
	}

	route, err := h.notificationUsecase.OpenNotification(r.Context(), userID, notificationID)
	if err != nil {
		if errors.Is(err, usecase.ErrMarkReadFailed) && route != nil {
			response.Fallback(w, http.StatusInternalServerError, "Could not open this notification", route)
			return
		}
		writeNotificationError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notification opened successfully", route)
}

func writeNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		response.NotFound(w, "Notification not found")
	case errors.Is(err, usecase.ErrNotificationNotOwned):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrMarkReadFailed):
		response.InternalServerError(w, "Could not mark notification as read")
	default:
		response.InternalServerError(w, "Failed to process notification")
	}
}
