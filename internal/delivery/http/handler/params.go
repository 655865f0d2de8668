package handler

import (
	"net/http"

	"caregiver-marketplace/internal/delivery/http/middleware"
	"caregiver-marketplace/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// currentUserID reads the authenticated user, answering 401 when it is missing
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
	}
	return userID, ok
}

// pathUUID parses the {id} route variable, answering 400 when it is not a UUID
func pathUUID(w http.ResponseWriter, r *http.Request, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid "+resource+" ID")
		return uuid.Nil, false
	}
	return id, true
}
