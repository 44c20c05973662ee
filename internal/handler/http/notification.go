package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/educenter/backoffice-go/internal/domain/notification"
	"github.com/educenter/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// Create implements NotificationHandler.
func (h *NotificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req notification.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create notification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.notificationService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create notification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification created successfully", created)
}

// List implements NotificationHandler. Only notifications targeted at the
// caller's identity tuple are returned.
func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	recipient, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	list, err := h.notificationService.ListVisible(r.Context(), recipient)
	if err != nil {
		slog.Error("List notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	recipient, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.notificationService.MarkRead(r.Context(), recipient, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// Delete implements NotificationHandler.
func (h *NotificationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.notificationService.Delete(r.Context(), actor, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification deleted successfully", nil)
}
