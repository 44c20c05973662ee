package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/educenter/backoffice-go/internal/domain/customer"
	"github.com/educenter/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CustomerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CustomerHandlerImpl struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) CustomerHandler {
	return &CustomerHandlerImpl{customerService: customerService}
}

// Create implements CustomerHandler.
func (c *CustomerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req customer.CreateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create customer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.customerService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create customer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created successfully", created)
}

// GetByID implements CustomerHandler.
func (c *CustomerHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := c.customerService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements CustomerHandler.
func (c *CustomerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	customers, err := c.customerService.List(r.Context())
	if err != nil {
		slog.Error("List customers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, customers)
}

// Update implements CustomerHandler.
func (c *CustomerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req customer.UpdateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update customer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := c.customerService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update customer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated successfully", updated)
}

// Delete implements CustomerHandler.
func (c *CustomerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.customerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted successfully", nil)
}
