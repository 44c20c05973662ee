package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/educenter/backoffice-go/internal/domain/invoice"
	"github.com/educenter/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InvoiceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.Service
}

func NewInvoiceHandler(invoiceService invoice.Service) InvoiceHandler {
	return &InvoiceHandlerImpl{invoiceService: invoiceService}
}

// Create implements InvoiceHandler.
func (h *InvoiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.invoiceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", created)
}

// GetByID implements InvoiceHandler.
func (h *InvoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.invoiceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements InvoiceHandler.
func (h *InvoiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := invoice.InvoiceFilter{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 20),
	}
	if v := r.URL.Query().Get("customer_id"); v != "" {
		filter.CustomerID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	list, err := h.invoiceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List invoices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Update implements InvoiceHandler.
func (h *InvoiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req invoice.UpdateInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.invoiceService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice updated successfully", updated)
}

// Delete implements InvoiceHandler.
func (h *InvoiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.invoiceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice deleted successfully", nil)
}

func parseIntQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
