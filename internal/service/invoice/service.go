package invoice

import (
	"context"
	"fmt"

	"github.com/educenter/backoffice-go/internal/domain/invoice"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type InvoiceServiceImpl struct {
	invoiceRepo invoice.Repository
}

func NewInvoiceService(invoiceRepo invoice.Repository) invoice.Service {
	return &InvoiceServiceImpl{invoiceRepo: invoiceRepo}
}

// Helper to get user_id from JWT context
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *InvoiceServiceImpl) Create(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	inv := invoice.Invoice{
		CustomerID:    req.CustomerID,
		InvoiceNumber: req.InvoiceNumber,
		Description:   req.Description,
		Total:         req.Total,
		TaxRate:       req.TaxRate,
		CashBackRate:  decimal.Zero,
		RefundAmount:  decimal.Zero,
		Status:        invoice.StatusDraft,
		CreatedBy:     userID,
	}
	if req.CashBackRate != nil {
		inv.CashBackRate = *req.CashBackRate
	}
	if req.RefundAmount != nil {
		inv.RefundAmount = *req.RefundAmount
	}

	// Derived fields must be consistent before the record reaches the
	// repository; a failed derivation aborts the write.
	inv, err = invoice.Recalculate(inv)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *InvoiceServiceImpl) Get(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return mapToResponse(inv), nil
}

func (s *InvoiceServiceImpl) List(ctx context.Context, filter invoice.InvoiceFilter) (invoice.ListInvoiceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	invoices, totalCount, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return invoice.ListInvoiceResponse{}, err
	}

	data := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, mapToResponse(inv))
	}

	return invoice.ListInvoiceResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *InvoiceServiceImpl) Update(ctx context.Context, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if req.Description != nil {
		inv.Description = req.Description
	}
	if req.Total != nil {
		inv.Total = *req.Total
	}
	if req.TaxRate != nil {
		inv.TaxRate = *req.TaxRate
	}
	if req.CashBackRate != nil {
		inv.CashBackRate = *req.CashBackRate
	}
	if req.RefundAmount != nil {
		inv.RefundAmount = *req.RefundAmount
	}
	if req.Status != nil {
		inv.Status = invoice.InvoiceStatus(*req.Status)
	}

	// Recalculate on every edit: a recorded refund re-derives the cash-back
	// rate and overwrites a directly entered one (last writer wins).
	inv, err = invoice.Recalculate(inv)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *InvoiceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToResponse(inv invoice.Invoice) invoice.InvoiceResponse {
	return invoice.InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		InvoiceNumber: inv.InvoiceNumber,
		Description:   inv.Description,
		Total:         inv.Total,
		TaxRate:       inv.TaxRate,
		CashBackRate:  inv.CashBackRate,
		RefundAmount:  inv.RefundAmount,
		TotalAfterTax: inv.TotalAfterTax,
		RevenueTotal:  inv.RevenueTotal,
		Status:        string(inv.Status),
		CreatedBy:     inv.CreatedBy,
	}
}
