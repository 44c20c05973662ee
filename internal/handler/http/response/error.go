package response

import (
	"errors"
	"net/http"

	"github.com/educenter/backoffice-go/internal/domain/auth"
	"github.com/educenter/backoffice-go/internal/domain/customer"
	"github.com/educenter/backoffice-go/internal/domain/invoice"
	"github.com/educenter/backoffice-go/internal/domain/notification"
	"github.com/educenter/backoffice-go/internal/domain/payroll"
	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/educenter/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Customer domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, customer.ErrTaxNumberExists):
		Conflict(w, "Tax number already registered")

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceNumberExists):
		Conflict(w, "Invoice number already exists")
	case errors.Is(err, invoice.ErrCustomerNotResolved):
		BadRequest(w, "Customer does not exist", nil)
	case errors.Is(err, invoice.ErrInvalidInvoiceStatus):
		BadRequest(w, "Invalid invoice status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this staff and period")
	case errors.Is(err, payroll.ErrStaffNotResolved):
		BadRequest(w, "Staff member does not exist", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrDeleteForbidden):
		Forbidden(w, "Only the creator or an elevated role may delete this notification")
	case errors.Is(err, notification.ErrInvalidNotificationType):
		BadRequest(w, "Invalid notification type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
