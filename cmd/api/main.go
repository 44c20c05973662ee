package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/educenter/backoffice-go/internal/config"
	appHTTP "github.com/educenter/backoffice-go/internal/handler/http"
	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/educenter/backoffice-go/internal/pkg/jwt"
	"github.com/educenter/backoffice-go/internal/repository/postgresql"
	authService "github.com/educenter/backoffice-go/internal/service/auth"
	customerService "github.com/educenter/backoffice-go/internal/service/customer"
	invoiceService "github.com/educenter/backoffice-go/internal/service/invoice"
	notificationService "github.com/educenter/backoffice-go/internal/service/notification"
	payrollService "github.com/educenter/backoffice-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if state := db.Health(context.Background()); state != database.HealthConnected {
		fmt.Println("Database health check failed:", state)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	customerSvc := customerService.NewCustomerService(customerRepo)
	invoiceSvc := invoiceService.NewInvoiceService(invoiceRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	customerHandler := appHTTP.NewCustomerHandler(customerSvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		customerHandler,
		invoiceHandler,
		payrollHandler,
		notificationHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
