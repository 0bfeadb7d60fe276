package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/benchlane/benchlane/internal/company"
	companyStore "github.com/benchlane/benchlane/internal/company/store"
	"github.com/benchlane/benchlane/internal/config"
	"github.com/benchlane/benchlane/internal/contract"
	contractStore "github.com/benchlane/benchlane/internal/contract/store"
	"github.com/benchlane/benchlane/internal/conversation"
	conversationStore "github.com/benchlane/benchlane/internal/conversation/store"
	"github.com/benchlane/benchlane/internal/database"
	"github.com/benchlane/benchlane/internal/finalize"
	finalizeStore "github.com/benchlane/benchlane/internal/finalize/store"
	benchHttp "github.com/benchlane/benchlane/internal/http"
	contractHandler "github.com/benchlane/benchlane/internal/http/contract"
	invoiceHandler "github.com/benchlane/benchlane/internal/http/invoice"
	requestHandler "github.com/benchlane/benchlane/internal/http/request"
	timesheetHandler "github.com/benchlane/benchlane/internal/http/timesheet"
	"github.com/benchlane/benchlane/internal/http/webhook"
	"github.com/benchlane/benchlane/internal/invoice"
	invoiceStore "github.com/benchlane/benchlane/internal/invoice/store"
	"github.com/benchlane/benchlane/internal/notify"
	"github.com/benchlane/benchlane/internal/payment"
	"github.com/benchlane/benchlane/internal/request"
	requestStore "github.com/benchlane/benchlane/internal/request/store"
	"github.com/benchlane/benchlane/internal/timesheet"
	timesheetStore "github.com/benchlane/benchlane/internal/timesheet/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		companyService      = company.NewService(companyStore.New(db))
		dispatcher          = notify.NewDispatcher(notify.SlogSink{}, companyService)
		conversationService = conversation.NewService(conversationStore.New(db))
		requestService      = request.NewService(requestStore.New(db), companyService, conversationService, dispatcher)
		contractService     = contract.NewService(contractStore.New(db), dispatcher)
		timesheetService    = timesheet.NewService(timesheetStore.New(db), contractService, dispatcher)
		invoiceService      = invoice.NewService(invoiceStore.New(db), contractService, dispatcher, cfg.Invoicing.DueDays)
		provider            = payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey)
		finalizeService     = finalize.NewService(finalizeStore.New(db), companyService, provider, dispatcher, finalize.FeeSchedule{
			StandardCents:   cfg.Fees.StandardCents,
			DiscountedCents: cfg.Fees.DiscountedCents,
		})
	)

	var (
		requestH   = requestHandler.NewHandler(requestService, conversationService, finalizeService)
		contractH  = contractHandler.NewHandler(contractService)
		timesheetH = timesheetHandler.NewHandler(timesheetService)
		invoiceH   = invoiceHandler.NewHandler(invoiceService)
		webhookH   = webhook.NewHandler(finalizeService, cfg.Payment.WebhookSecret)
	)

	router := benchHttp.New([]byte(cfg.Auth.JWTSecret), requestH, contractH, timesheetH, invoiceH, webhookH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
