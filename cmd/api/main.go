package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel/clickup"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel/email"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel/sheets"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/config"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/database"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/domain/content"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/domain/submission"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/middleware"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/format"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	repo := submission.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	emailSender := email.NewSender(email.Config{
		APIKey: cfg.ResendAPIKey,
		From:   cfg.FromEmail,
		To:     cfg.NotificationEmail,
	}, logger)

	ledger := sheets.NewLedger(sheets.Config{
		ServiceAccountEmail: cfg.GoogleServiceAccountEmail,
		PrivateKey:          cfg.GooglePrivateKey,
		SpreadsheetID:       cfg.GoogleSheetID,
	}, logger)

	tasks := clickup.NewClient(clickup.Config{
		APIToken:       cfg.ClickUpAPIToken,
		ContactListID:  cfg.ClickUpContactListID,
		ReferralListID: cfg.ClickUpReferralListID,
		Fields: clickup.FieldIDs{
			ContactName:     cfg.ClickUpFields.ContactName,
			ContactEmail:    cfg.ClickUpFields.ContactEmail,
			ContactPhone:    cfg.ClickUpFields.ContactPhone,
			Subject:         cfg.ClickUpFields.Subject,
			Message:         cfg.ClickUpFields.Message,
			ClientName:      cfg.ClickUpFields.ClientName,
			ClientDOB:       cfg.ClickUpFields.ClientDOB,
			ClientPhone:     cfg.ClickUpFields.ClientPhone,
			ProgramInterest: cfg.ClickUpFields.ProgramInterest,
			ReferrerName:    cfg.ClickUpFields.ReferrerName,
			ReferrerPhone:   cfg.ClickUpFields.ReferrerPhone,
			ReferralDate:    cfg.ClickUpFields.ReferralDate,
			ServiceNeeds:    cfg.ClickUpFields.ServiceNeeds,
		},
	}, format.PhoneForTracker, logger)

	submissionService := submission.NewService(repo, emailSender, ledger, tasks, logger)
	submissionHandler := submission.NewHandler(submissionService)
	contentHandler := content.NewHandler(cfg.MapsAPIKey)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		submission.RegisterRoutes(v1, submissionHandler)
		content.RegisterRoutes(v1, contentHandler)
	}

	logger.Info("listening", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
