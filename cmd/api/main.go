package main

import (
	"log"
	"time"

	"belleza/internal/config"
	"belleza/internal/database"
	"belleza/internal/domain"
	"belleza/internal/middleware"
	"belleza/internal/modules/appointment"
	"belleza/internal/modules/catalog"
	"belleza/internal/modules/notification"
	"belleza/internal/modules/notification/email"
	"belleza/internal/modules/notification/sms"
	"belleza/internal/modules/reminder"
	"belleza/internal/modules/request"
	jwtsvc "belleza/internal/pkg/jwt"
	"belleza/internal/pkg/logger"
	"belleza/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db, repository.Models()...); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	appointmentRepo := repository.NewAppointmentRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	emailSender := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom, cfg.NotifyTimeout)
	smsSender := sms.NewWebhookSender(cfg.SMSURL, cfg.SMSToken, cfg.NotifyTimeout)

	notificationService := notification.NewService(
		appointmentRepo, profileRepo, serviceRepo, emailSender, smsSender, zlog)
	notificationHandler := notification.NewHandler(notificationService)

	appointmentService := appointment.NewService(
		appointmentRepo, serviceRepo, notificationService, zlog)
	appointmentHandler := appointment.NewHandler(appointmentService)

	requestService := request.NewService(requestRepo, appointmentService, zlog)
	requestHandler := request.NewHandler(requestService)

	reminderService := reminder.NewService(
		appointmentRepo, notificationService, cfg.ReminderLead, cfg.ReminderWindow, zlog)
	reminderHandler := reminder.NewHandler(reminderService)

	catalogService := catalog.NewService(serviceRepo, profileRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public: the booking form's catalog and the pre-flight slot check
		catalogHandler.RegisterRoutes(v1)
		appointmentHandler.RegisterPublicRoutes(v1)

		// cron trigger for the reminder dispatcher
		reminderHandler.RegisterRoutes(v1)

		// authenticated clients submit booking requests and appointments
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			requestHandler.RegisterClientRoutes(authed)
			appointmentHandler.RegisterRoutes(authed)
		}

		// staff/admin only: request review and the notification endpoint
		staff := v1.Group("/")
		staff.Use(middleware.Auth(j), middleware.RequireRole(
			string(domain.RoleStaff), string(domain.RoleAdmin)))
		{
			requestHandler.RegisterStaffRoutes(staff)
			notificationHandler.RegisterRoutes(staff)
		}
	}

	zlog.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
