package app

import (
	"errors"
	"fmt"
	"time"

	"jobapply_backend/database"
	"jobapply_backend/internal/config"
	"jobapply_backend/internal/email"
	"jobapply_backend/internal/handlers"
	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/middleware"
	"jobapply_backend/internal/models"
	"jobapply_backend/internal/repositories"
	"jobapply_backend/internal/routes"
	"jobapply_backend/internal/services"
	"jobapply_backend/internal/storage"
	"jobapply_backend/internal/validator"
	"jobapply_backend/internal/wizard"
	"jobapply_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, janitor := SetupRouter(cfg, gormDB)
	go janitor.Run()
	defer janitor.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine plus the session janitor. The
// janitor is returned unstarted so tests can drive Sweep directly.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *workers.SessionJanitor) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)

	sessionStore := wizard.NewStore(time.Duration(cfg.Wizard.SessionTTL) * time.Minute)
	janitor := workers.NewSessionJanitor(sessionStore, time.Duration(cfg.Wizard.JanitorInterval)*time.Minute)

	appHandlers := handlers.NewAppHandlers(serviceContainer, sessionStore, storageInstance, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, janitor
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("Email delivery disabled; using mock provider")
		emailProvider = email.NewMockProvider()
	}

	userRepo := repositories.NewUserRepository()
	appRepo := repositories.NewApplicationRepository()
	notificationRepo := repositories.NewNotificationRepository()

	uploader := services.NewUploadService(storageInstance, services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})
	notificationService := services.NewNotificationService(notificationRepo, emailProvider, cfg.Email.AdminEmail)
	applicationService := services.NewApplicationService(appRepo, uploader, notificationService)
	reviewService := services.NewReviewService(appRepo)
	authService := services.NewAuthService(userRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		ApplicationService:  applicationService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		Uploader:            uploader,
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	profile := &models.Profile{
		UserID:   newAdmin.ID,
		Email:    newAdmin.Email,
		FullName: "Administrator",
		Role:     models.UserRoleAdmin,
	}
	if err := tx.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create admin profile in database: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit admin seed: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
