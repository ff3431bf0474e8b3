package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/domain/fiber/handler"
	"jobboard/internal/middleware"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" || code == fiber.StatusInternalServerError {
				message = "Внутренняя ошибка сервера"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	vacancyRepo := repository.NewVacancyRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo)
	userUC := usecase.NewUserUsecase(userRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo)
	applicationUC := usecase.NewApplicationUsecase(db, applicationRepo, vacancyRepo, userRepo)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	adminUC := usecase.NewAdminUsecase(db, userRepo, reportRepo)
	dashboardUC := usecase.NewDashboardUsecase(resumeRepo, vacancyRepo, applicationRepo)

	authMW := middleware.NewAuthMiddleware(userRepo)

	handler.NewAuthHandler(authUC, userUC, authMW).RegisterRoutes(app)
	handler.NewResumeHandler(resumeUC, authMW).RegisterRoutes(app)
	handler.NewVacancyHandler(vacancyUC, authMW).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC, authMW).RegisterRoutes(app)
	handler.NewNotificationHandler(notificationUC, authMW).RegisterRoutes(app)
	handler.NewAdminHandler(adminUC, authMW).RegisterRoutes(app)
	handler.NewDashboardHandler(dashboardUC, authMW).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Europe/Moscow",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Resume{},
		&model.Vacancy{},
		&model.Application{},
		&model.Notification{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
