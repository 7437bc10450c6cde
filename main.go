package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/database"
	"github.com/awebcode/backend-travel-trippz/handlers"
	AuthHandler "github.com/awebcode/backend-travel-trippz/handlers/auth"
	BookingHandler "github.com/awebcode/backend-travel-trippz/handlers/booking"
	HotelHandler "github.com/awebcode/backend-travel-trippz/handlers/hotel"
	ImageHandler "github.com/awebcode/backend-travel-trippz/handlers/image"
	UserHandler "github.com/awebcode/backend-travel-trippz/handlers/user"
	"github.com/awebcode/backend-travel-trippz/middlewares"
	BookingRepository "github.com/awebcode/backend-travel-trippz/repositories/booking"
	HotelRepository "github.com/awebcode/backend-travel-trippz/repositories/hotel"
	SessionRepository "github.com/awebcode/backend-travel-trippz/repositories/session"
	StorageRepository "github.com/awebcode/backend-travel-trippz/repositories/storage"
	UserRepository "github.com/awebcode/backend-travel-trippz/repositories/user"
	VerificationRepository "github.com/awebcode/backend-travel-trippz/repositories/verification"
	cache "github.com/awebcode/backend-travel-trippz/services"
	"github.com/awebcode/backend-travel-trippz/services/notify"
	"github.com/awebcode/backend-travel-trippz/services/social"
	token "github.com/awebcode/backend-travel-trippz/services/token"
	"github.com/awebcode/backend-travel-trippz/types"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database Connection
	sqlDB, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer sqlDB.Close()

	// Repositories
	userRepository := UserRepository.NewRepository(sqlDB)
	sessionRepository := SessionRepository.NewRepository(sqlDB)
	verificationRepository := VerificationRepository.NewRepository(sqlDB)
	hotelRepository := HotelRepository.NewRepository(sqlDB)
	bookingRepository := BookingRepository.NewRepository(sqlDB)
	storageRepository := StorageRepository.NewRepository(cfg)

	// Services
	tokenCodec := token.NewCodec(cfg)
	rateLimitCache := cache.NewCache(configs.LOGIN_RATE_WINDOW)
	socialVerifier := social.NewHTTPVerifier(cfg, nil)
	notifier := notify.NewLogNotifier(logger)

	// Handlers
	mainHandler := handlers.NewHandler()
	authHandler := AuthHandler.NewHandler(cfg, tokenCodec, userRepository, sessionRepository,
		verificationRepository, socialVerifier, notifier, notifier)
	userHandler := UserHandler.NewHandler(userRepository)
	hotelHandler := HotelHandler.NewHandler(hotelRepository)
	bookingHandler := BookingHandler.NewHandler(bookingRepository, hotelRepository)
	imageHandler := ImageHandler.NewHandler(storageRepository)

	// Router
	router := gin.Default()
	router.Use(configs.CorsConfig(), configs.SecureConfig)
	router.NoRoute(mainHandler.NotFound)

	router.GET("/", mainHandler.Index)

	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", middlewares.LoginRateLimit(rateLimitCache), authHandler.Register)
		auth.POST("/login", middlewares.LoginRateLimit(rateLimitCache), authHandler.Login)
		auth.POST("/social-login", middlewares.LoginRateLimit(rateLimitCache), authHandler.SocialLogin)
		auth.POST("/forgot-password", middlewares.LoginRateLimit(rateLimitCache), authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.POST("/verify-email", authHandler.VerifyEmail)
	}

	router.GET("/hotels", middlewares.ValidateQuery(), hotelHandler.GetHotels)
	router.GET("/hotels/:id", hotelHandler.GetHotel)

	// Authenticated routes
	authenticated := router.Group("/")
	authenticated.Use(middlewares.AuthMiddleware(cfg, tokenCodec, sessionRepository, userRepository))
	{
		authenticated.GET("/users/me", userHandler.GetMe)

		authenticated.POST("/auth/logout", authHandler.Logout)
		authenticated.POST("/auth/logout-others", authHandler.LogoutOtherDevices)
		authenticated.POST("/auth/logout-all", authHandler.LogoutAllDevices)
		authenticated.GET("/auth/sessions", authHandler.Sessions)
		authenticated.POST("/auth/send-email-verification", authHandler.SendEmailVerification)
		authenticated.POST("/auth/send-phone-verification", authHandler.SendPhoneVerification)
		authenticated.POST("/auth/verify-phone", authHandler.VerifyPhone)

		bookings := authenticated.Group("/bookings")
		bookings.Use(middlewares.RestrictTo(types.RoleUser, types.RoleServiceProvider, types.RoleAdmin))
		{
			bookings.GET("", bookingHandler.GetMyBookings)
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
		}

		providers := authenticated.Group("/hotels")
		providers.Use(middlewares.RequirePermission(configs.PermissionManageHotels))
		{
			providers.POST("", hotelHandler.CreateHotel)
			providers.DELETE("/:id", hotelHandler.DeleteHotel)
		}

		images := authenticated.Group("/images")
		images.Use(middlewares.RequirePermission(configs.PermissionUploadMedia))
		{
			images.POST("/presign", imageHandler.GeneratePresignedURL)
		}

		admin := authenticated.Group("/admin")
		{
			admin.GET("/users", middlewares.RequirePermission(configs.PermissionManageUsers), userHandler.ListUsers)
			admin.GET("/bookings", middlewares.RequirePermission(configs.PermissionManageBookings), bookingHandler.ListBookings)
		}
	}

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg configs.Config) *zap.Logger {
	if cfg.IsProduction() {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
