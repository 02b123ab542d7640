package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/appdotbuilder/gym-website/internal/booking"
	"github.com/appdotbuilder/gym-website/internal/config"
	"github.com/appdotbuilder/gym-website/internal/email"
	"github.com/appdotbuilder/gym-website/internal/facility"
	"github.com/appdotbuilder/gym-website/internal/gymclass"
	"github.com/appdotbuilder/gym-website/internal/membership"
	"github.com/appdotbuilder/gym-website/internal/trainer"
	"github.com/appdotbuilder/gym-website/internal/training"
	"github.com/appdotbuilder/gym-website/internal/user"
)

type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	db      *sqlx.DB
	config  *config.Config
	email   *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	gymclassRepo := gymclass.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	trainingRepo := training.NewRepository(db)
	facilityRepo := facility.NewRepository(db)

	userService := user.NewService(userRepo)
	membershipService := membership.NewService(membershipRepo, userRepo)
	gymclassService := gymclass.NewService(gymclassRepo, trainerRepo)
	bookingService := booking.NewService(bookingRepo, userRepo, gymclassRepo, emailService)
	trainingService := training.NewService(trainingRepo, userRepo, trainerRepo, emailService)

	userHandler := user.NewHandler(userService)
	membershipHandler := membership.NewHandler(membershipService)
	trainerHandler := trainer.NewHandler(trainerRepo)
	gymclassHandler := gymclass.NewHandler(gymclassService)
	bookingHandler := booking.NewHandler(bookingService)
	trainingHandler := training.NewHandler(trainingService)
	facilityHandler := facility.NewHandler(facilityRepo)

	router.POST("/users", userHandler.CreateUser)
	router.GET("/users", userHandler.ListUsers)
	router.GET("/users/:userID", userHandler.GetUser)
	router.PATCH("/users/:userID", userHandler.UpdateUser)
	router.GET("/users/:userID/membership", membershipHandler.GetCurrentMembership)
	router.GET("/users/:userID/bookings", bookingHandler.GetUserBookings)
	router.GET("/users/:userID/training-sessions", trainingHandler.GetUserSessions)

	router.POST("/membership-tiers", membershipHandler.CreateTier)
	router.GET("/membership-tiers", membershipHandler.ListTiers)
	router.GET("/membership-tiers/:tierID", membershipHandler.GetTier)
	router.POST("/memberships", membershipHandler.CreateMembership)

	router.POST("/trainers", trainerHandler.CreateTrainer)
	router.GET("/trainers", trainerHandler.ListTrainers)
	router.GET("/trainers/:trainerID", trainerHandler.GetTrainer)
	router.GET("/trainers/:trainerID/sessions", trainingHandler.GetTrainerSessions)
	router.GET("/trainers/:trainerID/availability", trainingHandler.GetAvailability)

	router.POST("/classes", gymclassHandler.CreateClass)
	router.GET("/classes", gymclassHandler.ListClasses)
	router.GET("/classes/:classID", gymclassHandler.GetClass)
	router.POST("/classes/:classID/schedules", gymclassHandler.CreateSchedule)
	router.GET("/schedules", gymclassHandler.ListSchedules)
	router.POST("/schedules/:scheduleID/cancel", gymclassHandler.CancelSchedule)
	router.GET("/schedules/:scheduleID/bookings", bookingHandler.GetScheduleBookings)

	router.POST("/bookings", bookingHandler.BookClass)
	router.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)

	router.POST("/training-sessions", trainingHandler.BookSession)
	router.GET("/training-sessions/:sessionID", trainingHandler.GetSession)
	router.PATCH("/training-sessions/:sessionID", trainingHandler.UpdateSession)

	router.POST("/facilities", facilityHandler.CreateFacility)
	router.GET("/facilities", facilityHandler.ListFacilities)
	router.GET("/gym-info", facilityHandler.GetGymInfo)
	router.PUT("/gym-info", facilityHandler.UpdateGymInfo)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops accepting new connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
