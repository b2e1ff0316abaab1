// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mediflow/internal/admin"
	"mediflow/internal/alerts"
	"mediflow/internal/appointments"
	"mediflow/internal/auth"
	"mediflow/internal/dashboard"
	"mediflow/internal/ehr"
	"mediflow/internal/hospitals"
	"mediflow/internal/messages"
	"mediflow/internal/patients"
	"mediflow/internal/prescriptions"
	"mediflow/internal/shared/config"
	"mediflow/internal/shared/database"
	"mediflow/internal/tasks"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
	"mediflow/pkg/cache"
	"mediflow/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	codec    *tokens.Codec
	cache    cache.Service
	producer alerts.EventProducer // nil when Kafka is disabled
	log      *logger.Logger

	// shared repositories injected across domains
	userRepo     users.Repository
	hospitalRepo hospitals.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, codec *tokens.Codec, producer alerts.EventProducer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		codec:    codec,
		cache:    cache.NewService(db.Redis),
		producer: producer,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Shared repositories
	r.userRepo = users.NewRepository(r.db.PostgreSQL)
	r.hospitalRepo = hospitals.NewRepository(r.db.PostgreSQL)

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Server-rendered pages
	dashboard.SetupPageRoutes(engine, dashboard.NewController(r.codec), r.codec)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupHospitalRoutes(api)
		r.setupPatientRoutes(api)
		r.setupAppointmentRoutes(api)
		r.setupTaskRoutes(api)
		r.setupMessageRoutes(api)
		r.setupPrescriptionRoutes(api)
		r.setupEHRRoutes(api)
		r.setupAlertRoutes(api)
		r.setupAdminRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "mediflow-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "mediflow-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.PostgreSQL)
	authService := auth.NewService(authRepo, r.hospitalRepo, r.codec)
	authController := auth.NewController(authService, r.log)

	auth.SetupAuthRoutes(rg, authController, r.codec)
}

func (r *Router) setupHospitalRoutes(rg *gin.RouterGroup) {
	hospitalService := hospitals.NewService(r.hospitalRepo)
	hospitalController := hospitals.NewController(hospitalService)

	hospitals.SetupHospitalRoutes(rg, hospitalController)
}

func (r *Router) setupPatientRoutes(rg *gin.RouterGroup) {
	patientRepo := patients.NewRepository(r.db.PostgreSQL)
	patientService := patients.NewService(patientRepo, r.userRepo)
	patientController := patients.NewController(patientService)

	patients.SetupPatientRoutes(rg, patientController, r.codec)
}

func (r *Router) setupAppointmentRoutes(rg *gin.RouterGroup) {
	appointmentRepo := appointments.NewRepository(r.db.PostgreSQL)
	appointmentService := appointments.NewService(appointmentRepo, r.userRepo)
	appointmentController := appointments.NewController(appointmentService)

	appointments.SetupAppointmentRoutes(rg, appointmentController, r.codec)
}

func (r *Router) setupTaskRoutes(rg *gin.RouterGroup) {
	taskRepo := tasks.NewRepository(r.db.PostgreSQL)
	taskService := tasks.NewService(taskRepo)
	taskController := tasks.NewController(taskService)

	tasks.SetupTaskRoutes(rg, taskController, r.codec)
}

func (r *Router) setupMessageRoutes(rg *gin.RouterGroup) {
	messageRepo := messages.NewRepository(r.db.PostgreSQL)
	messageService := messages.NewService(messageRepo, r.userRepo)
	messageController := messages.NewController(messageService)

	messages.SetupMessageRoutes(rg, messageController, r.codec)
}

func (r *Router) setupPrescriptionRoutes(rg *gin.RouterGroup) {
	prescriptionRepo := prescriptions.NewRepository(r.db.PostgreSQL)
	prescriptionService := prescriptions.NewService(prescriptionRepo, r.userRepo)
	prescriptionController := prescriptions.NewController(prescriptionService)

	prescriptions.SetupPrescriptionRoutes(rg, prescriptionController, r.codec)
}

func (r *Router) setupEHRRoutes(rg *gin.RouterGroup) {
	ehrRepo := ehr.NewRepository(r.db.PostgreSQL)
	ehrService := ehr.NewService(ehrRepo, r.userRepo)
	ehrController := ehr.NewController(ehrService)

	ehr.SetupEHRRoutes(rg, ehrController, r.codec)
}

func (r *Router) setupAlertRoutes(rg *gin.RouterGroup) {
	alertRepo := alerts.NewRepository(r.db.PostgreSQL)
	alertService := alerts.NewService(alertRepo, r.producer, r.log)
	alertController := alerts.NewController(alertService)

	alerts.SetupAlertRoutes(rg, alertController, r.codec)
}

func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	patientRepo := patients.NewRepository(r.db.PostgreSQL)
	appointmentRepo := appointments.NewRepository(r.db.PostgreSQL)
	alertRepo := alerts.NewRepository(r.db.PostgreSQL)

	adminService := admin.NewService(
		r.userRepo,
		patientRepo,
		appointmentRepo,
		alertRepo,
		r.cache,
		r.config.Redis.StatsCacheTTL,
	)
	adminController := admin.NewController(adminService)

	admin.SetupAdminRoutes(rg, adminController, r.codec)
}
