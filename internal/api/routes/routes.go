package routes

import (
	"log"

	"assessment-portal-backend/internal/api/handlers"
	"assessment-portal-backend/internal/api/middleware"
	"assessment-portal-backend/internal/auth"
	"assessment-portal-backend/internal/config"
	"assessment-portal-backend/internal/repository"
	"assessment-portal-backend/internal/service"
	"assessment-portal-backend/internal/storage"
	"assessment-portal-backend/internal/survey"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Bound multipart memory by the configured upload limit
	router.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	// Initialize services
	assessmentService := service.NewAssessmentService(organizationRepo, facilityRepo, assessmentRepo, validator)
	catalogService := service.NewCatalogService(organizationRepo, facilityRepo)
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)

	// Initialize upload sink
	documentStore, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadURLPrefix)
	if err != nil {
		return nil, err
	}

	// Load the survey question catalog
	questions, err := survey.LoadCatalog()
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, documentStore)
	organizationHandler := handlers.NewOrganizationHandler(catalogService)
	facilityHandler := handlers.NewFacilityHandler(catalogService)
	surveyHandler := handlers.NewSurveyHandler(questions)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded documents are served from disk at the persisted URLs
	router.Static(cfg.UploadURLPrefix, documentStore.Dir())

	api := router.Group("/api")

	// Auth routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// The survey catalog is static and needs no tenant
	api.GET("/questions", surveyHandler.ListQuestions)

	// Tenant-scoped routes. A missing or invalid Authorization header is
	// not rejected here; those requests simply see empty result sets.
	tenant := api.Group("")
	tenant.Use(authMiddleware.ResolveTenant())
	{
		tenant.GET("/organizations", organizationHandler.ListOrganizations)
		tenant.GET("/organizations/:name", organizationHandler.GetOrganizationDetail)
		tenant.GET("/facility-types", organizationHandler.ListFacilityTypes)
		tenant.GET("/projects", organizationHandler.ListProjects)

		tenant.GET("/facilities", facilityHandler.ListFacilities)
		tenant.GET("/facilities/:id", facilityHandler.GetFacility)

		tenant.GET("/assessments", assessmentHandler.ListAssessments)
		tenant.POST("/assessments", assessmentHandler.CreateAssessment)
		tenant.POST("/assessments/submit", assessmentHandler.SubmitAssessment)
	}

	log.Printf("Routes configured, uploads stored under %s", documentStore.Dir())

	return router, nil
}
