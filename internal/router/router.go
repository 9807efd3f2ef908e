package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/devfolio/backend/internal/handlers"
	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mongoDB *mongo.Database, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.CommentLike{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	blogRepo := repositories.NewMongoBlogRepository(mongoDB)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	commentLikeRepo := repositories.NewPostgresCommentLikeRepository(pgdb)
	portfolioRepo := repositories.NewMongoPortfolioRepository(mongoDB)
	testimonialRepo := repositories.NewMongoTestimonialRepository(mongoDB)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public read-only routes ---
	public := e.Group("/api/v1")

	// --- Protected routes (require local JWT) ---
	protected := e.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware())

	// --- Admin routes ---
	admin := e.Group("/api/v1")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())

	// User routes; the sync endpoint takes a raw Firebase ID token since it
	// is called before the client holds a local JWT
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(protected, admin)
	sync := e.Group("/api/v1/users/sync")
	sync.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	userHandler.RegisterSyncRoutes(sync)
	log.Println("User routes configured.")

	// Blog routes
	blogHandler := handlers.NewBlogHandler(blogRepo, commentRepo, commentLikeRepo)
	blogHandler.RegisterBlogRoutes(public, admin)
	log.Println("Blog routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, commentLikeRepo, blogRepo)
	commentHandler.RegisterCommentRoutes(public, protected)
	log.Println("Comment routes configured.")

	// Portfolio routes
	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo)
	portfolioHandler.RegisterPortfolioRoutes(public, admin)
	log.Println("Portfolio routes configured.")

	// Testimonial routes
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo)
	testimonialHandler.RegisterTestimonialRoutes(public, admin)
	log.Println("Testimonial routes configured.")

	log.Println("All routes configured.")
}
