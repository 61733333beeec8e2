package main

import (
	"context"
	"log"
	"os"

	"entlead/cmd/fx/assessment_fx"
	"entlead/cmd/fx/controllers_fx"
	"entlead/cmd/fx/db_fx"
	"entlead/cmd/fx/doctors_fx"
	"entlead/cmd/fx/leads_fx"
	"entlead/cmd/fx/mail_fx"
	"entlead/cmd/fx/memcache_fx"
	"entlead/cmd/fx/quizbank_fx"
	"entlead/cmd/fx/seo_fx"
	"entlead/cmd/fx/shortlink_fx"
	"entlead/cmd/fx/social_fx"
	"entlead/internal/api/controllers"
	"entlead/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		quizbank_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		doctors_fx.Module,
		leads_fx.Module,
		assessment_fx.Module,
		shortlink_fx.Module,
		seo_fx.Module,
		social_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	assessmentController *controllers.AssessmentController,
	quizController *controllers.QuizController,
	shortLinkController *controllers.ShortLinkController,
	seoController *controllers.SEOController,
	socialController *controllers.SocialController,
	doctorController *controllers.DoctorController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		assessmentController,
		quizController,
		shortLinkController,
		seoController,
		socialController,
		doctorController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assessmentController *controllers.AssessmentController,
	quizController *controllers.QuizController,
	shortLinkController *controllers.ShortLinkController,
	seoController *controllers.SEOController,
	socialController *controllers.SocialController,
	doctorController *controllers.DoctorController,
	dashboardController *controllers.DashboardController) {

	assessments := r.Group("/assessments")
	assessments.POST("/start", assessmentController.Start)
	assessments.GET("/:sessionId", assessmentController.GetState)
	assessments.POST("/:sessionId/triage", assessmentController.SelectTriage)
	assessments.POST("/:sessionId/answer", assessmentController.SubmitAnswer)
	assessments.POST("/:sessionId/contact", assessmentController.SubmitContact)
	assessments.POST("/:sessionId/retake", assessmentController.Retake)

	quizzes := r.Group("/quizzes")
	quizzes.GET("", quizController.List)
	quizzes.GET("/:quizType", quizController.Get)

	r.POST("/links", shortLinkController.Create)
	r.GET("/l/:code", shortLinkController.Resolve)

	r.POST("/seo/analyze", seoController.Analyze)
	r.POST("/social/generate", socialController.Generate)

	doctors := r.Group("/doctors")
	doctors.POST("/register", doctorController.Register)
	doctors.POST("/login", doctorController.Login)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.JWTAuthMiddleware())
	dashboard.Use(middleware.RoleMiddleware("doctor"))
	dashboard.GET("/leads", dashboardController.ListLeads)
	dashboard.GET("/stats", dashboardController.Stats)
	dashboard.POST("/quizzes", dashboardController.CreateQuiz)
	dashboard.GET("/quizzes", dashboardController.ListQuizzes)
	dashboard.DELETE("/quizzes/:id", dashboardController.DeleteQuiz)
}
