package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/lamdh/gradeview/config"
	_ "github.com/lamdh/gradeview/docs" // Swagger docs - auto-generated
	"github.com/lamdh/gradeview/internal/controller"
	authctrl "github.com/lamdh/gradeview/internal/controller/auth"
	studentctrl "github.com/lamdh/gradeview/internal/controller/student"
	teacherctrl "github.com/lamdh/gradeview/internal/controller/teacher"
	"github.com/lamdh/gradeview/internal/fixture"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/logger"
	"github.com/lamdh/gradeview/internal/model"
	"github.com/lamdh/gradeview/internal/service"
	"github.com/lamdh/gradeview/internal/session"
)

// @title GradeView Dashboard API
// @version 1.0
// @description Dashboard service for the AI exam-grading backend: login, teacher review, student feedback views.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			session.NewStore,
			NewBackendClient,
			NewGinEngine,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewTeacherService,
			func(client *gateway.Client, teacherSvc service.TeacherService) service.StudentService {
				return service.NewStudentService(client, teacherSvc)
			},
		),

		// Controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			teacherctrl.NewTeacherController,
			studentctrl.NewStudentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewBackendClient wires the gateway against the configured
// collaborator. In fixture mode the seeded in-process backend is served
// on a loopback listener and the client points at it; this is the only
// way fixture data becomes reachable.
func NewBackendClient(lc fx.Lifecycle, cfg *config.Config, sess *session.Store) (*gateway.Client, error) {
	baseURL := cfg.Backend.BaseURL

	if cfg.Backend.Mode == "fixture" {
		// The ephemeral port must be known now so the client's base URL
		// can point at it; serving waits for the lifecycle to start.
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return nil, err
		}
		srv := &http.Server{Handler: fixture.New().Handler()}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				log.Info().Str("addr", ln.Addr().String()).Msg("Serving fixture backend in-process")
				go func() {
					if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
						log.Error().Err(err).Msg("Fixture backend stopped")
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
		})
		baseURL = "http://" + ln.Addr().String()
	}

	return gateway.New(gateway.Options{
		BaseURL: baseURL,
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}, sess), nil
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures the dashboard routes and
// manages the HTTP server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sess *session.Store,
	authController *authctrl.AuthController,
	teacherController *teacherctrl.TeacherController,
	studentController *studentctrl.StudentController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", authController.Me)

		teacherGroup := api.Group("/teacher", controller.RequireRole(sess, model.RoleTeacher))
		teacherGroup.POST("/materials", teacherController.UploadMaterials)
		teacherGroup.POST("/exams", teacherController.UploadExams)
		teacherGroup.GET("/exams", teacherController.GetExams)
		teacherGroup.GET("/exams/:exam_id/results", teacherController.GetExamResults)
		teacherGroup.GET("/exams/:exam_id/rubric", teacherController.GetRubric)
		teacherGroup.POST("/results/:result_id/feedback", teacherController.AdjustFeedback)

		studentGroup := api.Group("/student", controller.RequireRole(sess, model.RoleStudent))
		studentGroup.GET("/results", studentController.GetResults)
		studentGroup.GET("/results/:exam_id", studentController.GetExamResult)
		studentGroup.GET("/exams/:exam_id/rubric", studentController.GetRubric)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("GradeView dashboard starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
