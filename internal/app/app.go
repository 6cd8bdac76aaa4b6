package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"javacert_backend/internal/config"
	"javacert_backend/internal/controller"
	"javacert_backend/internal/repository"
	"javacert_backend/internal/service"
	"javacert_backend/pkg/configwatcher"
	"javacert_backend/pkg/database"
	"javacert_backend/pkg/logger"
	"javacert_backend/pkg/monitoring"
	"javacert_backend/pkg/security"
	"javacert_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	configCallbacks []func(*config.Config)
}

type repositories struct {
	topic    *repository.TopicRepository
	question *repository.QuestionRepository
	review   *repository.ReviewRepository
	mastery  *repository.MasteryRepository
	quiz     *repository.QuizRepository
}

type services struct {
	validation *service.ValidationService
	review     *service.ReviewService
	report     *service.ReportService
	question   *service.QuestionService
	quiz       *service.QuizService
}

type controllers struct {
	review   *controller.ReviewController
	report   *controller.ReportController
	question *controller.QuestionController
	quiz     *controller.QuizController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		topic:    repository.NewTopicRepository(db),
		question: repository.NewQuestionRepository(db),
		review:   repository.NewReviewRepository(db),
		mastery:  repository.NewMasteryRepository(db),
		quiz:     repository.NewQuizRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.validation = service.NewValidationService()
	s.review = service.NewReviewService(repos.review, repos.question, repos.topic, repos.mastery, s.validation)
	s.report = service.NewReportService(repos.review)
	s.question = service.NewQuestionService(repos.question, repos.topic, repos.review)
	s.quiz = service.NewQuizService(repos.quiz, repos.question, repos.topic, s.validation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		review:   controller.NewReviewController(s.review),
		report:   controller.NewReportController(s.report),
		question: controller.NewQuestionController(s.question),
		quiz:     controller.NewQuizController(s.quiz),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("javacert-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	// 配置热更新：回调方自行决定哪些字段支持运行时生效
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded")
		app.Config = newCfg
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
