package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team_goal_tracker/internal/config"
	"team_goal_tracker/internal/controller"
	"team_goal_tracker/internal/middleware"
	"team_goal_tracker/internal/repository"
	"team_goal_tracker/internal/service"
	"team_goal_tracker/pkg/database"
	"team_goal_tracker/pkg/logger"
	"team_goal_tracker/pkg/monitoring"
	"team_goal_tracker/pkg/security"
	"team_goal_tracker/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	corsOrigins     *security.OriginSet
	configCallbacks []func(*config.Config)
	tracerProvider  *sdktrace.TracerProvider
}

type repositories struct {
	teamMember *repository.TeamMemberRepository
	goal       *repository.GoalRepository
	mood       *repository.MoodRepository
}

type services struct {
	stats     *service.StatsService
	dashboard *service.DashboardService
	goal      *service.GoalService
	mood      *service.MoodService
}

type controllers struct {
	teamMember *controller.TeamMemberController
	goal       *controller.GoalController
	mood       *controller.MoodController
	stats      *controller.StatsController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 应用热重载后的配置，由 configwatcher 回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		teamMember: repository.NewTeamMemberRepository(db),
		goal:       repository.NewGoalRepository(db),
		mood:       repository.NewMoodRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.stats = service.NewStatsService(repos.goal, repos.mood)
	s.dashboard = service.NewDashboardService(repos.teamMember, repos.goal, repos.mood, s.stats)
	s.goal = service.NewGoalService(repos.goal)
	s.mood = service.NewMoodService(repos.mood)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		teamMember: controller.NewTeamMemberController(repos.teamMember),
		goal:       controller.NewGoalController(s.goal),
		mood:       controller.NewMoodController(s.mood),
		stats:      controller.NewStatsController(s.stats),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())

	a.corsOrigins = security.NewOriginSet(cfg.CORS.AllowedOrigins)
	router.Use(security.CORS(a.corsOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	if a.Redis != nil {
		router.Use(security.RedisRateLimiter(a.Redis, maxRequests, window))
	} else {
		router.Use(security.RateLimiter(maxRequests, window))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, repos, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("team-goal-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	// 配置热更新：CORS白名单与日志级别
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.corsOrigins.Replace(newCfg.CORS.AllowedOrigins)
		logger.SetMode(newCfg.Server.Mode)
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
