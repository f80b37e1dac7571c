package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/controller"
	"github.com/Riaraujo/testecrud/internal/middleware"
	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/Riaraujo/testecrud/pkg/cache"
	"github.com/Riaraujo/testecrud/pkg/configwatcher"
	"github.com/Riaraujo/testecrud/pkg/database"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"github.com/Riaraujo/testecrud/pkg/monitoring"
	"github.com/Riaraujo/testecrud/pkg/security"
	"github.com/Riaraujo/testecrud/pkg/tracing"
	"github.com/Riaraujo/testecrud/web"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  *repository.Store
	Mongo  *mongo.Client
	DB     *gorm.DB
	Redis  *redis.Client

	origins         *security.OriginList
	limiter         *security.RateLimit
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	folder      *service.FolderService
	exam        *service.ExamService
	question    *service.QuestionService
	tags        *service.KnowledgeTagService
	provisioner *service.Provisioner
	storage     *service.StorageService
	status      *service.StatusService
}

type controllers struct {
	folder   *controller.FolderController
	exam     *controller.ExamController
	question *controller.QuestionController
	tags     *controller.KnowledgeTagController
	upload   *controller.UploadController
	status   *controller.StatusController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// openStore connects the configured database driver.
func (a *App) openStore(cfg *config.Config) (*repository.Store, error) {
	switch cfg.Database.Driver {
	case util.DriverMongo:
		client, db, err := database.InitMongo(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		a.Mongo = client
		return repository.NewMongo(db, cfg.Database.Transactions), nil
	case util.DriverMySQL:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
		if err != nil {
			return nil, fmt.Errorf("mysql: %w", err)
		}
		a.DB = db
		return repository.NewGorm(db), nil
	default:
		logger.Log.Warn("Using in-memory store, data is lost on restart")
		return repository.NewMemory(), nil
	}
}

// openCache returns the redis list cache, or a no-op one when redis is
// disabled or unreachable.
func (a *App) openCache(cfg *config.Config) cache.Cache {
	if !cfg.Redis.Enabled {
		return cache.Nop{}
	}
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Error("Redis unavailable, list cache disabled", zap.Error(err))
		return cache.Nop{}
	}
	a.Redis = rdb
	return cache.NewRedisCache(rdb, cfg.Redis.TTL)
}

func (a *App) initServices(cfg *config.Config, store *repository.Store, c cache.Cache) *services {
	deps := service.NewDeps(store, c)
	s := &services{}

	s.provisioner = service.NewProvisioner(deps, cfg.Provisioning)
	s.folder = service.NewFolderService(deps)
	s.exam = service.NewExamService(deps)
	s.question = service.NewQuestionService(deps, s.provisioner)
	s.tags = service.NewKnowledgeTagService(deps)
	s.storage = service.NewStorageService(cfg)
	s.status = service.NewStatusService(store, cfg.Database.Timeout)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		folder:   controller.NewFolderController(s.folder),
		exam:     controller.NewExamController(s.exam),
		question: controller.NewQuestionController(s.question),
		tags:     controller.NewKnowledgeTagController(s.tags),
		upload:   controller.NewUploadController(s.storage),
		status:   controller.NewStatusController(s.status, web.Index),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())

	router.Use(a.limiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects the configured backends and builds the router. It exits
// the process when the database cannot be reached.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	store, err := app.openStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.Database.Seed {
		if err := database.SeedSample(context.Background(), store); err != nil {
			logger.Log.Error("Failed to seed sample data", zap.Error(err))
		}
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(&cfg.Tracing)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.build(store, app.openCache(cfg))
	return app
}

// NewWithStore builds the app around an already opened store.
func NewWithStore(cfg *config.Config, store *repository.Store, c cache.Cache) *App {
	app := &App{Config: cfg}
	app.build(store, c)
	return app
}

func (a *App) build(store *repository.Store, c cache.Cache) {
	cfg := a.Config
	a.Store = store
	a.origins = security.NewOriginList(cfg.CORS.AllowedOrigins)
	a.limiter = security.NewRateLimit(cfg.RateLimit.MaxRequests, rateWindow(cfg))

	a.services = a.initServices(cfg, store, c)
	ctrls := a.initControllers(a.services)

	monitoring.Init()
	util.RegisterJSONTagNames()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	a.Router = router

	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, ctrls)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.origins.Set(newCfg.CORS.AllowedOrigins)
		a.limiter.SetLimit(newCfg.RateLimit.MaxRequests, rateWindow(newCfg))
		a.services.provisioner.SetRules(newCfg.Provisioning)
		logger.Log.Info("Applied reloaded config",
			zap.Int("allowed_origins", len(newCfg.CORS.AllowedOrigins)),
			zap.Int("second_day_threshold", newCfg.Provisioning.SecondDayThreshold),
		)
	})
}

func rateWindow(cfg *config.Config) time.Duration {
	return time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
}

// ApplyConfig hands a reloaded config to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if a.Config.Path != "" {
		go configwatcher.WatchConfig(ctx, a.Config.Path, a.ApplyConfig)
	}
	go a.limiter.Run(ctx)

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port), zap.String("driver", a.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Close releases the database, cache and tracer connections.
func (a *App) Close(ctx context.Context) {
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			logger.Log.Error("Failed to disconnect mongo", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
}
