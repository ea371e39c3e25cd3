package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner/internal/config"
	"planner/internal/handler"
	"planner/internal/middleware"
	"planner/internal/repository"
	"planner/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	Store  store.Store
	Config *config.Config
	Log    *zap.Logger
}

// OpenStore returns the store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "sqlite":
		db, err = store.OpenSQLite(cfg.SQLitePath, log)
	case "postgres":
		db, err = store.OpenPostgres(cfg.PostgresDSN(), log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	gs := store.NewGormStore(db)
	if err := gs.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return gs, nil
}

func Init(cfg *config.Config, log *zap.Logger) (*Server, error) {
	ctx := context.Background()

	st, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to open store: %w", err)
	}
	log.Info("✅ Store ready", zap.String("driver", cfg.StoreDriver))

	return New(ctx, cfg, st, log), nil
}

// New wires repositories and routes over an already opened store.
func New(ctx context.Context, cfg *config.Config, st store.Store, log *zap.Logger) *Server {
	// Initialize repositories
	taskRepo := repository.NewTaskRepository(st, log)
	courseRepo := repository.NewCourseRepository(st, log)
	taskRepo.Load(ctx)
	courseRepo.Load(ctx)

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(taskRepo, courseRepo)
	courseHandler := handler.NewCourseHandler(courseRepo)
	viewHandler := handler.NewViewHandler(taskRepo, courseRepo)

	// Setup Gin
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	// View routes
	r.GET("/home", viewHandler.Home)
	r.GET("/tasks", viewHandler.Tasks)
	r.GET("/dates/:date/tasks", viewHandler.Day)

	// Task routes
	r.POST("/tasks", taskHandler.Create)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.POST("/tasks/undo", taskHandler.Undo)
	r.POST("/dates/:date/tasks/:id/toggle", taskHandler.Toggle)
	r.DELETE("/dates/:date/tasks/:id", taskHandler.Delete)

	// Course routes
	r.GET("/courses", courseHandler.GetAll)
	r.POST("/courses", courseHandler.Create)
	r.PUT("/courses/:id", courseHandler.Update)
	r.DELETE("/courses/:id", courseHandler.Delete)
	r.PUT("/courses/:id/color", courseHandler.SetColor)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		Store:  st,
		Config: cfg,
		Log:    log,
	}
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Info("🚀 Server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatal("❌ Failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	s.Log.Info("✅ Server exited properly")
}
