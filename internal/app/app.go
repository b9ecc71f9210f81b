package app

import (
	"classroom_backend/internal/config"
	"classroom_backend/internal/controller"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/service"
	"classroom_backend/pkg/database"
	"classroom_backend/pkg/logger"
	"classroom_backend/pkg/monitoring"
	"classroom_backend/pkg/tracing"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repositories struct {
	User         *repository.UserRepository
	Course       *repository.CourseRepository
	Post         *repository.PostRepository
	Answer       *repository.AnswerRepository
	Comment      *repository.CommentRepository
	Attachment   *repository.AttachmentRepository
	Notification *repository.NotificationRepository
	Subjects     *repository.SubjectResolver
}

type Services struct {
	Auth         *service.AuthService
	Course       *service.CourseService
	Post         *service.PostService
	Answer       *service.AnswerService
	Comment      *service.CommentService
	Attachment   *service.AttachmentService
	Notification *service.NotificationService
	Mail         *service.MailService
	Storage      *service.StorageService
}

type Controllers struct {
	Auth         *controller.AuthController
	Course       *controller.CourseController
	Post         *controller.PostController
	Answer       *controller.AnswerController
	Comment      *controller.CommentController
	Attachment   *controller.AttachmentController
	Notification *controller.NotificationController
	Health       *controller.HealthController
}

type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RDB         *redis.Client
	Router      *gin.Engine
	Controllers *Controllers
}

func New(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	monitoring.Init()

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("classroom-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Warn("tracing disabled, collector unreachable", zap.Error(err))
		}
	}

	repos := buildRepositories(db, rdb)
	services := buildServices(cfg, repos, rdb)
	controllers := buildControllers(db, rdb, services)

	a := &App{
		Config:      cfg,
		DB:          db,
		RDB:         rdb,
		Controllers: controllers,
	}
	a.Router = a.buildRouter()
	return a, nil
}

func buildRepositories(db *gorm.DB, rdb *redis.Client) *Repositories {
	return &Repositories{
		User:         repository.NewUserRepository(db),
		Course:       repository.NewCourseRepository(db),
		Post:         repository.NewPostRepository(db),
		Answer:       repository.NewAnswerRepository(db),
		Comment:      repository.NewCommentRepository(db),
		Attachment:   repository.NewAttachmentRepository(db),
		Notification: repository.NewNotificationRepository(db, rdb),
		Subjects:     repository.NewSubjectResolver(db),
	}
}

func buildServices(cfg *config.Config, repos *Repositories, rdb *redis.Client) *Services {
	mailSvc := service.NewMailService(cfg)
	storageSvc := service.NewStorageService(cfg)
	notificationSvc := service.NewNotificationService(repos.Notification)

	return &Services{
		Auth:         service.NewAuthService(repos.User, mailSvc, rdb, cfg),
		Course:       service.NewCourseService(repos.Course, repos.User, mailSvc, notificationSvc),
		Post:         service.NewPostService(repos.Post, repos.Course, repos.User),
		Answer:       service.NewAnswerService(repos.Answer, repos.Course),
		Comment:      service.NewCommentService(repos.Comment, repos.Course, repos.Subjects),
		Attachment:   service.NewAttachmentService(repos.Attachment, repos.Course, repos.Subjects, storageSvc),
		Notification: notificationSvc,
		Mail:         mailSvc,
		Storage:      storageSvc,
	}
}

func buildControllers(db *gorm.DB, rdb *redis.Client, s *Services) *Controllers {
	return &Controllers{
		Auth:         controller.NewAuthController(s.Auth),
		Course:       controller.NewCourseController(s.Course, s.Auth),
		Post:         controller.NewPostController(s.Post, s.Auth),
		Answer:       controller.NewAnswerController(s.Answer, s.Auth),
		Comment:      controller.NewCommentController(s.Comment, s.Auth),
		Attachment:   controller.NewAttachmentController(s.Attachment, s.Auth),
		Notification: controller.NewNotificationController(s.Notification, s.Auth),
		Health:       controller.NewHealthController(db, rdb),
	}
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	a.RDB.Close()
	return nil
}
