package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"complaintbox/internal/application/attachment"
	complaintUC "complaintbox/internal/application/complaint/usecases"
	"complaintbox/internal/application/dashboard"
	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/infrastructure/auth"
	"complaintbox/internal/infrastructure/config"
	"complaintbox/internal/infrastructure/email"
	"complaintbox/internal/infrastructure/pubsub"
	"complaintbox/internal/infrastructure/repository"
	"complaintbox/internal/infrastructure/storage"
	"complaintbox/internal/interfaces/http/handlers"
	"complaintbox/internal/interfaces/http/middleware"
	"complaintbox/internal/shared/logger"
)

// Container wires the full application graph behind the router.
type Container struct {
	Router *gin.Engine

	redisClient *redis.Client
}

// changeBus is the combined publish/subscribe surface both buses provide.
type changeBus interface {
	complaint.ChangePublisher
	complaint.ChangeFeed
}

func NewContainer(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{}

	var bus changeBus
	if cfg.Redis.Enabled {
		c.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := c.redisClient.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		bus = pubsub.NewRedisChangeBus(c.redisClient, log.Named("pubsub"))
	} else {
		log.Warnw("redis disabled, using in-process change bus")
		bus = pubsub.NewLocalChangeBus()
	}

	blobs, err := storage.NewLocalBlobStore(&cfg.Storage, log.Named("storage"))
	if err != nil {
		return nil, err
	}
	attachments := attachment.NewLifecycle(blobs, log.Named("attachment"))

	complaintRepo := repository.NewComplaintRepository(db, bus, log.Named("repository"))

	var notifier complaintUC.Notifier
	if cfg.Email.Enabled && cfg.Email.AdminAddress != "" {
		notifier = email.NewSMTPNotifier(&cfg.Email)
	}

	submitUC := complaintUC.NewSubmitComplaintUseCase(complaintRepo, attachments, notifier, log.Named("usecase.submit"))
	listUC := complaintUC.NewListComplaintsUseCase(complaintRepo, log.Named("usecase.list"))
	markReadUC := complaintUC.NewMarkComplaintReadUseCase(complaintRepo, log.Named("usecase.mark_read"))
	deleteUC := complaintUC.NewDeleteComplaintUseCase(complaintRepo, attachments, log.Named("usecase.delete"))

	tokens := auth.NewSessionTokenService(
		cfg.Auth.Session.Secret,
		cfg.Auth.Admin.Username,
		cfg.Auth.Admin.Password,
		cfg.Auth.Session.ExpHours,
	)

	engineFactory := func() *dashboard.Engine {
		return dashboard.NewEngine(listUC, markReadUC, deleteUC, bus, log.Named("dashboard"))
	}

	deps := RouterDeps{
		AuthHandler:      handlers.NewAuthHandler(tokens, cfg.Auth.Cookie, log.Named("handler.auth")),
		ComplaintHandler: handlers.NewComplaintHandler(submitUC, log.Named("handler.complaint")),
		DashboardHandler: handlers.NewDashboardHandler(engineFactory, log.Named("handler.dashboard")),
		SessionGate:      middleware.NewSessionGate(tokens, cfg.Auth.Cookie, log.Named("middleware.auth")),
		Config:           cfg,
		Logger:           log.Named("http"),
	}

	c.Router = NewRouter(deps)
	return c, nil
}

// Close releases container-owned resources.
func (c *Container) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}
