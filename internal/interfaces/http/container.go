package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appnotification "github.com/waveline-inc/waveline/internal/application/notification"
	apppayment "github.com/waveline-inc/waveline/internal/application/payment"
	appreminder "github.com/waveline-inc/waveline/internal/application/reminder"
	appsponsorship "github.com/waveline-inc/waveline/internal/application/sponsorship"
	"github.com/waveline-inc/waveline/internal/application/swap"
	"github.com/waveline-inc/waveline/internal/infrastructure/blockchain"
	"github.com/waveline-inc/waveline/internal/infrastructure/cache"
	"github.com/waveline-inc/waveline/internal/infrastructure/config"
	"github.com/waveline-inc/waveline/internal/infrastructure/email"
	"github.com/waveline-inc/waveline/internal/infrastructure/scheduler"
	"github.com/waveline-inc/waveline/internal/interfaces/http/middleware"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// Container wires repositories, use cases, handlers, and background jobs
// together and owns their lifecycles. Shutdown() releases everything in
// reverse order of construction.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	rateLimiter *middleware.RateLimiter

	// Domain services shared across use cases
	chainClient         *blockchain.RPCClient
	priceStore          *cache.TokenPriceStore
	emailService        *email.SMTPEmailService
	notificationService *appnotification.Service
	reminderService     *appreminder.Service
	ledger              *appsponsorship.Ledger
	eligibility         *apppayment.EligibilityResolver
	quoteService        *swap.QuoteService

	// Background jobs
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initUseCases()
	c.initHandlers()
	c.initScheduler()

	return c
}

// initInfrastructure initializes redis, repositories, the chain client, and
// the early middlewares.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db)

	c.chainClient = blockchain.NewRPCClient(cfg.Chain, log)
	c.priceStore = cache.NewTokenPriceStore(c.redis, fallbackPrices(cfg, log), priceTTL(cfg), log)
	c.emailService = email.NewSMTPEmailService(cfg.Email)

	c.rateLimiter = middleware.NewRateLimiter(c.redis, 100, 1*time.Minute)
}

// initScheduler registers the referral sweep and auto-favorite jobs.
// Jobs are registered here but only started by Start().
func (c *Container) initScheduler() {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		c.log.Fatalw("failed to create scheduler manager", "error", err)
	}

	sweepJob := scheduler.NewReferralSweepJob(c.repos.referralRepo, c.ucs.checkAndCompleteUC, c.log)
	if err := manager.RegisterReferralJobs(sweepJob); err != nil {
		c.log.Fatalw("failed to register referral jobs", "error", err)
	}

	autoFavoriteJob := scheduler.NewAutoFavoriteJob(c.repos.programRepo, c.ucs.autoAddFavoritesUC, c.log)
	if err := manager.RegisterSponsorshipJobs(autoFavoriteJob); err != nil {
		c.log.Fatalw("failed to register sponsorship jobs", "error", err)
	}

	reminderJob := scheduler.NewReminderSweepJob(c.reminderService)
	if err := manager.RegisterReminderJobs(reminderJob); err != nil {
		c.log.Fatalw("failed to register reminder jobs", "error", err)
	}

	c.schedulerManager = manager
}

// Start launches the background jobs.
func (c *Container) Start() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs and closes the redis connection. The
// database handle is owned by the caller and closed separately.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// initRedis creates and tests the redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established")

	return redisClient
}
