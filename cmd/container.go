package main

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/freejob-server/internal/config"
	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
	"github.com/dtroode/freejob-server/internal/password"
	"github.com/dtroode/freejob-server/internal/repository/postgres"
	"github.com/dtroode/freejob-server/internal/repository/redis"
	"github.com/dtroode/freejob-server/internal/service"
	"github.com/dtroode/freejob-server/internal/token"
)

// container holds the process-wide dependencies shared by all subcommands.
type container struct {
	cfg    *config.Config
	logger *logger.Logger

	db          *postgres.Connection
	redisClient *goredis.Client

	users         model.UserStore
	refreshTokens model.RefreshTokenStore
	offers        model.OfferStore
	applications  model.ApplicationStore

	hasher       model.PasswordHasher
	tokenManager model.TokenManager

	tokenService *service.TokenService
	userService  *service.User
}

// newContainer connects to the database, picks the refresh token store and builds the core services.
func newContainer(ctx context.Context, cfg *config.Config, lg *logger.Logger) (*container, error) {
	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.ConnectRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := &container{
		cfg:          cfg,
		logger:       lg,
		db:           db,
		users:        postgres.NewUserRepository(db),
		offers:       postgres.NewOfferRepository(db),
		applications: postgres.NewApplicationRepository(db),
		hasher: password.NewArgon2id(password.Params{
			Time:    cfg.Argon2.Time,
			MemKiB:  cfg.Argon2.MemKiB,
			Threads: cfg.Argon2.Par,
		}),
		tokenManager: token.NewJWT(cfg.JWT.Secret, cfg.JWT.Leeway),
	}

	switch cfg.Refresh.Store {
	case config.RefreshStoreRedis:
		c.redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := c.redisClient.Ping(ctx).Err(); err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		c.refreshTokens = redis.NewRefreshTokenRepository(c.redisClient, cfg.Redis.Retention)
	default:
		c.refreshTokens = postgres.NewRefreshTokenRepository(db)
	}

	lg.Info("refresh token store selected", "store", cfg.Refresh.Store)

	c.tokenService = service.NewTokenService(c.tokenManager, c.refreshTokens, c.users, service.TokenConfig{
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.Refresh.TTL,
	}, lg)
	c.userService = service.NewUser(c.users, c.tokenService, lg)

	return c, nil
}

// Close releases the connections held by the container.
func (c *container) Close() {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			c.logger.Error("failed to close redis client", "error", err)
		}
	}
	if c.db != nil {
		_ = c.db.Close()
	}
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.New(cfg.LogLevel), nil
}
