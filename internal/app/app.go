// Package app wires configuration, storage, services and the HTTP router
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Error160/blog-api/internal/api"
	"github.com/Error160/blog-api/internal/core/service"
	"github.com/Error160/blog-api/internal/infrastructure/config"
	mongodb "github.com/Error160/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/Error160/blog-api/internal/infrastructure/db/redis"
	"github.com/Error160/blog-api/internal/infrastructure/http/handlers"
	"github.com/Error160/blog-api/pkg/logger"
)

// App owns the router and the connections behind it.
type App struct {
	Echo *echo.Echo

	mongo *mongo.Client
	redis *goredis.Client
}

// New connects to MongoDB and Redis, prepares indexes, bootstraps the admin
// account when configured and builds the router.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	a := &App{mongo: client, redis: rdb}

	repos := mongodb.NewRepositories(db)
	if err := repos.EnsureIndexes(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	tokens := redisdb.NewTokenRepository(rdb)

	authSvc := service.NewAuthService(repos.Users, tokens, cfg.TokenTTL, logger.Component("auth"))
	categorySvc := service.NewCategoryService(repos.Categories, repos.Posts, logger.Component("categories"))
	postSvc := service.NewPostService(repos.Posts, repos.Categories, repos.Comments, repos.Users, logger.Component("posts"))
	commentSvc := service.NewCommentService(repos.Comments, repos.Posts, repos.Users, logger.Component("comments"))

	if cfg.Admin.Enabled() {
		if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("bootstrap admin: %w", err)
		}
	}

	a.Echo = api.NewRouter(api.Dependencies{
		Auth:       authSvc,
		Categories: categorySvc,
		Posts:      postSvc,
		Comments:   commentSvc,
		Checks: map[string]handlers.Check{
			"mongodb": handlers.MongoCheck(db),
			"redis":   handlers.RedisCheck(rdb),
		},
		Logger: log,
	})

	return a, nil
}

// Close releases the database connections.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.redis.Close(), a.mongo.Disconnect(ctx))
}
