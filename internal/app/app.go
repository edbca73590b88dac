// Package app wires configuration, storage, services and the HTTP
// transport together and runs the server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/textcomm/textcomm-server/internal/adapter/blob"
	"github.com/textcomm/textcomm-server/internal/adapter/postgres"
	authmethodrepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/authmethod"
	dmrepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/directmessage"
	grouprepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/group"
	userrepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/user"
	"github.com/textcomm/textcomm-server/internal/auth"
	"github.com/textcomm/textcomm-server/internal/authz"
	"github.com/textcomm/textcomm-server/internal/config"
	accountsvc "github.com/textcomm/textcomm-server/internal/service/account"
	authsvc "github.com/textcomm/textcomm-server/internal/service/auth"
	chatsvc "github.com/textcomm/textcomm-server/internal/service/chat"
	groupsvc "github.com/textcomm/textcomm-server/internal/service/group"
	"github.com/textcomm/textcomm-server/internal/transport/middleware"
	"github.com/textcomm/textcomm-server/internal/transport/rest"
)

// authRatePerMinute caps login/register attempts per client IP.
const authRatePerMinute = 20

// Run is the application entry point. It loads configuration, connects
// to the database, applies migrations, builds the service graph,
// ensures the seed administrator exists, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	blobs, err := blob.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("init uploads dir: %w", err)
	}

	users := userrepo.New(pool)
	groups := grouprepo.New(pool)
	messages := dmrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	guard := authz.NewGuard(cfg.Auth.SeedAdminEmail)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, authMethods, tx, jwtManager, cfg.Auth)
	chatService := chatsvc.NewService(logger, users, messages)
	groupService := groupsvc.NewService(logger, groups, guard, tx)
	accountService := accountsvc.NewService(logger, users, messages, groups, authMethods, blobs, guard, tx, cfg.Uploads)

	if err := authService.EnsureSeedAdmin(ctx); err != nil {
		return fmt.Errorf("ensure seed admin: %w", err)
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Auth:           rest.NewAuthHandler(authService, logger),
		Chat:           rest.NewChatHandler(chatService, logger),
		Group:          rest.NewGroupHandler(groupService, logger),
		Profile:        rest.NewProfileHandler(accountService, logger),
		Admin:          rest.NewAdminHandler(accountService, groupService, logger),
		Health:         rest.NewHealthHandler(pool, BuildVersion()),
		Avatars:        blobs,
		RateLimiter:    rateLimiter,
		AuthRatePerMin: authRatePerMinute,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
