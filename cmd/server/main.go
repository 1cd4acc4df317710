package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkline/blog/api/internal/cache"
	"github.com/inkline/blog/api/internal/config"
	"github.com/inkline/blog/api/internal/database"
	"github.com/inkline/blog/api/internal/handler"
	"github.com/inkline/blog/api/internal/middleware"
	"github.com/inkline/blog/api/internal/repository"
	"github.com/inkline/blog/api/internal/service"
	"github.com/inkline/blog/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize database connection
	pool, err := database.Connect(ctx, database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: int32(cfg.Database.MaxConns),
	})
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	if err := database.EnsureSchema(ctx, pool); err != nil {
		slog.Error("failed to ensure schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize cache. An unreachable cache is not fatal: reads fall back
	// to the database and writes are skipped.
	redisCache := cache.NewRedis(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisCache.Close() }()

	if err := redisCache.Ping(ctx); err != nil {
		slog.Warn("cache unreachable, continuing without it",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("error", err.Error()),
		)
	} else {
		slog.Info("connected to cache", slog.String("addr", cfg.Redis.Addr))
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to create JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(service.AuthServiceConfig{
		Users:  userService,
		Tokens: jwtService,
	})
	postService := service.NewPostService(service.PostServiceConfig{
		Repo:  postRepo,
		Cache: redisCache,
	})
	commentService := service.NewCommentService(service.CommentServiceConfig{
		Repo:  commentRepo,
		Posts: postService,
	})
	statsService := service.NewStatsService(service.StatsServiceConfig{
		Repo: statsRepo,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler(pool, redisCache)

	// Auth middleware for protected routes
	authMiddleware := middleware.Auth(jwtService)

	// Setup routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints
	mux.HandleFunc("POST /v1/auth/signup", authHandler.SignUp)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// User endpoints
	mux.HandleFunc("GET /v1/users", userHandler.List)
	mux.HandleFunc("GET /v1/users/{userId}", userHandler.Get)

	// Post endpoints - creation requires authentication, reads are public
	mux.Handle("POST /v1/posts", authMiddleware(http.HandlerFunc(postHandler.Create)))
	mux.HandleFunc("GET /v1/posts/{postId}", postHandler.Get)
	mux.HandleFunc("GET /v1/authors/{authorId}/posts", postHandler.ListByAuthor)

	// Comment endpoints
	mux.Handle("POST /v1/posts/{postId}/comments", authMiddleware(http.HandlerFunc(commentHandler.Create)))

	// Stats endpoints
	mux.HandleFunc("GET /v1/stats/authors/posts", statsHandler.TopAuthorsByPosts)
	mux.HandleFunc("GET /v1/stats/authors/comments", statsHandler.TopAuthorsWithOwnComment)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
