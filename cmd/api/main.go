package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
	"github.com/sponsvisa/sponsvisa-api/internal/bookmark"
	"github.com/sponsvisa/sponsvisa-api/internal/comment"
	"github.com/sponsvisa/sponsvisa-api/internal/company"
	"github.com/sponsvisa/sponsvisa-api/internal/config"
	"github.com/sponsvisa/sponsvisa-api/internal/logger"
	"github.com/sponsvisa/sponsvisa-api/internal/mail"
	"github.com/sponsvisa/sponsvisa-api/internal/server"
	"github.com/sponsvisa/sponsvisa-api/internal/storage"
	"github.com/sponsvisa/sponsvisa-api/internal/vote"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logg, err := logger.Init()
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer logg.Sync()

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := storage.RunMigrations(ctx, cfg.Postgres); err != nil {
		logg.Fatal("run migrations", zap.Error(err))
	}

	dbPool, err := storage.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logg.Fatal("connect postgres", zap.Error(err))
	}
	defer dbPool.Close()

	mailer := mail.New(cfg.SMTP, logg)

	authRepo := auth.NewRepository(dbPool)
	tokenService := auth.NewTokenService(cfg.Auth)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	verificationService := auth.NewVerificationService(authRepo, authRepo, mailer, cfg.Verification, logg)
	authService := auth.NewService(authRepo, tokenService, hasher, verificationService, logg)
	guard := auth.NewGuard(tokenService, authRepo)

	companyRepo := company.NewRepository(dbPool)
	commentRepo := comment.NewRepository(dbPool)
	voteRepo := vote.NewRepository(dbPool)
	bookmarkRepo := bookmark.NewRepository(dbPool)

	companyService := company.NewService(companyRepo)
	commentService := comment.NewService(commentRepo, companyRepo)
	voteService := vote.NewService(voteRepo, commentRepo)
	bookmarkService := bookmark.NewService(bookmarkRepo, companyRepo)

	router := server.NewRouter(server.Dependencies{
		Config:          cfg,
		DB:              dbPool,
		Logger:          logg,
		AuthService:     authService,
		Verification:    verificationService,
		Guard:           guard,
		CompanyService:  companyService,
		CommentService:  commentService,
		VoteService:     voteService,
		BookmarkService: bookmarkService,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logg.Info("Sponsvisa API listening", zap.String("address", cfg.Server.Address()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logg.Info("shutting down gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown error", zap.Error(err))
	}
}
