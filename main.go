package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	authService "inkwell/internal/application/auth"
	contentService "inkwell/internal/application/content"
	"inkwell/internal/delivery/http/cookie"
	"inkwell/internal/delivery/http/handler"
	"inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/router"
	"inkwell/internal/domain/account"
	"inkwell/internal/infrastructure/config"
	"inkwell/internal/infrastructure/database"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/seed"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.JWTSecret == config.InsecureDefaultSecret {
		log.Warn("JWT_SECRET not set, using insecure development default")
	}

	// Accounts live in sqlite when DATABASE_PATH is set, in memory otherwise.
	var accountRepo account.Repository
	if cfg.DatabasePath != "" {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			log.WithError(err).Fatal("Failed to run migrations")
		}
		accountRepo = repository.NewAccountSQLiteRepository(db)
	} else {
		accountRepo = repository.NewAccountMemoryRepository()
	}

	postRepo := repository.NewPostMemoryRepository()
	categoryRepo := repository.NewCategoryMemoryRepository(seed.Categories())

	if err := seed.Accounts(accountRepo); err != nil {
		log.WithError(err).Fatal("Failed to seed accounts")
	}
	if err := seed.Posts(postRepo); err != nil {
		log.WithError(err).Fatal("Failed to seed posts")
	}

	authSvc := authService.NewService(accountRepo, cfg.JWTSecret, time.Duration(cfg.TokenExpiry)*time.Hour)
	contentSvc := contentService.NewService(postRepo, categoryRepo)

	cookies := cookie.NewManager(cfg.IsProduction())

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, cookies),
		Post:     handler.NewPostHandler(contentSvc),
		Category: handler.NewCategoryHandler(contentSvc),
	}
	srv := router.Setup(handlers, authSvc, cookies, router.Config{
		AllowedOrigins: []string{cfg.FrontendURL},
		ProtectedPaths: []string{"/create", "/posts/:slug/edit"},
		LoginPath:      "/login",
	})
	srv = middleware.RequestLogging(log)(srv)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.WithFields(logrus.Fields{
		"addr": addr,
		"env":  cfg.Env,
	}).Info("Inkwell server starting")
	log.Fatal(http.ListenAndServe(addr, srv))
}
