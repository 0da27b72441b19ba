package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwaledev/lastbite-backend/internal/config"
	"github.com/mwaledev/lastbite-backend/internal/db"
	"github.com/mwaledev/lastbite-backend/internal/modules/auth"
	"github.com/mwaledev/lastbite-backend/internal/modules/bag"
	"github.com/mwaledev/lastbite-backend/internal/modules/business"
	"github.com/mwaledev/lastbite-backend/internal/modules/notification"
	"github.com/mwaledev/lastbite-backend/internal/modules/order"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := db.Migrate(conn, cfg.MigrationsPath); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity & Access ───────────────────────────────────
	userRepo := user.NewPostgresRepository(conn)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenExpiry)
	auth.NewHandler(authService).RegisterRoutes(router)

	mw := auth.NewMiddleware(userRepo, cfg.JWTSecret)
	requireCustomer := mw.RequireRole(user.RoleCustomer)
	requireOwner := mw.RequireRole(user.RoleBusinessOwner)

	user.NewHandler(userService).RegisterRoutes(router, mw.Authenticate)

	businessRepo := business.NewPostgresRepository(conn)
	businessService := business.NewService(businessRepo, userRepo)
	business.NewHandler(businessService).RegisterRoutes(router, mw.Authenticate, requireOwner)

	// ── Notifications ───────────────────────────────────────
	notificationRepo := notification.NewPostgresRepository(conn)
	notificationService := notification.NewService(notificationRepo)
	notification.NewHandler(notificationService).RegisterRoutes(router, mw.Authenticate)

	// ── Listings ────────────────────────────────────────────
	bagRepo := bag.NewPostgresRepository(conn)
	bagService := bag.NewService(bagRepo, businessRepo, userRepo, notificationService)
	bag.NewHandler(bagService).RegisterRoutes(router, mw.Authenticate, requireOwner)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(conn)
	orderService := order.NewService(orderRepo, notificationService)
	order.NewHandler(orderService).RegisterRoutes(router, mw.Authenticate, requireCustomer)

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("LastBite API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
