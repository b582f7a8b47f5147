package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/apuntea/apuntea-api/internal/api/http"
	auth "github.com/apuntea/apuntea-api/internal/auth/middleware"
	"github.com/apuntea/apuntea-api/internal/config"
	"github.com/apuntea/apuntea-api/internal/db"
	"github.com/apuntea/apuntea-api/internal/quiz"
	"github.com/apuntea/apuntea-api/internal/rbac"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	// One-time schema capability pass; the store never re-queries metadata.
	caps := db.DetectCapabilities(ctx, dbh, db.Driver(cfg.DBDriver))
	store := quiz.NewSQLStore(dbh, caps, cfg.QuizOverrides)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Local login (dev/offline; production consumes externally issued tokens)
	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	}

	// Protected API (JWT → sub/role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Route("/subjects/{slug}", func(sr chi.Router) {
			sr.With(rbac.Require("preeval:view")).
				Get("/pre-eval", api.PreEvalHandler(store))
			sr.With(rbac.Require("attempt:create")).
				Post("/attempts", api.SubmitAnswersHandler(store))
			sr.With(rbac.Require("attempt:complete")).
				Post("/attempts/complete", api.CompleteSessionHandler(store))
			sr.With(rbac.Require("route:view")).
				Get("/route/summary", api.RouteSummaryHandler(store))
			sr.With(rbac.Require("route:view")).
				Get("/results/me", api.MyResultsHandler(store))
			sr.With(rbac.Require("route:view")).
				Get("/route/resources", api.BlockResourcesHandler(store))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
