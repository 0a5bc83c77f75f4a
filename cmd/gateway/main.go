package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mushikui/mushikui-quiz/internal/api/http"
	"github.com/mushikui/mushikui-quiz/internal/auth"
	"github.com/mushikui/mushikui-quiz/internal/config"
	"github.com/mushikui/mushikui-quiz/internal/content"
	"github.com/mushikui/mushikui-quiz/internal/db"
	"github.com/mushikui/mushikui-quiz/internal/exam"
	"github.com/mushikui/mushikui-quiz/internal/grading"
	"github.com/mushikui/mushikui-quiz/internal/session"
)

func main() {
	cfg := config.FromEnv()

	// --- Exam data ---
	policy := exam.LoadOnce
	if cfg.Mode == config.ModeDev {
		policy = exam.AlwaysReload
	}
	store := exam.NewStore(cfg.ContentDir, policy, content.Subjects())
	engine := grading.NewEngine()

	// --- Sessions ---
	var sessions session.Store
	switch cfg.SessionBackend {
	case "sql":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		sessions = session.NewSQLStore(dbh)
	default:
		sessions = session.NewInMemoryStore()
	}

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.AdminPassHash != "" {
		r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))
	}

	// Catalog and question data (public, like the quiz UI).
	r.Get("/api/subjects", api.ListSubjectsHandler(store))
	r.Get("/api/subjects/{subjectID}", api.GetSubjectHandler(store))
	r.Get("/api/categories/{categoryID}", api.GetCategoryHandler(store))

	// Live sessions; optionally behind JWT.
	r.Group(func(pr chi.Router) {
		if cfg.RequireAuth {
			pr.Use(auth.JWTMiddleware(authSvc))
		}
		pr.Post("/api/sessions", api.CreateSessionHandler(sessions, store))
		pr.Put("/api/sessions/{sessionID}/answers", api.SaveAnswerHandler(sessions))
		pr.Post("/api/sessions/{sessionID}/questions/{questionID}/score", api.ScoreQuestionHandler(sessions, store, engine))
		pr.Post("/api/sessions/{sessionID}/finish", api.FinishSessionHandler(sessions))
		pr.Post("/api/sessions/{sessionID}/restart", api.RestartSessionHandler(sessions))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("gateway listening on %s (mode=%s)", cfg.HTTPAddr, cfg.Mode)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
