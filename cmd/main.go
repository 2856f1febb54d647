package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Vovarama1992/mi-crypto-assistant/internal/ai"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/catalog"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/chat"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/config"
	"github.com/Vovarama1992/mi-crypto-assistant/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(os.Stderr, slog.LevelInfo).Error("config error", "err", err)
		os.Exit(1)
	}

	log := logging.Setup(os.Stderr, cfg.SlogLevel())

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, answers fall back to mock unless the client sends a key")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- AI ---
	gemini := ai.NewGeminiClient(
		ai.WithBaseURL(cfg.GeminiBaseURL),
		ai.WithTimeout(cfg.GeminiTimeout()),
		ai.WithLogger(log),
	)

	// --- Chat module wiring ---
	chatRepo := chat.NewRepo()
	chatService := chat.NewService(chatRepo, gemini, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	chat.RegisterRoutes(r, chat.NewHandler(chatService))

	// --- Catalog (mock tokens / scam radar) ---
	cat, err := catalog.Load()
	if err != nil {
		log.Error("catalog load error", "err", err)
		os.Exit(1)
	}
	catalog.RegisterRoutes(r, catalog.NewHandler(cat))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Info("listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}
