package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"marketmaster/internal/config"
	"marketmaster/internal/gateway"
	"marketmaster/internal/handlers"
	"marketmaster/internal/security"
	"marketmaster/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Connect to the AI gateway (Gemini chat + Cloud Text-to-Speech)
	gw, err := gateway.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create gateway client: %v", err)
	}
	defer gw.Close()

	log.Println("AI gateway client ready")

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Session store and security
	store := session.NewStore(gw, cfg.SessionDuration)
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	limiter := security.NewRateLimiter(cfg.GatewayRateLimit, time.Minute)
	middleware := handlers.NewMiddleware(store, csrf, limiter, cfg.SessionSecret, cfg.SessionDuration)

	// Handlers
	sectionHandler := handlers.NewSectionHandler(templates, middleware)
	warmUpHandler := handlers.NewWarmUpHandler()
	listeningHandler := handlers.NewListeningHandler()
	builderHandler := handlers.NewBuilderHandler()
	battleHandler := handlers.NewBattleHandler()
	pitchHandler := handlers.NewPitchHandler()
	chartHandler := handlers.NewChartHandler()
	storyHandler := handlers.NewStoryHandler()
	roleplayHandler := handlers.NewRoleplayHandler()

	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Section pages and navigation
	mux.HandleFunc("GET /", middleware.WithSession(sectionHandler.Home))
	mux.HandleFunc("GET /section/{id}", middleware.WithSession(sectionHandler.ShowSection))
	mux.HandleFunc("POST /section/{id}", middleware.WithSession(middleware.CSRFProtect(sectionHandler.SwitchSection)))
	mux.HandleFunc("POST /nav/toggle", middleware.WithSession(middleware.CSRFProtect(sectionHandler.ToggleNav)))

	// Warm-up
	mux.HandleFunc("POST /warmup/flip/{card}", middleware.WithSession(middleware.CSRFProtect(warmUpHandler.FlipCard)))
	mux.HandleFunc("POST /warmup/quiz-mode", middleware.WithSession(middleware.CSRFProtect(warmUpHandler.ToggleQuizMode)))

	// Listening practice
	mux.HandleFunc("POST /listening/answer", middleware.WithSession(middleware.CSRFProtect(listeningHandler.Answer)))
	mux.HandleFunc("POST /listening/transcript", middleware.WithSession(middleware.CSRFProtect(listeningHandler.ToggleTranscript)))
	mux.HandleFunc("POST /listening/audio", middleware.WithSession(middleware.CSRFProtect(middleware.RateLimit(listeningHandler.PlayAudio))))
	mux.HandleFunc("GET /listening/audio/stream", middleware.WithSession(listeningHandler.StreamAudio))
	mux.HandleFunc("POST /listening/audio/ended", middleware.WithSession(middleware.CSRFProtect(listeningHandler.AudioEnded)))

	// Language focus
	mux.HandleFunc("POST /language/reveal/{index}", middleware.WithSession(middleware.CSRFProtect(builderHandler.RevealRewrite)))
	mux.HandleFunc("POST /builder/add", middleware.WithSession(middleware.CSRFProtect(builderHandler.AddToken)))
	mux.HandleFunc("POST /builder/undo", middleware.WithSession(middleware.CSRFProtect(builderHandler.Undo)))
	mux.HandleFunc("POST /builder/clear", middleware.WithSession(middleware.CSRFProtect(builderHandler.Clear)))
	mux.HandleFunc("POST /builder/copy", middleware.WithSession(middleware.CSRFProtect(builderHandler.Copy)))

	// Brand battle
	mux.HandleFunc("POST /battle/next", middleware.WithSession(middleware.CSRFProtect(battleHandler.Next)))
	mux.HandleFunc("POST /battle/prev", middleware.WithSession(middleware.CSRFProtect(battleHandler.Prev)))

	// Performance task
	mux.HandleFunc("POST /pitch/slide/{n}", middleware.WithSession(middleware.CSRFProtect(pitchHandler.UpdateSlide)))
	mux.HandleFunc("POST /pitch/active", middleware.WithSession(middleware.CSRFProtect(pitchHandler.SetActiveSlide)))
	mux.HandleFunc("POST /pitch/checklist", middleware.WithSession(middleware.CSRFProtect(pitchHandler.ToggleChecklist)))
	mux.HandleFunc("POST /pitch/timer", middleware.WithSession(middleware.CSRFProtect(pitchHandler.UpdateTimer)))
	mux.HandleFunc("POST /chart/row/{i}", middleware.WithSession(middleware.CSRFProtect(chartHandler.UpdateRow)))
	mux.HandleFunc("POST /story/field", middleware.WithSession(middleware.CSRFProtect(storyHandler.UpdateField)))

	// AI roleplay
	mux.HandleFunc("POST /roleplay/send", middleware.WithSession(middleware.CSRFProtect(middleware.RateLimit(roleplayHandler.Send))))
	mux.HandleFunc("POST /roleplay/restart", middleware.WithSession(middleware.CSRFProtect(roleplayHandler.Restart)))
	mux.HandleFunc("POST /roleplay/hint", middleware.WithSession(middleware.CSRFProtect(roleplayHandler.Hint)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(store)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// loadTemplates parses every page and shared template.
func loadTemplates(templatesPath string) (*template.Template, error) {
	files, err := filepath.Glob(filepath.Join(templatesPath, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", templatesPath)
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// cleanupExpiredSessions periodically reaps idle lesson sessions.
func cleanupExpiredSessions(store *session.Store) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if removed := store.CleanupExpired(); removed > 0 {
			log.Printf("Cleaned up %d expired lesson sessions", removed)
		}
	}
}
