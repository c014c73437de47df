package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishn404/RepOSS/internal/adapter/cache"
	"github.com/krishn404/RepOSS/internal/adapter/github"
	"github.com/krishn404/RepOSS/internal/adapter/repository"
	"github.com/krishn404/RepOSS/internal/config"
	"github.com/krishn404/RepOSS/internal/service"
	"github.com/krishn404/RepOSS/internal/transport/httpapi"
)

func main() {
	// 1. Command-line flags
	mode := flag.String("mode", "serve", "run mode: serve (HTTP API), picks (one-shot CLI) or sync (pool curation)")
	user := flag.String("user", "", "GitHub username (picks mode only)")
	flag.Parse()

	// 2. Shared dependencies
	cfg := config.Load()

	pool, err := repository.NewPostgresPool(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("❌ DB init failed: %v", err)
	}

	source := github.NewSource(cfg.GitHubToken)
	pickCache := cache.NewPickCache(cfg.CacheTTL)
	picksService := service.NewPicksService(source, pool, pickCache)

	// 3. Dispatch by mode
	switch *mode {
	case "serve":
		runServe(cfg, picksService, pool)
	case "picks":
		runPicks(picksService, *user)
	case "sync":
		runSync(source, pool)
	default:
		fmt.Println("❌ unknown mode, use -mode=serve, -mode=picks or -mode=sync")
	}
}

// runServe starts the HTTP API and blocks until SIGINT/SIGTERM.
func runServe(cfg *config.Config, picksService *service.PicksService, pool *repository.PostgresPool) {
	handler := httpapi.NewHandler(picksService, pool)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.Routes(),
	}

	go func() {
		fmt.Printf("🌐 API listening on :%d\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n👋 shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ shutdown incomplete: %v", err)
	}
}

// runPicks computes one shortlist from the command line.
func runPicks(picksService *service.PicksService, username string) {
	if username == "" {
		fmt.Println("⚠️ please pass a GitHub username, e.g. -mode=picks -user=torvalds")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	picks, err := picksService.ContributionPicks(ctx, "", username)
	if err != nil {
		log.Fatalf("❌ contribution picks failed: %v", err)
	}

	if len(picks) == 0 {
		fmt.Println("📭 no recommendations available right now")
		return
	}

	fmt.Printf("\n================ [ picks for %s ] ================\n", username)
	for i, pick := range picks {
		fmt.Printf("%2d. %s (%.0f, %s)\n", i+1, pick.Name, pick.Score, pick.Difficulty)
		fmt.Printf("    %s\n", pick.Reason)
		fmt.Printf("    👉 %s\n", pick.FirstSteps)
	}
	fmt.Println("==================================================")
}

// runSync runs one candidate-pool curation cycle.
func runSync(source *github.Source, pool *repository.PostgresPool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	curation := service.NewCurationService(source, pool)
	if err := curation.SyncPool(ctx); err != nil {
		log.Fatalf("❌ pool sync failed: %v", err)
	}
}
