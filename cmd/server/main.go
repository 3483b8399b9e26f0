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

	"nutrilog.app/food-tracker/internal/api"
	"nutrilog.app/food-tracker/internal/config"
	"nutrilog.app/food-tracker/internal/core"
	"nutrilog.app/food-tracker/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if config.AppConfig.LogLevel == "DEBUG" {
		log.Println("Service starting in DEBUG mode")
	}

	// Command line flag for clearing persisted state
	resetFlag := flag.Bool("reset", false, "Clear all persisted logs and the calorie goal, then exit")
	flag.Parse()

	// Initialize persistence
	blobs, err := store.NewSQLiteBlobStore(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer blobs.Close()

	logStore, err := store.NewLogStore(blobs)
	if err != nil {
		log.Fatalf("Failed to load log store: %v", err)
	}

	if *resetFlag {
		if err := logStore.Reset(); err != nil {
			log.Fatalf("Reset failed: %v", err)
		}
		log.Println("Persisted state cleared. Exiting.")
		os.Exit(0)
	}

	// Pick the analyzer variant
	var analyzer core.Analyzer
	if config.AppConfig.Analyzer == "gemini" {
		geminiAnalyzer, err := core.NewGeminiAnalyzer(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini analyzer: %v", err)
		}
		defer geminiAnalyzer.Close()
		analyzer = geminiAnalyzer
		log.Println("Using Gemini analyzer")
	} else {
		analyzer = core.NewStubAnalyzer(time.Duration(config.AppConfig.ScanDelayMS) * time.Millisecond)
		log.Println("Using stub analyzer")
	}

	// Initialize tracker service
	trackerService := core.NewTrackerService(logStore, analyzer)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(trackerService)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // Analyzer calls can take time
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		log.Printf("Starting server on %s. Press Ctrl+C to quit.", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", serverAddr, err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting gracefully")
}
