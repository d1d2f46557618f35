package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"classeur/internal/config"
	"classeur/internal/events"
	"classeur/internal/handler"
	"classeur/internal/middleware"
	"classeur/internal/service"
	"classeur/internal/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logOut := io.Writer(os.Stdout)
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = logFile
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"storage", cfg.Storage,
	)

	ctx := context.Background()

	// Select the persistence adapter
	var store storage.Adapter
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := storage.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		store, err = storage.NewPostgresAdapter(ctx, pool, cfg.TablePrefix, logger)
		if err != nil {
			log.Fatalf("Failed to initialize postgres storage: %v", err)
		}
	case config.StorageFile:
		adapter, err := storage.NewFileAdapter(cfg.StorePath)
		if err != nil {
			log.Fatalf("Failed to open store %s: %v", cfg.StorePath, err)
		}
		store = adapter
		logger.Info("file storage ready", "path", cfg.StorePath)
	case config.StorageMemory:
		store = storage.NewMemoryAdapter()
		logger.Warn("using in-memory storage; state will not survive restarts")
	default:
		store = storage.NewMemoryAdapter()
		logger.Warn("unknown STORAGE value, falling back to in-memory", "storage", cfg.Storage)
	}

	// Event emitter replaces the old ambient notification hooks; the log
	// subscriber is the server's notification surface
	emitter := events.NewEmitter()
	emitter.Subscribe(func(ev events.Event) {
		logger.Debug("event", "kind", ev.Kind, "path", ev.Path, "count", ev.Count)
	})

	// Create services
	catalogService := service.NewCatalogService(store, emitter, logger)
	if err := catalogService.Load(ctx); err != nil {
		log.Fatalf("Failed to load catalog state: %v", err)
	}
	searchService := service.NewSearchService(catalogService, logger)
	backupService := service.NewBackupService(catalogService, emitter, logger)

	// Create handlers
	folderHandler := handler.NewFolderHandler(catalogService, logger)
	docHandler := handler.NewDocumentHandler(catalogService, logger)
	treeHandler := handler.NewTreeHandler(catalogService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)
	backupHandler := handler.NewBackupHandler(backupService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Tree endpoint
	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)

	// Folder routes (folders are addressed by path, not id)
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("PATCH /api/folders", folderHandler.RenameFolder)
	mux.HandleFunc("DELETE /api/folders", folderHandler.DeleteFolder)

	// Document routes
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents/import", docHandler.ImportDocuments)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)

	// Search route
	mux.HandleFunc("GET /api/search", searchHandler.Search)

	// Backup routes
	mux.HandleFunc("GET /api/backup", backupHandler.Export)
	mux.HandleFunc("POST /api/backup/restore", backupHandler.Restore)

	// Build middleware chain
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)

	// CORS - must wrap the whole chain to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
