// Vendra server — ingests channel webhooks, runs the conversational engine
// over queue workers, and serves the dashboard API and event stream.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/vendrahq/vendra/pkg/agent"
	"github.com/vendrahq/vendra/pkg/api"
	"github.com/vendrahq/vendra/pkg/archive"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/dedup"
	"github.com/vendrahq/vendra/pkg/engine"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/masking"
	"github.com/vendrahq/vendra/pkg/outbound"
	"github.com/vendrahq/vendra/pkg/playbook"
	"github.com/vendrahq/vendra/pkg/queue"
	"github.com/vendrahq/vendra/pkg/scheduler"
	"github.com/vendrahq/vendra/pkg/services"
	"github.com/vendrahq/vendra/pkg/tools"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// setupLogging installs the default slog handler at the LOG_LEVEL env level.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("VENDRA_CONFIG", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}
	setupLogging()

	httpAddr := getEnv("HTTP_ADDR", ":8080")
	podID := resolvePodID()

	slog.Info("Starting Vendra",
		"http_addr", httpAddr,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup pass over jobs stranded by a previous crash of
	// this pod
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, cfg.Queue, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}

	// 4. LLM gateway client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := agent.NewGRPCLLMClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	llmProvider, err := cfg.GetLLMProvider(cfg.DefaultLLMProvider())
	if err != nil {
		slog.Error("Default LLM provider is not configured", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "addr", llmAddr, "provider", cfg.DefaultLLMProvider())

	// 5. Engine: tool registry, playbooks, trace masking
	registry, err := tools.NewRegistry(dbClient.Client)
	if err != nil {
		slog.Error("Failed to build tool registry", "error", err)
		os.Exit(1)
	}

	playbooks := playbook.NewFetcher(cfg.Playbooks, os.Getenv("GITHUB_TOKEN"))
	masker := masking.NewService(cfg.Defaults.TraceMasking)

	eng := engine.New(dbClient.Client, registry, llmClient, llmProvider, cfg.Engine, playbooks, masker)
	slog.Info("Engine initialized", "max_iterations", cfg.Engine.MaxIterations)

	// 6. Webhook dedup store: Redis when configured, per-pod memory otherwise
	var deduper dedup.Deduper
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			slog.Error("Failed to reach Redis", "addr", redisAddr, "error", err)
			os.Exit(1)
		}
		cancel()
		deduper = dedup.NewRedisDeduper(redisClient, dedup.DefaultWindow)
		slog.Info("Webhook dedup using Redis", "addr", redisAddr)
	} else {
		deduper = dedup.NewMemoryDeduper(dedup.DefaultWindow)
		slog.Info("Webhook dedup using in-process store; duplicates may cross replicas")
	}

	// 7. Cold store for archived orders (optional)
	var archiver *archive.Archiver
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		store, err := archive.Dial(ctx, mongoURI, os.Getenv("MONGO_DATABASE"))
		if err != nil {
			slog.Error("Failed to connect to cold store", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				slog.Error("Error closing cold store", "error", err)
			}
		}()
		archiver = archive.NewArchiver(dbClient.Client, store)
		slog.Info("Cold store connected")
	} else {
		slog.Info("No MONGO_URI set; order archiving disabled")
	}

	// 8. Outbound dispatcher (production channel senders)
	dispatcher := outbound.NewDispatcher(dbClient.Client, cfg.Engine)

	// 9. Event streaming: publisher, websocket fan-out, LISTEN connection
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(10 * time.Second)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, eng, dispatcher)

	// One LISTEN connection serves both consumers: job notifications wake
	// the pool, everything else fans out to dashboard sockets.
	notifyListener := events.NewNotifyListener(dbConfig.ConnString(),
		events.HandlerFunc(func(channel string, payload []byte) {
			if channel == events.InboundJobsChannel {
				workerPool.HandleNotification(channel, payload)
				return
			}
			connManager.HandleNotification(channel, payload)
		}))
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	if err := notifyListener.Subscribe(ctx, events.InboundJobsChannel); err != nil {
		slog.Error("Failed to LISTEN for inbound jobs", "error", err)
		os.Exit(1)
	}
	connManager.SetListener(notifyListener)
	slog.Info("Event streaming initialized")

	// 10. Start worker pool (before HTTP server so webhooks never outpace it)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 11. Background maintenance: scheduled-order completer, idle session
	// reaper, archiver
	sched := scheduler.New(cfg.Scheduler, dbClient.DB(),
		services.NewOrderService(dbClient.Client),
		services.NewSessionService(dbClient.Client),
		archiver)
	if err := sched.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	// 12. HTTP server
	httpServer, err := api.NewServer(cfg, dbClient, deduper, dispatcher, workerPool, connManager, publisher)
	if err != nil {
		slog.Error("Failed to build HTTP server", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpAddr)
		if err := httpServer.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Vendra started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop intake first, then drain turns, then the
	// background jobs and the event stream.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unfinished turns will be orphan-recovered")
	}

	sched.Stop()
	notifyListener.Stop(ctx)

	slog.Info("Shutdown complete")
}
