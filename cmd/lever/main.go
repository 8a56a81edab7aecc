// Lever orchestration server: provides the HTTP API, manages queue workers,
// and drives task processing.
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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gianmatteo-arcana/engine-lever/pkg/agent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/api"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/database"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/llm"
	"github.com/gianmatteo-arcana/engine-lever/pkg/orchestrator"
	"github.com/gianmatteo-arcana/engine-lever/pkg/queue"
	"github.com/gianmatteo-arcana/engine-lever/pkg/rendezvous"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	"github.com/gianmatteo-arcana/engine-lever/pkg/tools"
	"github.com/gianmatteo-arcana/engine-lever/pkg/version"
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

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting lever",
		"version", version.Full(),
		"http_port", httpPort,
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

	// 3. Live event infrastructure: persist-and-NOTIFY publisher, plus a
	// dedicated LISTEN connection feeding the in-process broker.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	notifyListener := events.NewNotifyListener(dbConfig.DSN())
	broker := events.NewBroker(notifyListener)
	notifyListener.SetBroker(broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	slog.Info("Event infrastructure initialized")

	// 4. Domain services
	entryService := services.NewEntryService(dbClient.Client, eventPublisher)
	taskService := services.NewTaskService(dbClient.Client, cfg.TemplateRegistry, entryService, eventPublisher)
	uiRequestService := services.NewUIRequestService(dbClient.Client, eventPublisher)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. LLM gateway over the gRPC sidecar.
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmClient, err := llm.NewGRPCClient(cfg.LLM.Address, cfg.LLM.TLS)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Address, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	llmGateway := llm.NewGateway(llmClient, llm.GatewayConfig{
		Timeout:       cfg.Defaults.LLMTimeout,
		MaxAttempts:   cfg.Defaults.LLMMaxAttempts,
		MaxConcurrent: cfg.Defaults.LLMMaxConcurrent,
		Model:         cfg.LLM.Model,
	})
	slog.Info("LLM gateway initialized", "addr", cfg.LLM.Address, "model", cfg.LLM.Model)

	// 6. Agent runtime and orchestration
	toolGateway := tools.NewGateway(cfg.ToolRegistry, cfg.Defaults.ToolTimeout)
	runtime := agent.NewRuntime(cfg.AgentRegistry, llmGateway, toolGateway, entryService, cfg.Defaults.AgentMaxConcurrent)
	rdv := rendezvous.New(uiRequestService, broker)
	planner := orchestrator.NewPlanner(llmGateway, cfg.AgentRegistry, entryService, cfg.LLM.PlannerModel)
	advisor := orchestrator.NewAdvisor(llmGateway, cfg.LLM.PlannerModel)
	dispatcher := orchestrator.NewDispatcher(
		taskService, entryService, runtime, planner, advisor, rdv,
		cfg.AgentRegistry, cfg.Defaults)

	// 7. Settle tasks this pod left in flight before taking new work
	if err := queue.RecoverStartupTasks(ctx, dbClient.Client, entryService, podID, cfg.Defaults.RecoveryWindow); err != nil {
		slog.Error("Failed to recover startup tasks", "error", err)
		// Non-fatal; continue
	}

	// 8. Start worker pool (before HTTP server)
	executor := queue.NewDispatchExecutor(dispatcher)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, entryService, cfg.Defaults.RecoveryWindow)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP server
	auth := api.NewAuthenticator(loadAuthTokens())
	httpServer := api.NewServer(dbClient, taskService, entryService, uiRequestService,
		eventService, broker, workerPool, auth)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	httpServer.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Lever started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: workers first, waiting up to the configured
	// budget for in-flight runs to settle; interrupted tasks are requeued by
	// recovery on the next start.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; in-flight tasks will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := srv.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// loadAuthTokens reads static API tokens from the environment. Format:
// AUTH_TOKENS="token1:tenant1:subject1,token2:tenant2:subject2". Empty means
// proxy-trust mode.
func loadAuthTokens() map[string]api.Identity {
	raw := os.Getenv("AUTH_TOKENS")
	if raw == "" {
		return nil
	}

	tokens := make(map[string]api.Identity)
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			slog.Warn("Skipping malformed AUTH_TOKENS entry")
			continue
		}
		tokens[parts[0]] = api.Identity{TenantID: parts[1], Subject: parts[2]}
	}
	return tokens
}
