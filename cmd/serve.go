package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/axon-labs/axon/internal/httpapi"
	"github.com/axon-labs/axon/internal/llm"
	"github.com/axon-labs/axon/internal/network"
	"github.com/axon-labs/axon/internal/neurograph"
	"github.com/axon-labs/axon/internal/store"
	"github.com/axon-labs/axon/internal/tutor"
)

// snapshotsKept bounds per-session snapshot history in the database.
const snapshotsKept = 20

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides AXON_ADDR, default :8080)")
}

func runServe(cmd *cobra.Command) error {
	// Missing .env is fine, env vars may come from the shell.
	_ = godotenv.Load()

	ctx := cmd.Context()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if err := neurograph.ValidateSeed(); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := buildProvider(ctx, st)
	if err != nil {
		return err
	}

	netSvc := network.NewService(st.SnapshotRepo(), st.EventRepo(), log, snapshotsKept)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	tutSvc := tutor.NewService(provider, st.EventRepo(), tutorConfigFromEnv())
	tutSvc.StartSweep(sweepCtx)

	srv := &http.Server{
		Addr:              listenAddr(cmd),
		Handler:           httpapi.NewServer(netSvc, tutSvc, log).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("db", dbPath),
			zap.String("provider", provider.ModelID()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// buildProvider picks the model provider from explicit configuration
// first, then discovery of standard API key env vars. Without any key
// the server still runs, with tutor endpoints reporting failure.
func buildProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if os.Getenv("AXON_LLM_PROVIDER") != "" {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("LLM config: %w", err)
		}
		return llm.NewProvider(ctx, cfg, st.EventRepo())
	}
	if err := cfg.Validate(); err == nil && hasKey(cfg) {
		return llm.NewProvider(ctx, cfg, st.EventRepo())
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return llm.NewProvider(ctx, discovered, st.EventRepo())
	}

	fmt.Fprintln(os.Stderr, "No LLM API key configured; hint and explain endpoints will be unavailable.")
	cfg.Provider = "mock"
	return llm.NewProvider(ctx, cfg, st.EventRepo())
}

func hasKey(cfg llm.Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	}
	return false
}

func listenAddr(cmd *cobra.Command) string {
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		return a
	}
	if a := os.Getenv("AXON_ADDR"); a != "" {
		return a
	}
	return ":8080"
}

// tutorConfigFromEnv applies AXON_* overrides on top of the tutor defaults.
func tutorConfigFromEnv() tutor.Config {
	cfg := tutor.DefaultConfig()
	if d := envDuration("AXON_HINT_TTL"); d > 0 {
		cfg.HintTTL = d
	}
	if d := envDuration("AXON_EXPLAIN_TTL"); d > 0 {
		cfg.ExplainTTL = d
	}
	if n := envInt("AXON_CACHE_SIZE"); n > 0 {
		cfg.CacheSize = n
	}
	return cfg
}

func envDuration(name string) time.Duration {
	d, err := time.ParseDuration(os.Getenv(name))
	if err != nil {
		return 0
	}
	return d
}

func envInt(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return n
}
