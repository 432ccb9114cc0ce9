package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/coingecko"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/ethereum"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/gemini"
	httpadapter "github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/http"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/postgres"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/redis"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/usecase"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/config"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/db"
)

// main is the entry point of the campaign proxy server. It loads
// configuration, connects to the ledger and the optional stores, starts the
// price oracle and the chain watcher, then serves HTTP until it receives a
// termination signal.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ledger, client, err := ethereum.Dial(ctx, cfg.Ledger.RPCURL, cfg.Ledger.ContractAddress)
	if err != nil {
		return err
	}
	defer client.Close()

	chainID, err := ledger.ChainID(ctx)
	if err != nil {
		return err
	}
	if cfg.Ledger.ChainID != 0 && chainID != cfg.Ledger.ChainID {
		logger.Warn("connected to unexpected network",
			slog.Int64("want", cfg.Ledger.ChainID), slog.Int64("got", chainID))
	}

	var signer port.SigningAgent
	if cfg.Ledger.PrivateKey != "" {
		s, err := ethereum.NewSigner(ledger, cfg.Ledger.PrivateKey, chainID, cfg.Ledger.ReceiptTimeout)
		if err != nil {
			return err
		}
		signer = s
		logger.Info("signing agent ready", slog.String("account", s.Account()))
	} else {
		logger.Warn("LEDGER_PRIVATE_KEY not set, participate and claim are unavailable")
	}

	// Postgres is optional; without it the registry keeps its view in memory only.
	var store port.CampaignStore
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		store = postgres.NewCampaignRepository(pool)
	}

	var rates port.RateStore
	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		rates = redis.NewRateStore(rdb, cfg.Redis.KeyPrefix, cfg.Price.Asset, cfg.Price.Currency)
	}

	oracle := usecase.NewOracle(
		coingecko.NewClient(cfg.Price.URL, cfg.Price.Asset, cfg.Price.Currency, cfg.Price.Timeout),
		rates, cfg.Price.Interval, logger,
	)
	if err = oracle.Seed(ctx); err != nil {
		logger.Warn("price seed failed", slog.Any("error", err))
	}
	go oracle.Run(ctx)

	registry := usecase.NewRegistry(ledger, store, logger)
	if err = registry.Warm(ctx); err != nil {
		logger.Warn("snapshot warm failed", slog.Any("error", err))
	}

	watcher := ethereum.NewChainWatcher(ledger, cfg.Ledger.WatchInterval, logger)
	watcher.Subscribe(func(ev domain.WalletEvent) {
		if ev.Type != domain.NetworkChanged {
			return
		}
		registry.Reset()
		if _, err := registry.FetchAll(ctx); err != nil {
			logger.Warn("registry reload failed", slog.Any("error", err))
		}
	})
	go watcher.Run(ctx)

	var generator port.DescriptionGenerator
	if cfg.GenAI.APIKey != "" {
		generator = gemini.NewClient(cfg.GenAI.BaseURL, cfg.GenAI.Model, cfg.GenAI.APIKey, cfg.GenAI.Timeout)
	}

	svc := usecase.NewCampaignService(usecase.ServiceDeps{
		Ledger:               ledger,
		Signer:               signer,
		Verifier:             ethereum.Verifier{},
		Generator:            generator,
		Registry:             registry,
		Rates:                oracle,
		Store:                store,
		Logger:               logger,
		ChainID:              chainID,
		Currency:             cfg.Price.Currency,
		RequireParticipation: cfg.Campaign.RequireParticipation,
	})

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		StaticDir:      cfg.HTTP.StaticDir,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Currency:       cfg.Price.Currency,
		Tokens:         httpadapter.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
