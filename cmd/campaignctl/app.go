package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/coingecko"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/ethereum"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/postgres"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/usecase"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/config"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/db"
)

// appDeps is everything a command needs. It is built once per invocation by
// the root command.
type appDeps struct {
	cfg     config.Config
	logger  *slog.Logger
	client  *ethclient.Client
	pool    *pgxpool.Pool
	ledger  *ethereum.Ledger
	signer  *ethereum.Signer
	chainID int64

	registry *usecase.Registry
	oracle   *usecase.Oracle
	store    port.CampaignStore
}

func newApp(ctx context.Context, verbose bool) (*appDeps, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	a := &appDeps{cfg: cfg, logger: cfg.Log.New(w)}

	a.ledger, a.client, err = ethereum.Dial(ctx, cfg.Ledger.RPCURL, cfg.Ledger.ContractAddress)
	if err != nil {
		return nil, err
	}
	if a.chainID, err = a.ledger.ChainID(ctx); err != nil {
		a.Close()
		return nil, err
	}
	if cfg.Ledger.PrivateKey != "" {
		a.signer, err = ethereum.NewSigner(a.ledger, cfg.Ledger.PrivateKey, a.chainID, cfg.Ledger.ReceiptTimeout)
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	if cfg.Psql.Enabled {
		a.pool, err = db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.store = postgres.NewCampaignRepository(a.pool)
	}

	a.registry = usecase.NewRegistry(a.ledger, a.store, a.logger)
	a.oracle = usecase.NewOracle(
		coingecko.NewClient(cfg.Price.URL, cfg.Price.Asset, cfg.Price.Currency, cfg.Price.Timeout),
		nil, cfg.Price.Interval, a.logger,
	)
	return a, nil
}

// orchestrator returns a lifecycle orchestrator connected as the configured
// signing account. confirmer may be nil to approve every campaign.
func (a *appDeps) orchestrator(confirmer port.Confirmer) *usecase.Orchestrator {
	deps := usecase.OrchestratorDeps{
		Ledger:               a.ledger,
		Confirmer:            confirmer,
		Registry:             a.registry,
		Rates:                a.oracle,
		Store:                a.store,
		Logger:               a.logger,
		Currency:             a.cfg.Price.Currency,
		RequireParticipation: a.cfg.Campaign.RequireParticipation,
	}
	if a.signer != nil {
		deps.Signer = a.signer
	}
	o := usecase.NewOrchestrator(deps)
	if a.signer != nil {
		o.Connect(a.signer.Account(), a.chainID)
	}
	return o
}

func (a *appDeps) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.client != nil {
		a.client.Close()
	}
}
