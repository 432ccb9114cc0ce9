package postgres

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CampaignRepository implements port.CampaignStore on PostgreSQL.
type CampaignRepository struct {
	pool DB
}

var _ port.CampaignStore = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance. pool is usually
// a *pgxpool.Pool.
func NewCampaignRepository(pool DB) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// SaveSnapshot upserts every campaign of a registry reload in one
// transaction. Campaigns are never deleted on the ledger, so rows are never
// removed here.
func (r *CampaignRepository) SaveSnapshot(ctx context.Context, campaigns []domain.RawCampaign, syncedAt time.Time) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	batch := &pgx.Batch{}
	for _, c := range campaigns {
		batch.Queue(`
        INSERT INTO campaign_snapshots
            (id, owner, title, description, budget, reward, start_time, end_time, is_active, participant_count, synced_at)
        VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7, $8, $9, $10, $11)
        ON CONFLICT (id) DO UPDATE SET
            is_active = EXCLUDED.is_active,
            participant_count = EXCLUDED.participant_count,
            synced_at = EXCLUDED.synced_at`,
			int64(c.ID), c.Owner, c.Title, c.Description, numeric(c.Budget), numeric(c.Reward),
			int64(c.StartTime), int64(c.EndTime), c.IsActive, int64(c.ParticipantCount), syncedAt.UTC())
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// LoadSnapshot returns the last saved view in id order.
func (r *CampaignRepository) LoadSnapshot(ctx context.Context) ([]domain.RawCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, owner, title, description, budget::text, reward::text,
               start_time, end_time, is_active, participant_count
        FROM campaign_snapshots
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RawCampaign, error) {
		var (
			c                     domain.RawCampaign
			id, start, end, count int64
			budget, reward        string
		)
		if err := row.Scan(&id, &c.Owner, &c.Title, &c.Description, &budget, &reward,
			&start, &end, &c.IsActive, &count); err != nil {
			return c, err
		}
		var ok bool
		if c.Budget, ok = new(big.Int).SetString(budget, 10); !ok {
			return c, fmt.Errorf("campaign %d: invalid budget %q", id, budget)
		}
		if c.Reward, ok = new(big.Int).SetString(reward, 10); !ok {
			return c, fmt.Errorf("campaign %d: invalid reward %q", id, reward)
		}
		c.ID, c.StartTime, c.EndTime, c.ParticipantCount = uint64(id), uint64(start), uint64(end), uint64(count)
		return c, nil
	})
}

// RecordParticipation stores a confirmed participation. Repeats for the
// same account and campaign are ignored.
func (r *CampaignRepository) RecordParticipation(ctx context.Context, p domain.Participation) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO participations (campaign_id, account, tx_hash, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (campaign_id, account) DO NOTHING`,
		int64(p.CampaignID), strings.ToLower(p.Account), p.TxHash, p.CreatedAt.UTC())
	return err
}

func (r *CampaignRepository) HasParticipated(ctx context.Context, campaignID uint64, account string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM participations WHERE campaign_id = $1 AND account = $2)`,
		int64(campaignID), strings.ToLower(account)).Scan(&ok)
	return ok, err
}

func numeric(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
