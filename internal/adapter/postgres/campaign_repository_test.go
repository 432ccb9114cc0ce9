package postgres

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

type fakeBatch struct {
	pgx.BatchResults
	err error
}

func (b *fakeBatch) Close() error { return b.err }

type fakeTx struct {
	pgx.Tx
	batchErr   error
	commitErr  error
	queued     int
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	tx.queued = b.Len()
	return &fakeBatch{err: tx.batchErr}
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return tx.commitErr
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	DB
	tx *fakeTx
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return db.tx, nil
}

func snapshot() []domain.RawCampaign {
	return []domain.RawCampaign{
		{ID: 0, Owner: "0x01", Title: "A", Budget: big.NewInt(10), Reward: big.NewInt(1)},
		{ID: 1, Owner: "0x02", Title: "B", Budget: big.NewInt(20), Reward: big.NewInt(2)},
	}
}

func TestSaveSnapshotCommits(t *testing.T) {
	tx := &fakeTx{}
	repo := NewCampaignRepository(&fakeDB{tx: tx})

	err := repo.SaveSnapshot(context.Background(), snapshot(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 2, tx.queued)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestSaveSnapshotReportsCommitFailure(t *testing.T) {
	commitErr := errors.New("could not serialize access")
	tx := &fakeTx{commitErr: commitErr}
	repo := NewCampaignRepository(&fakeDB{tx: tx})

	err := repo.SaveSnapshot(context.Background(), snapshot(), time.Now())

	assert.ErrorIs(t, err, commitErr)
}

func TestSaveSnapshotRollsBackOnBatchError(t *testing.T) {
	batchErr := errors.New("numeric field overflow")
	tx := &fakeTx{batchErr: batchErr}
	repo := NewCampaignRepository(&fakeDB{tx: tx})

	err := repo.SaveSnapshot(context.Background(), snapshot(), time.Now())

	assert.ErrorIs(t, err, batchErr)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
