package localfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/localfile"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

func TestLoadMissingFileReturnsNotFound(t *testing.T) {
	p := localfile.New(filepath.Join(t.TempDir(), "missing.json"))

	_, err := p.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	p := localfile.New(path)
	ctx := context.Background()

	snap := &domain.Snapshot{
		Churches: []domain.Church{{ID: "c1", Name: "Grace", Currency: domain.CurrencyNGN, Status: domain.ChurchActive}},
		Transactions: []domain.Transaction{
			{ID: "tx1", ChurchID: "c1", Type: domain.Income, Category: "Offering", Amount: decimal.RequireFromString("1500.50"), Date: "2024-06-01"},
		},
	}
	require.NoError(t, p.Save(ctx, snap))

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Churches, 1)
	assert.Equal(t, domain.CurrencyNGN, loaded.Churches[0].Currency)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "1500.50", loaded.Transactions[0].Amount.StringFixed(2))
}

func TestSaveReplacesPreviousCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	p := localfile.New(path)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, &domain.Snapshot{Churches: []domain.Church{{ID: "c1"}, {ID: "c2"}}}))
	require.NoError(t, p.Save(ctx, &domain.Snapshot{Churches: []domain.Church{{ID: "c3"}}}))

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Churches, 1)
	assert.Equal(t, "c3", loaded.Churches[0].ID)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := localfile.New(path).Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
