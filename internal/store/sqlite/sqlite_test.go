package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantdash/retirement-planner/internal/domain"
	"github.com/quantdash/retirement-planner/internal/store"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testScenario(name string) domain.Scenario {
	fraction := decimal.NewFromFloat(0.08)
	return domain.Scenario{
		Name: name,
		Params: domain.PlanParams{
			Salary:             decimal.NewFromInt(60000),
			CurrentAge:         30,
			RetirementAge:      65,
			MaxAge:             100,
			RetirementIncome:   decimal.NewFromInt(120000),
			AccumulationRate:   decimal.NewFromFloat(0.12),
			DistributionRate:   decimal.NewFromFloat(0.05),
			InitialCapital:     decimal.NewFromInt(10000),
			InvestmentFraction: &fraction,
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(testScenario("Base")))
	require.NoError(t, s.Save(testScenario("Aggressive")))

	scenarios, err := s.List()
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "Aggressive", scenarios[0].Name)
	assert.Equal(t, "Base", scenarios[1].Name)

	got, err := s.Get("Base")
	require.NoError(t, err)
	assert.True(t, got.Params.InitialCapital.Equal(decimal.NewFromInt(10000)))
	require.NotNil(t, got.Params.InvestmentFraction)
	assert.True(t, got.Params.InvestmentFraction.Equal(decimal.NewFromFloat(0.08)))
}

func TestStore_SaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save(testScenario("Base")))

	updated := testScenario("Base")
	updated.Params.MaxAge = 95
	require.NoError(t, s.Save(updated))

	got, err := s.Get("Base")
	require.NoError(t, err)
	assert.Equal(t, 95, got.Params.MaxAge)

	scenarios, err := s.List()
	require.NoError(t, err)
	assert.Len(t, scenarios, 1)
}

func TestStore_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete("missing"), store.ErrNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")
	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(testScenario("Durable")))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("Durable")
	require.NoError(t, err)
	assert.Equal(t, "Durable", got.Name)
}
