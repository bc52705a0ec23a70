package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indiviz/pkg/domain/interfaces"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
	"github.com/secmon-lab/indiviz/pkg/repository"
)

func newTable(source string) *model.IndicatorTable {
	return &model.IndicatorTable{
		Source:   source,
		Entities: []string{"Japan"},
		Years:    []int{2000, 2001},
		Values:   [][]float64{{1, 2}},
	}
}

func testTableStore(t *testing.T, newStore func(t *testing.T) interfaces.TableStore) {
	t.Run("PutTable and GetTable", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		table := newTable("co2.xlsx")
		gt.NoError(t, store.PutTable(ctx, "co2", table))

		retrieved, err := store.GetTable(ctx, "co2")
		gt.NoError(t, err)
		gt.Equal(t, table.Source, retrieved.Source)
		gt.Equal(t, table.Entities, retrieved.Entities)
		gt.Equal(t, table.Years, retrieved.Years)
	})

	t.Run("GetTable not found", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		_, err := store.GetTable(context.Background(), "missing")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrTableNotFound))
	})

	t.Run("PutTable rejects invalid input", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		gt.Error(t, store.PutTable(ctx, "", newTable("x")))
		gt.Error(t, store.PutTable(ctx, "x", nil))
	})

	t.Run("ListTables", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		gt.NoError(t, store.PutTable(ctx, "gdp", newTable("gdp.xlsx")))
		gt.NoError(t, store.PutTable(ctx, "co2", newTable("co2.xlsx")))

		names, err := store.ListTables(ctx)
		gt.NoError(t, err)
		gt.Equal(t, []types.SourceName{"co2", "gdp"}, names)
	})

	t.Run("Close drops tables", func(t *testing.T) {
		store := newStore(t)

		ctx := context.Background()
		gt.NoError(t, store.PutTable(ctx, "co2", newTable("co2.xlsx")))
		gt.NoError(t, store.Close())

		names, err := store.ListTables(ctx)
		gt.NoError(t, err)
		gt.Equal(t, 0, len(names))
	})
}

func TestMemoryTableStore(t *testing.T) {
	testTableStore(t, func(t *testing.T) interfaces.TableStore {
		return repository.NewMemory()
	})
}
