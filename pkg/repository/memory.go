package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/interfaces"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
)

// Memory implements TableStore interface with in-memory storage
type Memory struct {
	mu     sync.RWMutex
	tables map[types.SourceName]*model.IndicatorTable
}

// NewMemory creates a new memory table store
func NewMemory() interfaces.TableStore {
	return &Memory{
		tables: make(map[types.SourceName]*model.IndicatorTable),
	}
}

// PutTable stores a table under the source name, replacing any previous one
func (m *Memory) PutTable(ctx context.Context, name types.SourceName, table *model.IndicatorTable) error {
	if name == "" {
		return goerr.New("source name is empty")
	}
	if table == nil {
		return goerr.New("table is nil", goerr.V("name", name))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tables[name] = table
	return nil
}

// GetTable retrieves a table by source name
func (m *Memory) GetTable(ctx context.Context, name types.SourceName) (*model.IndicatorTable, error) {
	if name == "" {
		return nil, goerr.New("source name is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	table, exists := m.tables[name]
	if !exists {
		return nil, goerr.Wrap(model.ErrTableNotFound, "table is not loaded", goerr.V("name", name))
	}
	return table, nil
}

// ListTables lists the names of stored tables in ascending order
func (m *Memory) ListTables(ctx context.Context) ([]types.SourceName, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]types.SourceName, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names, nil
}

// Close drops every stored table
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tables = make(map[types.SourceName]*model.IndicatorTable)
	return nil
}
