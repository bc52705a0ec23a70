package interfaces

import (
	"context"

	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
)

// TableStore keeps indicator tables loaded during a run so a source shared by
// several charts is read only once
type TableStore interface {
	PutTable(ctx context.Context, name types.SourceName, table *model.IndicatorTable) error
	GetTable(ctx context.Context, name types.SourceName) (*model.IndicatorTable, error)
	ListTables(ctx context.Context) ([]types.SourceName, error)

	// Close releases the stored tables
	Close() error
}
