package questdb

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// QuestDBClient defines the interface for QuestDB operations used by the bar archive.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type QuestDBClient interface {
	Exec(ctx context.Context, sql string, args ...any) error

	// Batch operations
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)

	// Connection management
	Ping(ctx context.Context) error
	Close()
}
