package ports

import "context"

// Row is one result row keyed by column name. Values carry whatever the
// driver produced: string, int64, float64, []byte or nil.
type Row map[string]any

// Store defines the interface for relational persistence. Implementations
// classify their failures with the pkg/domain error taxonomy, in particular
// domain.KindDuplicateKey for uniqueness violations.
type Store interface {
	// Query runs a statement that returns rows.
	Query(ctx context.Context, query string, args ...any) ([]Row, error)

	// Exec runs a statement that returns no rows and reports how many
	// rows it affected.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// Close releases the underlying connection.
	Close() error
}
