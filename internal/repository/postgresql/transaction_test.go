package postgresql

import (
	"context"
	"testing"

	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// stubTx satisfies pgx.Tx so the querier selection can be exercised without a
// live connection.
type stubTx struct{}

var _ pgx.Tx = (*stubTx)(nil)

func (s *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return s, nil }
func (s *stubTx) Commit(ctx context.Context) error          { return nil }
func (s *stubTx) Rollback(ctx context.Context) error        { return nil }
func (s *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (s *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (s *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (s *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (s *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (s *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (s *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (s *stubTx) Conn() *pgx.Conn                                               { return nil }

func TestGetQuerier(t *testing.T) {
	db := &database.DB{}
	tx := &stubTx{}

	t.Run("plain context uses the pool", func(t *testing.T) {
		q := GetQuerier(context.Background(), db)
		assert.Equal(t, database.Querier(db.Pool), q)
	})

	t.Run("transaction context uses the transaction", func(t *testing.T) {
		txCtx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))
		q := GetQuerier(txCtx, db)
		assert.Same(t, tx, q)
	})

	t.Run("unrelated value under the key falls back to the pool", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "tx", "not-a-tx")
		q := GetQuerier(ctx, db)
		assert.Equal(t, database.Querier(db.Pool), q)
	})
}
