package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/makerhq/timeclock-backend-go/internal/pkg/database"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerierPrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := &stubTx{}

	ctx := WithTx(context.Background(), tx)
	if got := GetQuerier(ctx, db); got != database.Querier(tx) {
		t.Errorf("GetQuerier returned %T, want the context transaction", got)
	}
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	if got := GetQuerier(context.Background(), db); got != database.Querier(db.Pool) {
		t.Errorf("GetQuerier returned %T, want the pool", got)
	}
}
