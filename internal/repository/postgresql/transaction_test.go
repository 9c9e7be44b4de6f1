package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier(t *testing.T) {
	db := &database.DB{}
	tx := &stubTx{}

	ctx := context.Background()
	assert.Same(t, db, GetQuerier(ctx, db))

	txCtx := ContextWithTx(ctx, tx)
	assert.Same(t, tx, GetQuerier(txCtx, db))

	// A derived context still carries the transaction.
	child, cancel := context.WithCancel(txCtx)
	defer cancel()
	assert.Same(t, tx, GetQuerier(child, db))
}
