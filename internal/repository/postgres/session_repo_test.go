package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

func TestSessionRepo_GetDecodesAndNormalizes(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()

	doc := []byte(`{"user":{"userId":"U1","accountStatus":"active"},"cart":{"cartLineItems":[{"skuId":"S1","quantity":2}]}}`)
	mock.ExpectQuery(`SELECT data FROM sessions WHERE id=\$1`).
		WithArgs("sid").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(doc))

	s, err := r.Get(ctx, "sid")
	require.NoError(t, err)
	require.Equal(t, "U1", s.User.UserID)
	require.Equal(t, []model.CartLine{{SkuID: "S1", Quantity: 2}}, s.Cart.Lines)
	require.NotNil(t, s.Continuity)
	require.NotNil(t, s.OTPs)

	mock.ExpectQuery(`SELECT data FROM sessions`).WithArgs("gone").WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, "gone")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSessionRepo_PutUpserts(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)

	mock.ExpectExec(`INSERT INTO sessions \(id, data, updated_at\) VALUES \(\$1, \$2, now\(\)\) ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("sid", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Put(context.Background(), "sid", model.NewSession()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_DeleteIdle(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)

	cutoff := time.Now().Add(-time.Hour)
	mock.ExpectExec(`DELETE FROM sessions WHERE updated_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))
	n, err := r.DeleteIdle(context.Background(), cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)

	mock.ExpectExec(`DELETE FROM sessions WHERE id=\$1`).
		WithArgs("sid").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, r.Delete(context.Background(), "sid"))
}
