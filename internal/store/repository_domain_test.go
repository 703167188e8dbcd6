package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

func newTestDomainRepo(t *testing.T) (DomainRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewDomainRepository(&DB{DB: db, logger: l, isTransient: isTransientPostgresError}, l)
	return repo, mock
}

func TestBuildUpsertDomainQuery(t *testing.T) {
	query, args, err := buildUpsertDomainQuery(models.DomainRecord{
		UserID:   7,
		DomainID: "theme",
		Payload:  models.Payload(`{"name":"dark"}`),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO domain_blobs (user_id,domain_id,payload,updated_at) VALUES ($1,$2,$3,NOW()) "+
			"ON CONFLICT (user_id, domain_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at RETURNING updated_at",
		query)
	assert.Equal(t, []any{int64(7), "theme", `{"name":"dark"}`}, args)
}

func TestBuildGetDomainQuery(t *testing.T) {
	query, args, err := buildGetDomainQuery(7, "theme")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT user_id, domain_id, payload, updated_at FROM domain_blobs WHERE (user_id = $1 AND domain_id = $2)",
		query)
	assert.Equal(t, []any{int64(7), "theme"}, args)
}

func TestUpsertDomain(t *testing.T) {
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantErr   error
		transient bool
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO domain_blobs")).
					WithArgs(int64(7), "stats", `{"streak":3}`).
					WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))
			},
		},
		{
			name: "constraint violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO domain_blobs")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "deadlock is transient",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO domain_blobs")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
			},
			wantErr:   ErrExecutingStatement,
			transient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestDomainRepo(t)
			tt.setup(mock)

			got, err := repo.UpsertDomain(context.Background(), models.DomainRecord{
				UserID:   7,
				DomainID: "stats",
				Payload:  models.Payload(`{"streak":3}`),
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.transient, errors.Is(err, ErrTransient))
				return
			}
			require.NoError(t, err)
			assert.True(t, updatedAt.Equal(got.UpdatedAt))
			assert.Equal(t, "stats", got.DomainID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetDomain(t *testing.T) {
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestDomainRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, domain_id, payload, updated_at FROM domain_blobs")).
			WithArgs(int64(7), "theme").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "domain_id", "payload", "updated_at"}).
				AddRow(int64(7), "theme", []byte(`{"name":"dark"}`), updatedAt))

		got, err := repo.GetDomain(context.Background(), 7, "theme")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"dark"}`, got.Payload.String())
		assert.Equal(t, int64(7), got.UserID)
		assert.True(t, updatedAt.Equal(got.UpdatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestDomainRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id")).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetDomain(context.Background(), 7, "theme")
		assert.ErrorIs(t, err, ErrDomainNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestDomainRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id")).
			WillReturnError(errors.New("boom"))

		_, err := repo.GetDomain(context.Background(), 7, "theme")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrDomainNotFound)
	})
}
