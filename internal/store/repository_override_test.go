package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/models"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestOverrideRepo(t *testing.T) (*overrideRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &overrideRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

// ── GetOverride ──────────────────────────────────────────────────────────────

func TestGetOverride_Success(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM overrides WHERE name = ?")).
		WithArgs("vite-api-base-url").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("https://pinned.example.com"))

	got, err := repo.GetOverride(context.Background(), "vite-api-base-url")

	require.NoError(t, err)
	assert.Equal(t, "https://pinned.example.com", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOverride_NotFound(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery("SELECT value FROM overrides").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetOverride(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestGetOverride_DBError(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery("SELECT value FROM overrides").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetOverride(context.Background(), "k")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestGetOverride_EmptyKey(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	_, err := repo.GetOverride(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyOverrideKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── SetOverride ──────────────────────────────────────────────────────────────

func TestSetOverride_Success(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectExec("INSERT INTO overrides").
		WithArgs("k", "https://pinned.example.com", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetOverride(context.Background(), "k", "https://pinned.example.com")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOverride_DBError(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectExec("INSERT INTO overrides").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)

	err := repo.SetOverride(context.Background(), "k", "v")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSetOverride_EmptyKey(t *testing.T) {
	repo, _ := newTestOverrideRepo(t)

	assert.ErrorIs(t, repo.SetOverride(context.Background(), "", "v"), ErrEmptyOverrideKey)
}

// ── ClearOverride ────────────────────────────────────────────────────────────

func TestClearOverride_Success(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM overrides WHERE name = ?")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearOverride(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearOverride_NothingToClear(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectExec("DELETE FROM overrides").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.ClearOverride(context.Background(), "k"), ErrOverrideNotFound)
}

func TestClearOverride_DBError(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectExec("DELETE FROM overrides").
		WillReturnError(sql.ErrConnDone)

	assert.ErrorIs(t, repo.ClearOverride(context.Background(), "k"), ErrExecutingStatement)
}

// ── ListOverrides ────────────────────────────────────────────────────────────

func TestListOverrides_Success(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery("SELECT name, value, updated_at FROM overrides").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value", "updated_at"}).
			AddRow("a", "1", fixedNow).
			AddRow("b", "2", fixedNow))

	got, err := repo.ListOverrides(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Override{
		{Key: "a", Value: "1", UpdatedAt: fixedNow},
		{Key: "b", Value: "2", UpdatedAt: fixedNow},
	}, got)
}

func TestListOverrides_Empty(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery("SELECT name, value, updated_at FROM overrides").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value", "updated_at"}))

	got, err := repo.ListOverrides(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestListOverrides_QueryError(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery("SELECT name, value, updated_at FROM overrides").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.ListOverrides(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListOverrides_ScanError(t *testing.T) {
	repo, mock := newTestOverrideRepo(t)

	mock.ExpectQuery("SELECT name, value, updated_at FROM overrides").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value", "updated_at"}).
			AddRow("a", "1", "not a time"))

	_, err := repo.ListOverrides(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestNewOverrideRepository_ImplementsInterface(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var repo OverrideRepository = NewOverrideRepository(&DB{DB: db}, logger.Nop())
	assert.NotNil(t, repo)
}
