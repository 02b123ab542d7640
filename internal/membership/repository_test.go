package membership

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMembershipMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func tierRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "price", "duration_months", "features", "is_active", "created_at"})
}

func membershipRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "membership_tier_id", "start_date", "end_date", "status", "created_at"})
}

func TestCreateTier(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO membership_tiers (name, description, price, duration_months, features, is_active) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, name, description, price, duration_months, features, is_active, created_at")).
		WithArgs("Gold", "All access", 59.99, 12, pq.StringArray{"pool", "sauna"}, true).
		WillReturnRows(tierRows().AddRow(1, "Gold", "All access", 59.99, 12, "{pool,sauna}", true, now))

	tier, err := repo.CreateTier(context.Background(), "Gold", "All access", 59.99, 12, []string{"pool", "sauna"}, true)
	require.NoError(t, err)
	require.Equal(t, 1, tier.ID)
	require.Equal(t, 12, tier.DurationMonths)
	require.Equal(t, pq.StringArray{"pool", "sauna"}, tier.Features)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTierByID_NotFound(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, duration_months, features, is_active, created_at FROM membership_tiers WHERE id = $1")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	tier, err := repo.GetTierByID(context.Background(), 99)
	require.Nil(t, tier)
	require.ErrorIs(t, err, ErrTierNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTiers_OnlyActive(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, duration_months, features, is_active, created_at FROM membership_tiers WHERE is_active = TRUE ORDER BY price ASC")).
		WillReturnRows(tierRows().
			AddRow(1, "Basic", "Entry", 29.99, 1, "{gym}", true, now).
			AddRow(2, "Gold", "All access", 59.99, 12, "{pool,sauna}", true, now))

	tiers, err := repo.ListTiers(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	require.Equal(t, "Basic", tiers[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMembership(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_memberships (user_id, membership_tier_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, 'active') RETURNING id, user_id, membership_tier_id, start_date, end_date, status, created_at")).
		WithArgs(1, 2, start, end).
		WillReturnRows(membershipRows().AddRow(1, 1, 2, start, end, "active", now))

	m, err := repo.CreateMembership(context.Background(), 1, 2, start, end)
	require.NoError(t, err)
	require.Equal(t, StatusActive, m.Status)
	require.Equal(t, end, m.EndDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCurrentMembership(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, membership_tier_id, start_date, end_date, status, created_at FROM user_memberships WHERE user_id = $1 AND status = 'active' ORDER BY created_at DESC LIMIT 1")).
		WithArgs(1).
		WillReturnRows(membershipRows().AddRow(3, 1, 2, now, now.AddDate(1, 0, 0), "active", now))

	m, err := repo.GetCurrentMembership(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, m.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCurrentMembership_None(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, membership_tier_id, start_date, end_date, status, created_at FROM user_memberships WHERE user_id = $1 AND status = 'active' ORDER BY created_at DESC LIMIT 1")).
		WithArgs(7).
		WillReturnError(sql.ErrNoRows)

	m, err := repo.GetCurrentMembership(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, m)
	require.NoError(t, mock.ExpectationsWereMet())
}
