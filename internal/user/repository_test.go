package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupUserMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "phone", "created_at", "updated_at"})
}

func TestCreateAndFindUser(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	// Create
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, first_name, last_name, phone) VALUES ($1, $2, $3, $4) RETURNING id, email, first_name, last_name, phone, created_at, updated_at")).
		WithArgs("alice@example.com", "Alice", "Smith", nil).
		WillReturnRows(userRows().AddRow(1, "alice@example.com", "Alice", "Smith", nil, now, now))

	u, err := repo.Create(ctx, "alice@example.com", "Alice", "Smith", nil)
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, "alice@example.com", u.Email)

	// FindByID
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, first_name, last_name, phone, created_at, updated_at FROM users WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(userRows().AddRow(1, "alice@example.com", "Alice", "Smith", nil, now, now))

	fu, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Alice", fu.FirstName)

	// EmailExists true
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUser_NotFound(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, first_name, last_name, phone, created_at, updated_at FROM users WHERE id = $1")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	u, err := repo.FindByID(context.Background(), 42)
	require.Nil(t, u)
	require.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	now := time.Now()
	phone := "+15550000001"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, first_name, last_name, phone, created_at, updated_at FROM users ORDER BY created_at DESC")).
		WillReturnRows(userRows().
			AddRow(2, "bob@example.com", "Bob", "Jones", phone, now, now).
			AddRow(1, "alice@example.com", "Alice", "Smith", nil, now, now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "bob@example.com", users[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	now := time.Now()
	email := "new@example.com"
	phone := "+15550000002"

	// Only email and phone were sent, so only those columns appear in SET.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = NOW(), email = $1, phone = $2 WHERE id = $3 RETURNING id, email, first_name, last_name, phone, created_at, updated_at")).
		WithArgs(email, phone, 1).
		WillReturnRows(userRows().AddRow(1, email, "Alice", "Smith", phone, now, now))

	u, err := repo.Update(context.Background(), 1, UpdateUserRequest{Email: &email, Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, email, u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	name := "Updated"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = NOW(), first_name = $1 WHERE id = $2 RETURNING id, email, first_name, last_name, phone, created_at, updated_at")).
		WithArgs(name, 99).
		WillReturnError(sql.ErrNoRows)

	u, err := repo.Update(context.Background(), 99, UpdateUserRequest{FirstName: &name})
	require.Nil(t, u)
	require.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
