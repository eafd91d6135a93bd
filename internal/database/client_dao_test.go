package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return Wrap(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clientRows(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "nom", "email", "telephone", "nombre_personnes", "password",
	}).AddRow(id, now, now, "Jean Dupont", "jean@example.com", "0601020304", 2, "$2a$04$hash")
}

const (
	_insertClientQuery  = `INSERT INTO clients (nom,email,telephone,nombre_personnes,password) VALUES ($1,$2,$3,$4,$5) RETURNING id`
	_getClientQuery     = `SELECT * FROM clients WHERE id = $1 LIMIT 1`
	_getByEmailQuery    = `SELECT * FROM clients WHERE email = $1 LIMIT 1`
	_updatePasswordStmt = `UPDATE clients SET password = $1, updated_at = $2 WHERE id = $3`
	_updateProfileStmt  = `UPDATE clients SET nom = $1, nombre_personnes = $2, telephone = $3, updated_at = $4 WHERE id = $5`
)

func insertDTO() InsertClientDTO {
	return InsertClientDTO{
		Nom:             "Jean Dupont",
		Email:           "jean@example.com",
		Telephone:       "0601020304",
		NombrePersonnes: 2,
		PasswordHash:    "$2a$04$hash",
	}
}

func TestClientDAO_Create(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	// Insert and read-back run in one transaction.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(_insertClientQuery)).
		WithArgs("Jean Dupont", "jean@example.com", "0601020304", 2, "$2a$04$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(_getClientQuery)).
		WithArgs(1).
		WillReturnRows(clientRows(1))
	mock.ExpectCommit()

	client, err := dao.Create(context.Background(), insertDTO())
	require.NoError(t, err)
	assert.Equal(t, model.ID(1), client.ID)
	assert.Equal(t, "jean@example.com", client.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientDAO_Create_UniqueViolationRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(_insertClientQuery)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	_, err := dao.Create(context.Background(), insertDTO())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrExists))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientDAO_Create_ReadBackFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(_insertClientQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(_getClientQuery)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := dao.Create(context.Background(), insertDTO())
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientDAO_Get(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_getClientQuery)).
		WithArgs(7).
		WillReturnRows(clientRows(7))

	client, err := dao.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, model.ID(7), client.ID)
	assert.Equal(t, "$2a$04$hash", client.PasswordHash)
}

func TestClientDAO_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_getClientQuery)).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := dao.Get(context.Background(), 404)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestClientDAO_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_getByEmailQuery)).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := dao.GetByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestClientDAO_UpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(_updatePasswordStmt)).
		WithArgs("$2a$04$newhash", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := dao.UpdatePassword(context.Background(), 7, "$2a$04$newhash")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientDAO_UpdatePassword_MissingRowRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(_updatePasswordStmt)).
		WithArgs("$2a$04$newhash", sqlmock.AnyArg(), 404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := dao.UpdatePassword(context.Background(), 404, "$2a$04$newhash")
	assert.True(t, errors.Is(err, model.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientDAO_UpdateProfile(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewClientDAO(testLogger(), db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(_updateProfileStmt)).
		WithArgs("Jean Dupont", 4, "0600000000", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := dao.UpdateProfile(context.Background(), 7, UpdateProfileDTO{
		Nom:             "Jean Dupont",
		Telephone:       "0600000000",
		NombrePersonnes: 4,
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
