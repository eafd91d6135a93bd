package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	_findAvailableQuery = `SELECT c.id, c.numero, c.capacite FROM chambres c ` +
		`WHERE c.id NOT IN (SELECT r.chambre_id FROM reservations r WHERE r.date_arrivee < $1 AND r.date_depart > $2) ` +
		`ORDER BY c.numero ASC`
	_findAvailableWithCapacityQuery = `SELECT c.id, c.numero, c.capacite FROM chambres c ` +
		`WHERE c.id NOT IN (SELECT r.chambre_id FROM reservations r WHERE r.date_arrivee < $1 AND r.date_depart > $2) ` +
		`AND c.capacite >= $3 ORDER BY c.numero ASC`
	_countOverlappingQuery = `SELECT COUNT(*) FROM reservations WHERE chambre_id = $1 AND date_arrivee < $2 AND date_depart > $3`
	_listChambresQuery     = `SELECT * FROM chambres ORDER BY numero ASC`
)

func TestChambreDAO_FindAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewChambreDAO(testLogger(), db)

	// Departure is bound first: overlap iff existing arrivee < depart AND
	// existing depart > arrivee.
	mock.ExpectQuery(regexp.QuoteMeta(_findAvailableQuery)).
		WithArgs(date("2024-01-14"), date("2024-01-12")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero", "capacite"}).
			AddRow(2, 102, 4))

	chambres, err := dao.FindAvailable(context.Background(), date("2024-01-12"), date("2024-01-14"), nil)
	require.NoError(t, err)
	require.Len(t, chambres, 1)
	assert.Equal(t, model.Chambre{ID: 2, Numero: 102, Capacite: 4}, chambres[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChambreDAO_FindAvailable_WithCapacity(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewChambreDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_findAvailableWithCapacityQuery)).
		WithArgs(date("2024-02-05"), date("2024-02-01"), 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero", "capacite"}).
			AddRow(2, 102, 4))

	minCapacite := 3
	chambres, err := dao.FindAvailable(context.Background(), date("2024-02-01"), date("2024-02-05"), &minCapacite)
	require.NoError(t, err)
	require.Len(t, chambres, 1)
	assert.Equal(t, 102, chambres[0].Numero)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChambreDAO_FindAvailable_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewChambreDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_findAvailableQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero", "capacite"}))

	chambres, err := dao.FindAvailable(context.Background(), date("2024-01-12"), date("2024-01-14"), nil)
	require.NoError(t, err)
	assert.Empty(t, chambres)
	assert.NotNil(t, chambres, "empty result is an empty slice, not nil")
}

func TestChambreDAO_CountOverlapping(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewChambreDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_countOverlappingQuery)).
		WithArgs(1, date("2024-01-14"), date("2024-01-12")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := dao.CountOverlapping(context.Background(), 1, date("2024-01-12"), date("2024-01-14"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChambreDAO_List(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewChambreDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_listChambresQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero", "capacite"}).
			AddRow(1, 101, 2).
			AddRow(2, 102, 4))

	chambres, err := dao.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, chambres, 2)
	assert.Equal(t, 101, chambres[0].Numero)
	assert.Equal(t, 102, chambres[1].Numero)
}

func TestChambreDAO_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewChambreDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM chambres WHERE id = $1 LIMIT 1`)).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero", "capacite"}))

	_, err := dao.Get(context.Background(), 404)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
