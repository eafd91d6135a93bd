package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const _listByClientQuery = `SELECT r.id, r.chambre_id, r.client_id, r.date_arrivee, r.date_depart, ` +
	`ch.numero AS chambre_numero, ch.capacite AS chambre_capacite ` +
	`FROM reservations r JOIN chambres ch ON r.chambre_id = ch.id ` +
	`WHERE r.client_id = $1 ORDER BY r.date_arrivee DESC`

func TestReservationDAO_ListByClient(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewReservationDAO(testLogger(), db)

	rows := sqlmock.NewRows([]string{
		"id", "chambre_id", "client_id", "date_arrivee", "date_depart", "chambre_numero", "chambre_capacite",
	}).
		AddRow(2, 1, 7, date("2024-03-01"), date("2024-03-05"), 101, 2).
		AddRow(1, 2, 7, date("2024-01-10"), date("2024-01-15"), 102, 4)

	mock.ExpectQuery(regexp.QuoteMeta(_listByClientQuery)).
		WithArgs(7).
		WillReturnRows(rows)

	reservations, err := dao.ListByClient(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, model.ID(7), reservations[0].ClientID)
	require.NotNil(t, reservations[0].ChambreNumero)
	assert.Equal(t, 101, *reservations[0].ChambreNumero)
	assert.Equal(t, date("2024-03-01"), reservations[0].DateArrivee)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationDAO_ListByClient_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewReservationDAO(testLogger(), db)

	mock.ExpectQuery(regexp.QuoteMeta(_listByClientQuery)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "chambre_id", "client_id", "date_arrivee", "date_depart", "chambre_numero", "chambre_capacite",
		}))

	reservations, err := dao.ListByClient(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, reservations)
	assert.NotNil(t, reservations)
}
