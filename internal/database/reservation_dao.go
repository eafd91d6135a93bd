package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/Uilsaun/GitResaHotel/internal/model"
)

type ReservationDAO struct {
	Logger *slog.Logger
	*DB
}

func NewReservationDAO(logger *slog.Logger, db *DB) *ReservationDAO {
	return &ReservationDAO{
		Logger: logger.With("dao", "reservation"),
		DB:     db,
	}
}

// ListByClient returns a client's reservations joined with their chambre,
// most recent arrival first.
func (dao *ReservationDAO) ListByClient(ctx context.Context, clientID model.ID) ([]model.Reservation, error) {
	logger := dao.Logger.With("query", "listByClient")

	query, args, err := dao.Builder.
		Select(
			"r.id", "r.chambre_id", "r.client_id", "r.date_arrivee", "r.date_depart",
			"ch.numero AS chambre_numero", "ch.capacite AS chambre_capacite",
		).
		From("reservations r").
		Join("chambres ch ON r.chambre_id = ch.id").
		Where(squirrel.Eq{"r.client_id": clientID}).
		OrderBy("r.date_arrivee DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	reservations := []model.Reservation{}
	if err := dao.SelectContext(ctx, &reservations, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return nil, err
	}

	logger.Debug("success query execute", "countReservations", len(reservations))

	return reservations, nil
}
