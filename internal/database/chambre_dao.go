package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Uilsaun/GitResaHotel/internal/model"
)

type ChambreDAO struct {
	Logger *slog.Logger
	*DB
}

func NewChambreDAO(logger *slog.Logger, db *DB) *ChambreDAO {
	return &ChambreDAO{
		Logger: logger.With("dao", "chambre"),
		DB:     db,
	}
}

func (dao *ChambreDAO) Get(ctx context.Context, id model.ID) (model.Chambre, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("chambres").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Chambre{}, err
	}

	var chambre model.Chambre
	if err := dao.GetContext(ctx, &chambre, query, args...); err != nil {
		if IsNoRows(err) {
			return model.Chambre{}, model.NewError("chambre", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Chambre{}, err
	}

	return chambre, nil
}

// List returns every chambre ordered by numero, optionally filtered to
// capacite >= minCapacite. This is the degenerate availability query used
// when no date range is supplied.
func (dao *ChambreDAO) List(ctx context.Context, minCapacite *int) ([]model.Chambre, error) {
	logger := dao.Logger.With("query", "list")

	builder := dao.Builder.
		Select("*").
		From("chambres")
	if minCapacite != nil {
		builder = builder.Where(squirrel.GtOrEq{"capacite": *minCapacite})
	}
	builder = builder.OrderBy("numero ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	chambres := []model.Chambre{}
	if err := dao.SelectContext(ctx, &chambres, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return nil, err
	}

	logger.Debug("success query execute", "countChambres", len(chambres))

	return chambres, nil
}

// FindAvailable returns chambres with no reservation overlapping the
// half-open range [arrivee, depart), ordered by numero. Two ranges overlap
// iff existing.date_arrivee < depart AND existing.date_depart > arrivee;
// a departure on the day of another arrival is not a conflict.
func (dao *ChambreDAO) FindAvailable(ctx context.Context, arrivee, depart time.Time, minCapacite *int) ([]model.Chambre, error) {
	logger := dao.Logger.With("query", "findAvailable")

	builder := dao.Builder.
		Select("c.id", "c.numero", "c.capacite").
		From("chambres c").
		Where(
			"c.id NOT IN (SELECT r.chambre_id FROM reservations r WHERE r.date_arrivee < ? AND r.date_depart > ?)",
			depart, arrivee,
		)
	if minCapacite != nil {
		builder = builder.Where(squirrel.GtOrEq{"c.capacite": *minCapacite})
	}
	builder = builder.OrderBy("c.numero ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	chambres := []model.Chambre{}
	if err := dao.SelectContext(ctx, &chambres, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return nil, err
	}

	logger.Debug("success query execute", "countChambres", len(chambres))

	return chambres, nil
}

// CountOverlapping counts reservations for one chambre that overlap the
// half-open range [arrivee, depart).
func (dao *ChambreDAO) CountOverlapping(ctx context.Context, chambreID model.ID, arrivee, depart time.Time) (int, error) {
	logger := dao.Logger.With("query", "countOverlapping")

	query, args, err := dao.Builder.
		Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"chambre_id": chambreID}).
		Where("date_arrivee < ? AND date_depart > ?", depart, arrivee).
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var count int
	if err := dao.GetContext(ctx, &count, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return 0, err
	}

	return count, nil
}
