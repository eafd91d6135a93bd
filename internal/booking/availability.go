package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Uilsaun/GitResaHotel/internal/model"
)

// Overlaps reports whether the half-open date ranges [a1, d1) and [a2, d2)
// share any day: a1 < d2 AND a2 < d1. Departing on the day another guest
// arrives is not an overlap.
func Overlaps(a1, d1, a2, d2 time.Time) bool {
	return a1.Before(d2) && a2.Before(d1)
}

// ValidateRange rejects empty or inverted ranges. arrivee == depart is an
// empty stay and is treated as invalid rather than "no overlap possible".
func ValidateRange(arrivee, depart time.Time) error {
	if !arrivee.Before(depart) {
		return model.E(model.CodeValidation, "departure date must be after arrival date")
	}
	return nil
}

// ChambreStore is the query surface the engine needs. Satisfied by
// *database.ChambreDAO.
type ChambreStore interface {
	List(ctx context.Context, minCapacite *int) ([]model.Chambre, error)
	FindAvailable(ctx context.Context, arrivee, depart time.Time, minCapacite *int) ([]model.Chambre, error)
	CountOverlapping(ctx context.Context, chambreID model.ID, arrivee, depart time.Time) (int, error)
}

// Engine answers room-availability queries against existing reservations.
type Engine struct {
	logger   *slog.Logger
	chambres ChambreStore
}

func NewEngine(logger *slog.Logger, chambres ChambreStore) *Engine {
	return &Engine{
		logger:   logger.With("module", "booking"),
		chambres: chambres,
	}
}

// IsAvailable reports whether the chambre has no reservation overlapping
// [arrivee, depart).
func (e *Engine) IsAvailable(ctx context.Context, chambreID model.ID, arrivee, depart time.Time) (bool, error) {
	if err := ValidateRange(arrivee, depart); err != nil {
		return false, err
	}

	count, err := e.chambres.CountOverlapping(ctx, chambreID, arrivee, depart)
	if err != nil {
		return false, e.storeFailure("isAvailable", err)
	}

	return count == 0, nil
}

// FindAvailable returns the chambres free over [arrivee, depart), optionally
// filtered to capacite >= *minCapacite, ordered by numero ascending.
func (e *Engine) FindAvailable(ctx context.Context, arrivee, depart time.Time, minCapacite *int) ([]model.Chambre, error) {
	if err := ValidateRange(arrivee, depart); err != nil {
		return nil, err
	}
	if minCapacite != nil && (*minCapacite < 1 || *minCapacite > 20) {
		return nil, model.E(model.CodeValidation, "party size must be between 1 and 20")
	}

	chambres, err := e.chambres.FindAvailable(ctx, arrivee, depart, minCapacite)
	if err != nil {
		return nil, e.storeFailure("findAvailable", err)
	}

	return chambres, nil
}

// ListChambres is the degenerate query when no date range is supplied: every
// chambre, optionally capacity-filtered.
func (e *Engine) ListChambres(ctx context.Context, minCapacite *int) ([]model.Chambre, error) {
	if minCapacite != nil && (*minCapacite < 1 || *minCapacite > 20) {
		return nil, model.E(model.CodeValidation, "party size must be between 1 and 20")
	}

	chambres, err := e.chambres.List(ctx, minCapacite)
	if err != nil {
		return nil, e.storeFailure("listChambres", err)
	}

	return chambres, nil
}

func (e *Engine) storeFailure(op string, err error) error {
	e.logger.Error("unexpected store failure", "op", op, "error", err)
	return fmt.Errorf("booking: %s: %w", op, err)
}
