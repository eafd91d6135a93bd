package main

import (
	"context"
	"time"

	"github.com/Uilsaun/GitResaHotel/internal/auth"
	"github.com/Uilsaun/GitResaHotel/internal/model"
)

// Handler-facing contracts. The concrete implementations live in
// internal/auth, internal/booking and internal/database; tests substitute
// stubs.

type authService interface {
	Register(ctx context.Context, data auth.RegisterData) (model.Client, error)
	Login(ctx context.Context, email, password string) (model.Client, error)
	ChangePassword(ctx context.Context, id model.ID, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, id model.ID, data auth.ProfileData) (model.Client, error)
	FindByID(ctx context.Context, id int) (model.Client, error)
}

type bookingEngine interface {
	FindAvailable(ctx context.Context, arrivee, depart time.Time, minCapacite *int) ([]model.Chambre, error)
	ListChambres(ctx context.Context, minCapacite *int) ([]model.Chambre, error)
}

type reservationStore interface {
	ListByClient(ctx context.Context, clientID model.ID) ([]model.Reservation, error)
}
