package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Uilsaun/GitResaHotel/internal/database"
	"github.com/Uilsaun/GitResaHotel/internal/model"
)

// ClientStore is the persistence surface the service needs. Satisfied by
// *database.ClientDAO; tests plug in fakes.
type ClientStore interface {
	Create(ctx context.Context, dto database.InsertClientDTO) (model.Client, error)
	Get(ctx context.Context, id model.ID) (model.Client, error)
	GetByEmail(ctx context.Context, email string) (model.Client, error)
	UpdatePassword(ctx context.Context, id model.ID, passwordHash string) error
	UpdateProfile(ctx context.Context, id model.ID, dto database.UpdateProfileDTO) error
}

// Service implements registration, login, password change and profile
// updates over a ClientStore. Business failures come back as *model.Error
// with a stable code; anything else is an unexpected store failure, wrapped
// and logged.
type Service struct {
	logger  *slog.Logger
	clients ClientStore
	hasher  PasswordHasher
}

func NewService(logger *slog.Logger, clients ClientStore, hasher PasswordHasher) *Service {
	return &Service{
		logger:  logger.With("module", "auth"),
		clients: clients,
		hasher:  hasher,
	}
}

// _dummyHash is a syntactically valid bcrypt hash verified when the looked-up
// account does not exist, so that login latency does not reveal whether an
// email is registered.
const _dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register validates the data, enforces email uniqueness on the normalized
// address, hashes the password and persists the account. The returned client
// never carries the password hash.
func (s *Service) Register(ctx context.Context, data RegisterData) (model.Client, error) {
	if err := ValidateClientData(data, true); err != nil {
		return model.Client{}, err
	}

	email := NormalizeEmail(data.Email)

	_, err := s.clients.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return model.Client{}, model.ErrEmailExists
	case !errors.Is(err, model.ErrNotFound):
		return model.Client{}, s.storeFailure("register", err)
	}

	hash, err := s.hasher.Hash(data.Password)
	if err != nil {
		return model.Client{}, s.storeFailure("register", err)
	}

	client, err := s.clients.Create(ctx, database.InsertClientDTO{
		Nom:             strings.TrimSpace(data.Nom),
		Email:           email,
		Telephone:       strings.TrimSpace(data.Telephone),
		NombrePersonnes: data.NombrePersonnes,
		PasswordHash:    hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			return model.Client{}, model.ErrEmailExists
		}
		return model.Client{}, s.storeFailure("register", err)
	}

	client.PasswordHash = ""
	return client, nil
}

// Login verifies the credentials. A missing account and a wrong password are
// indistinguishable: same error, and the hash verification runs in both
// cases.
func (s *Service) Login(ctx context.Context, email, password string) (model.Client, error) {
	if err := ValidateEmail(email); err != nil {
		return model.Client{}, err
	}
	if password == "" {
		return model.Client{}, model.E(model.CodeInvalidPassword, "password is required")
	}

	client, err := s.clients.GetByEmail(ctx, NormalizeEmail(email))
	exists := true
	switch {
	case errors.Is(err, model.ErrNotFound):
		exists = false
		client.PasswordHash = _dummyHash
	case err != nil:
		return model.Client{}, s.storeFailure("login", err)
	}

	if !s.hasher.Verify(password, client.PasswordHash) || !exists {
		return model.Client{}, model.ErrInvalidCredentials
	}

	client.PasswordHash = ""
	return client, nil
}

// ChangePassword verifies the old password and transactionally stores the
// new hash.
func (s *Service) ChangePassword(ctx context.Context, id model.ID, oldPassword, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	client, err := s.clients.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrClientNotFound
		}
		return s.storeFailure("changePassword", err)
	}

	if !s.hasher.Verify(oldPassword, client.PasswordHash) {
		return model.E(model.CodeInvalidPassword, "incorrect old password")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return s.storeFailure("changePassword", err)
	}

	if err := s.clients.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrClientNotFound
		}
		return s.storeFailure("changePassword", err)
	}

	return nil
}

// ProfileData carries a partial profile update; nil fields keep their
// current value.
type ProfileData struct {
	Nom             *string
	Telephone       *string
	NombrePersonnes *int
}

// UpdateProfile validates each supplied field, carries forward the absent
// ones and writes all three columns in one transaction.
func (s *Service) UpdateProfile(ctx context.Context, id model.ID, data ProfileData) (model.Client, error) {
	client, err := s.clients.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Client{}, model.ErrClientNotFound
		}
		return model.Client{}, s.storeFailure("updateProfile", err)
	}

	dto := database.UpdateProfileDTO{
		Nom:             client.Nom,
		Telephone:       client.Telephone,
		NombrePersonnes: client.NombrePersonnes,
	}

	if data.Nom != nil {
		nom := strings.TrimSpace(*data.Nom)
		if nom == "" {
			return model.Client{}, model.E(model.CodeValidation, "invalid name")
		}
		if len(nom) > 255 {
			return model.Client{}, model.E(model.CodeValidation, "name too long")
		}
		dto.Nom = nom
	}

	if data.Telephone != nil {
		telephone := strings.TrimSpace(*data.Telephone)
		if telephone == "" {
			return model.Client{}, model.E(model.CodeValidation, "invalid phone")
		}
		if len(telephone) > 20 {
			return model.Client{}, model.E(model.CodeValidation, "phone number too long")
		}
		dto.Telephone = telephone
	}

	if data.NombrePersonnes != nil {
		if *data.NombrePersonnes < 1 || *data.NombrePersonnes > 20 {
			return model.Client{}, model.E(model.CodeValidation, "party size must be between 1 and 20")
		}
		dto.NombrePersonnes = *data.NombrePersonnes
	}

	if err := s.clients.UpdateProfile(ctx, id, dto); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Client{}, model.ErrClientNotFound
		}
		return model.Client{}, s.storeFailure("updateProfile", err)
	}

	client.Nom = dto.Nom
	client.Telephone = dto.Telephone
	client.NombrePersonnes = dto.NombrePersonnes
	client.PasswordHash = ""

	return client, nil
}

// FindByID looks up an account. The id must be positive; absence is
// CLIENT_NOT_FOUND.
func (s *Service) FindByID(ctx context.Context, id int) (model.Client, error) {
	if id <= 0 {
		return model.Client{}, model.ErrInvalidID
	}

	client, err := s.clients.Get(ctx, model.ID(id))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Client{}, model.ErrClientNotFound
		}
		return model.Client{}, s.storeFailure("findById", err)
	}

	client.PasswordHash = ""
	return client, nil
}

// FindByEmail looks up an account by its normalized email.
func (s *Service) FindByEmail(ctx context.Context, email string) (model.Client, error) {
	if err := ValidateEmail(email); err != nil {
		return model.Client{}, err
	}

	client, err := s.clients.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Client{}, model.ErrClientNotFound
		}
		return model.Client{}, s.storeFailure("findByEmail", err)
	}

	client.PasswordHash = ""
	return client, nil
}

func (s *Service) storeFailure(op string, err error) error {
	s.logger.Error("unexpected store failure", "op", op, "error", err)
	return fmt.Errorf("auth: %s: %w", op, err)
}
