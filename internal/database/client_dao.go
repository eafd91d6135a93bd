package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/jmoiron/sqlx"
)

type ClientDAO struct {
	Logger *slog.Logger
	*DB
}

func NewClientDAO(logger *slog.Logger, db *DB) *ClientDAO {
	return &ClientDAO{
		Logger: logger.With("dao", "client"),
		DB:     db,
	}
}

type InsertClientDTO struct {
	Nom             string
	Email           string
	Telephone       string
	NombrePersonnes int
	PasswordHash    string
}

// Create inserts the client and reads the created row back inside one
// transaction, so a caller never observes a half-created account.
func (dao *ClientDAO) Create(ctx context.Context, dto InsertClientDTO) (model.Client, error) {
	logger := dao.Logger.With("query", "create")

	var client model.Client
	err := dao.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		query, args, err := dao.Builder.
			Insert("clients").
			Columns("nom", "email", "telephone", "nombre_personnes", "password").
			Values(dto.Nom, dto.Email, dto.Telephone, dto.NombrePersonnes, dto.PasswordHash).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}

		logger.Debug("build query", "sql", query, "args", len(args))

		var id model.ID
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			if IsUniqueViolation(err) {
				return model.NewError("client", model.ErrExists)
			}
			return err
		}

		client, err = dao.get(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Warn("failed query execute", "error", err)
		return model.Client{}, err
	}

	logger.Debug("success query execute", "insertId", client.ID)

	return client, nil
}

func (dao *ClientDAO) Get(ctx context.Context, id model.ID) (model.Client, error) {
	logger := dao.Logger.With("query", "get")

	client, err := dao.get(ctx, dao.DB, id)
	if err != nil {
		logger.Warn("failed query execute", "error", err)
		return model.Client{}, err
	}

	return client, nil
}

func (dao *ClientDAO) get(ctx context.Context, q Querier, id model.ID) (model.Client, error) {
	query, args, err := dao.Builder.
		Select("*").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Client{}, err
	}

	var client model.Client
	if err := sqlx.GetContext(ctx, q, &client, query, args...); err != nil {
		if IsNoRows(err) {
			return model.Client{}, model.NewError("client", model.ErrNotFound)
		}
		return model.Client{}, err
	}

	return client, nil
}

func (dao *ClientDAO) GetByEmail(ctx context.Context, email string) (model.Client, error) {
	logger := dao.Logger.With("query", "getByEmail")

	query, args, err := dao.Builder.
		Select("*").
		From("clients").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Client{}, err
	}

	logger.Debug("build query", "sql", query)

	var client model.Client
	if err := sqlx.GetContext(ctx, dao.DB, &client, query, args...); err != nil {
		if IsNoRows(err) {
			return model.Client{}, model.NewError("client", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Client{}, err
	}

	return client, nil
}

// UpdatePassword replaces the stored hash inside its own transaction.
func (dao *ClientDAO) UpdatePassword(ctx context.Context, id model.ID, passwordHash string) error {
	logger := dao.Logger.With("query", "updatePassword")

	return dao.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		query, args, err := dao.Builder.
			Update("clients").
			SetMap(map[string]any{
				"password":   passwordHash,
				"updated_at": time.Now(),
			}).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		logger.Debug("build query", "sql", query)

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			logger.Warn("failed query execute", "error", err)
			return err
		}

		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return model.NewError("client", model.ErrNotFound)
		}

		return nil
	})
}

type UpdateProfileDTO struct {
	Nom             string
	Telephone       string
	NombrePersonnes int
}

// UpdateProfile writes all three profile columns in one transaction. The
// caller carries forward unchanged values.
func (dao *ClientDAO) UpdateProfile(ctx context.Context, id model.ID, dto UpdateProfileDTO) error {
	logger := dao.Logger.With("query", "updateProfile")

	return dao.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		query, args, err := dao.Builder.
			Update("clients").
			SetMap(map[string]any{
				"nom":              dto.Nom,
				"telephone":        dto.Telephone,
				"nombre_personnes": dto.NombrePersonnes,
				"updated_at":       time.Now(),
			}).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		logger.Debug("build query", "sql", query)

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			logger.Warn("failed query execute", "error", err)
			return err
		}

		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return model.NewError("client", model.ErrNotFound)
		}

		return nil
	})
}
