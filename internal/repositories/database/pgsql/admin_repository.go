package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	"github.com/lavaresto/menu_backend/internal/models"
	"github.com/lavaresto/menu_backend/internal/utils/mapping"
)

const adminColumns = `admin_id, username, password, created_at, updated_at`

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) *PgxAdminRepository {
	return &PgxAdminRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

func (r *PgxAdminRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Admin, error) {
	var m models.Admin
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&m.AdminID, &m.Username, &m.Password, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	admin := mapping.ToDomainAdmin(m)
	return &admin, nil
}

// FindAdminByUsername retrieves an admin by username.
func (r *PgxAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	admin, err := r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1;`, username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find admin %s: %w", username, err)
	}
	return admin, err
}

// FindAdminByCredentials retrieves the admin matching both username and password exactly.
func (r *PgxAdminRepository) FindAdminByCredentials(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1 AND password = $2;`, username, password)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up admin credentials for %s: %w", username, err)
	}
	return admin, err
}

// SaveAdmin inserts an admin; an existing username keeps its ID and gets the new password.
func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	return saveAdmin(ctx, r.Pool, admin)
}

func saveAdmin(ctx context.Context, db dbtx, admin domain.Admin) error {
	m := mapping.ToModelAdmin(admin)
	query := `
		INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET
			password = EXCLUDED.password,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := db.Exec(ctx, query, m.AdminID, m.Username, m.Password, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save admin %s: %w", m.Username, mapPgError(err))
	}
	return nil
}

// UpdateAdmin changes username and password of an existing admin.
func (r *PgxAdminRepository) UpdateAdmin(ctx context.Context, admin domain.Admin) error {
	m := mapping.ToModelAdmin(admin)
	query := `
		UPDATE admins
		SET username = $2, password = $3, updated_at = $4
		WHERE admin_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.AdminID, m.Username, m.Password, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update admin %s: %w", m.AdminID, mapPgError(err))
	}
	return expectAffected(tag)
}
