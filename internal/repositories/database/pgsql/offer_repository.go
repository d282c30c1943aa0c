package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	"github.com/lavaresto/menu_backend/internal/models"
	"github.com/lavaresto/menu_backend/internal/utils/mapping"
)

const offerColumns = `offer_id, title, title_ar, description, description_ar, price, image_url,
	expires_at, is_active, created_at, updated_at`

type PgxOfferRepository struct {
	BaseRepository
}

func newPgxOfferRepository(pool *pgxpool.Pool) *PgxOfferRepository {
	return &PgxOfferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

func scanOffer(row pgx.Row) (models.Offer, error) {
	var o models.Offer
	err := row.Scan(
		&o.OfferID,
		&o.Title,
		&o.TitleAr,
		&o.Description,
		&o.DescriptionAr,
		&o.Price,
		&o.ImageURL,
		&o.ExpiresAt,
		&o.IsActive,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func (r *PgxOfferRepository) listOffers(ctx context.Context, query string, args ...any) ([]domain.Offer, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	modelOffers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Offer, error) {
		return scanOffer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan offers: %w", err)
	}
	return mapping.ToDomainOfferSlice(modelOffers), nil
}

// FindOfferByID retrieves an offer by its ID.
func (r *PgxOfferRepository) FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE offer_id = $1;`

	modelOffer, err := scanOffer(r.Pool.QueryRow(ctx, query, offerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer %s: %w", offerID, mapPgError(err))
	}

	offer := mapping.ToDomainOffer(modelOffer)
	return &offer, nil
}

// ListOffers retrieves every offer, newest first.
func (r *PgxOfferRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return r.listOffers(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY created_at DESC;`)
}

// ListLiveOffers retrieves active offers without an expiry or expiring after now, newest first.
func (r *PgxOfferRepository) ListLiveOffers(ctx context.Context, now time.Time) ([]domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE is_active AND (expires_at IS NULL OR expires_at > $1)
		ORDER BY created_at DESC;
	`
	return r.listOffers(ctx, query, now)
}

// SaveOffer inserts a new offer.
func (r *PgxOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	m := mapping.ToModelOffer(offer)
	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OfferID,
		m.Title,
		m.TitleAr,
		m.Description,
		m.DescriptionAr,
		m.Price,
		m.ImageURL,
		m.ExpiresAt,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save offer %s: %w", m.OfferID, mapPgError(err))
	}
	return nil
}

// UpdateOffer replaces every mutable column of an existing offer.
func (r *PgxOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer) error {
	m := mapping.ToModelOffer(offer)
	query := `
		UPDATE offers
		SET title = $2, title_ar = $3, description = $4, description_ar = $5, price = $6,
			image_url = $7, expires_at = $8, is_active = $9, updated_at = $10
		WHERE offer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OfferID,
		m.Title,
		m.TitleAr,
		m.Description,
		m.DescriptionAr,
		m.Price,
		m.ImageURL,
		m.ExpiresAt,
		m.IsActive,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update offer %s: %w", m.OfferID, mapPgError(err))
	}
	return expectAffected(tag)
}

// DeleteOffer removes an offer.
func (r *PgxOfferRepository) DeleteOffer(ctx context.Context, offerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM offers WHERE offer_id = $1;`, offerID)
	if err != nil {
		return fmt.Errorf("failed to delete offer %s: %w", offerID, mapPgError(err))
	}
	return expectAffected(tag)
}

// DeactivateExpiredOffers flips is_active off for active offers whose expiry has passed.
func (r *PgxOfferRepository) DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE offers
		SET is_active = FALSE, updated_at = $1
		WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1;
	`
	tag, err := r.Pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired offers: %w", err)
	}
	return tag.RowsAffected(), nil
}
