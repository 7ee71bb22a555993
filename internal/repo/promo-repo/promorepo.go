package promorepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetRedeemable(ctx context.Context, promoID int64) (*domain.Promo, error) {
	query := `
		SELECT id, title, points_required, max_redeem, quota, valid_from, valid_until
		FROM promos
		WHERE id = $1 AND points_required > 0
	`
	var promo domain.Promo
	err := r.db.QueryRow(ctx, query, promoID).Scan(
		&promo.ID, &promo.Title, &promo.PointsRequired,
		&promo.MaxRedeem, &promo.Quota, &promo.ValidFrom, &promo.ValidUntil,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPromoNotFound
	}
	if err != nil {
		zap.L().Error("can't get promo", zap.Error(err))
		return nil, err
	}
	return &promo, nil
}

// ConsumeQuota decrements a limited quota with a conditional update so
// that concurrent redemptions never oversell. Unlimited (NULL) quota
// always succeeds.
func (r *Repository) ConsumeQuota(ctx context.Context, promoID int64) error {
	query := `
		UPDATE promos
		SET quota = quota - 1
		WHERE id = $1 AND quota > 0
	`
	tag, err := r.db.Exec(ctx, query, promoID)
	if err != nil {
		zap.L().Error("can't consume promo quota", zap.Error(err))
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	unlimitedQuery := `
		SELECT quota IS NULL
		FROM promos
		WHERE id = $1
	`
	var unlimited bool
	err = r.db.QueryRow(ctx, unlimitedQuery, promoID).Scan(&unlimited)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrPromoNotFound
	}
	if err != nil {
		zap.L().Error("can't check promo quota", zap.Error(err))
		return err
	}
	if !unlimited {
		return domain.ErrPromoUnavailable
	}
	return nil
}

// CountMemberVouchers reports how many vouchers the member already
// holds for the promo, redeemed ones included, for max_redeem checks.
func (r *Repository) CountMemberVouchers(ctx context.Context, promoID, memberID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM vouchers
		WHERE promo_id = $1 AND member_id = $2
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, promoID, memberID).Scan(&count); err != nil {
		zap.L().Error("can't count member vouchers", zap.Error(err))
		return 0, err
	}
	return count, nil
}
