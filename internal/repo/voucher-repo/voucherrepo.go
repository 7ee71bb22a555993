package voucherrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/pg"
)

const pgUniqueViolationCode = "23505"

var (
	// ErrDuplicateCode means the generated friendly code collided with
	// an existing voucher; the caller regenerates and retries.
	ErrDuplicateCode = errors.New("friendly code already exists")
	// ErrDuplicateIdempotencyKey means another request with the same
	// key already created a voucher for this member.
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
)

const voucherColumns = `
	id, public_id, member_id, promo_id, reward_name, friendly_code,
	points_used, quantity, status, idempotency_key, created_at,
	redeemed_at, redeemed_by_admin_id`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error) {
	query := `
		INSERT INTO vouchers (public_id, member_id, promo_id, reward_name, friendly_code,
			points_used, quantity, status, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	voucher.PublicID = uuid.New()
	voucher.Status = domain.VoucherActive
	err := r.db.QueryRow(ctx, query,
		voucher.PublicID, voucher.MemberID, voucher.PromoID, voucher.RewardName,
		voucher.FriendlyCode, voucher.PointsUsed, voucher.Quantity,
		voucher.Status, voucher.IdempotencyKey,
	).Scan(&voucher.ID, &voucher.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			if pgErr.ConstraintName == "vouchers_member_id_idempotency_key_key" {
				return nil, ErrDuplicateIdempotencyKey
			}
			return nil, ErrDuplicateCode
		}
		zap.L().Error("can't create voucher", zap.Error(err))
		return nil, err
	}
	return voucher, nil
}

func (r *Repository) FindByFriendlyCode(ctx context.Context, code string) (*domain.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM vouchers WHERE friendly_code = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, code))
}

func (r *Repository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM vouchers WHERE public_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, publicID))
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, memberID int64, key string) (*domain.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM vouchers WHERE member_id = $1 AND idempotency_key = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, memberID, key))
}

func (r *Repository) ListByMember(ctx context.Context, memberID int64) ([]domain.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM vouchers WHERE member_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list member vouchers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		var v domain.Voucher
		if err := scanVoucher(rows, &v); err != nil {
			zap.L().Error("can't scan voucher row", zap.Error(err))
			return nil, err
		}
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// Redeem flips the voucher ACTIVE -> REDEEMED with a conditional
// update, so of N concurrent calls exactly one wins; the audit event
// is written in the same transaction.
func (r *Repository) Redeem(ctx context.Context, voucherID, adminID int64) (*domain.Voucher, error) {
	var redeemed *domain.Voucher
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updateQuery := `
			UPDATE vouchers
			SET status = $1, redeemed_at = now(), redeemed_by_admin_id = $2
			WHERE id = $3 AND status = $4
			RETURNING` + voucherColumns
		voucher, err := r.scanOne(r.db.QueryRow(ctx, updateQuery,
			domain.VoucherRedeemed, adminID, voucherID, domain.VoucherActive))
		if errors.Is(err, domain.ErrVoucherNotFound) {
			return r.classifyRedeemMiss(ctx, voucherID)
		}
		if err != nil {
			return err
		}

		eventQuery := `
			INSERT INTO redeem_events (voucher_id, member_id, admin_id, redeemed_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := r.db.Exec(ctx, eventQuery,
			voucher.ID, voucher.MemberID, adminID, *voucher.RedeemedAt); err != nil {
			zap.L().Error("can't insert redeem event", zap.Error(err))
			return err
		}
		redeemed = voucher
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redeemed, nil
}

// classifyRedeemMiss tells an unknown voucher apart from one that has
// already been redeemed, after the conditional update matched nothing.
func (r *Repository) classifyRedeemMiss(ctx context.Context, voucherID int64) error {
	var status string
	err := r.db.QueryRow(ctx, `SELECT status FROM vouchers WHERE id = $1`, voucherID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrVoucherNotFound
	}
	if err != nil {
		zap.L().Error("can't read voucher status", zap.Error(err))
		return err
	}
	if status == domain.VoucherRedeemed {
		return domain.ErrAlreadyRedeemed
	}
	return domain.ErrVoucherNotFound
}

func (r *Repository) ListRedeemEvents(ctx context.Context, memberID int64) ([]domain.RedeemEvent, error) {
	query := `
		SELECT id, voucher_id, member_id, admin_id, redeemed_at
		FROM redeem_events
		WHERE member_id = $1
		ORDER BY redeemed_at DESC
	`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list redeem events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.RedeemEvent
	for rows.Next() {
		var e domain.RedeemEvent
		if err := rows.Scan(&e.ID, &e.VoucherID, &e.MemberID, &e.AdminID, &e.RedeemedAt); err != nil {
			zap.L().Error("can't scan redeem event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Voucher, error) {
	var v domain.Voucher
	err := scanVoucher(row, &v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVoucherNotFound
	}
	if err != nil {
		zap.L().Error("can't scan voucher", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func scanVoucher(row pgx.Row, v *domain.Voucher) error {
	return row.Scan(
		&v.ID, &v.PublicID, &v.MemberID, &v.PromoID, &v.RewardName,
		&v.FriendlyCode, &v.PointsUsed, &v.Quantity, &v.Status,
		&v.IdempotencyKey, &v.CreatedAt, &v.RedeemedAt, &v.RedeemedByAdminID,
	)
}
