package redemptionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/pg"
	voucherrepo "github.com/arundaya/poinku/internal/repo/voucher-repo"
	"github.com/arundaya/poinku/pkg/vouchercode"
)

// maxCodeAttempts bounds friendly-code collision retries. Each retry
// reruns the whole redemption unit, since a unique violation aborts
// the enclosing database transaction.
const maxCodeAttempts = 5

// Caps on member-supplied redemption requests. Far above any real
// catalog entry, and small enough that points*quantity can never wrap
// int64.
const (
	maxRedeemQuantity = 1_000
	maxRedeemPoints   = 10_000_000
)

type Ledger interface {
	AppendTransaction(ctx context.Context, memberID int64, kind string, amount int64, description string, actorID int64, voucherID *int64) (*domain.LedgerTransaction, error)
	GetBalance(ctx context.Context, memberID int64) (int64, error)
}

type PromoRepo interface {
	GetRedeemable(ctx context.Context, promoID int64) (*domain.Promo, error)
	ConsumeQuota(ctx context.Context, promoID int64) error
	CountMemberVouchers(ctx context.Context, promoID, memberID int64) (int64, error)
}

type VoucherRepo interface {
	Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error)
	FindByIdempotencyKey(ctx context.Context, memberID int64, key string) (*domain.Voucher, error)
	ListByMember(ctx context.Context, memberID int64) ([]domain.Voucher, error)
}

type RedeemRequest struct {
	PromoID        *int64
	RewardName     string
	PointsRequired int64
	Quantity       int
	IdempotencyKey *string
}

type MemberSummary struct {
	PointsBalance int64
	Redemptions   []domain.Voucher
}

type Service struct {
	ledger      Ledger
	promoRepo   PromoRepo
	voucherRepo VoucherRepo
	txManager   pg.TXManager
}

func New(ledger Ledger, promoRepo PromoRepo, voucherRepo VoucherRepo, txManager pg.TXManager) *Service {
	return &Service{
		ledger:      ledger,
		promoRepo:   promoRepo,
		voucherRepo: voucherRepo,
		txManager:   txManager,
	}
}

// Redeem converts points into a single-use voucher. Quota consumption,
// the ledger debit and the voucher insert run as one database
// transaction, so a failure at any step leaves balance, quota and
// voucher set untouched.
func (s *Service) Redeem(ctx context.Context, memberID int64, req RedeemRequest) (*domain.Voucher, error) {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.Quantity > maxRedeemQuantity {
		return nil, fmt.Errorf("%w: quantity must not exceed %d", domain.ErrValidation, maxRedeemQuantity)
	}
	if req.PromoID == nil && (req.RewardName == "" || req.PointsRequired <= 0) {
		return nil, fmt.Errorf("%w: either promoId or rewardName with positive points is required", domain.ErrValidation)
	}
	if req.PointsRequired > maxRedeemPoints {
		return nil, fmt.Errorf("%w: points must not exceed %d", domain.ErrValidation, maxRedeemPoints)
	}

	var voucher *domain.Voucher
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		voucher, err = s.redeemOnce(ctx, memberID, req)
		if !errors.Is(err, voucherrepo.ErrDuplicateCode) {
			break
		}
	}
	if errors.Is(err, voucherrepo.ErrDuplicateIdempotencyKey) {
		// Lost the race to a concurrent retry of the same request;
		// that request's voucher is the answer.
		return s.voucherRepo.FindByIdempotencyKey(ctx, memberID, *req.IdempotencyKey)
	}
	if errors.Is(err, domain.ErrInsufficientBalance) {
		return nil, domain.ErrInsufficientPoints
	}
	if err != nil {
		return nil, err
	}
	return voucher, nil
}

func (s *Service) redeemOnce(ctx context.Context, memberID int64, req RedeemRequest) (*domain.Voucher, error) {
	var voucher *domain.Voucher
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if req.IdempotencyKey != nil {
			existing, err := s.voucherRepo.FindByIdempotencyKey(ctx, memberID, *req.IdempotencyKey)
			if err == nil {
				voucher = existing
				return nil
			}
			if !errors.Is(err, domain.ErrVoucherNotFound) {
				return err
			}
		}

		rewardName := req.RewardName
		pointsRequired := req.PointsRequired
		var promo *domain.Promo
		if req.PromoID != nil {
			var err error
			promo, err = s.promoRepo.GetRedeemable(ctx, *req.PromoID)
			if err != nil {
				return err
			}
			now := time.Now()
			if now.Before(promo.ValidFrom) || now.After(promo.ValidUntil) {
				return domain.ErrPromoUnavailable
			}
			if promo.MaxRedeem != nil {
				count, err := s.promoRepo.CountMemberVouchers(ctx, promo.ID, memberID)
				if err != nil {
					return err
				}
				if count >= *promo.MaxRedeem {
					return domain.ErrPromoUnavailable
				}
			}
			rewardName = promo.Title
			pointsRequired = promo.PointsRequired
		}

		required := pointsRequired * int64(req.Quantity)
		balance, err := s.ledger.GetBalance(ctx, memberID)
		if err != nil {
			return err
		}
		if balance < required {
			return domain.ErrInsufficientPoints
		}

		if promo != nil {
			if err := s.promoRepo.ConsumeQuota(ctx, promo.ID); err != nil {
				return err
			}
		}

		code, err := vouchercode.Generate()
		if err != nil {
			return err
		}
		created, err := s.voucherRepo.Create(ctx, &domain.Voucher{
			MemberID:       memberID,
			PromoID:        req.PromoID,
			RewardName:     rewardName,
			FriendlyCode:   code,
			PointsUsed:     required,
			Quantity:       req.Quantity,
			IdempotencyKey: req.IdempotencyKey,
		})
		if err != nil {
			return err
		}

		_, err = s.ledger.AppendTransaction(ctx, memberID, domain.KindRedeemed, -required,
			fmt.Sprintf("Redeemed %q x%d", rewardName, req.Quantity), memberID, &created.ID)
		if err != nil {
			return err
		}

		voucher = created
		return nil
	})
	if err != nil {
		if !isCallerError(err) {
			zap.L().Error("redemption failed", zap.Int64("memberID", memberID), zap.Error(err))
		}
		return nil, err
	}
	return voucher, nil
}

// MemberSummary backs the member-facing points overview.
func (s *Service) MemberSummary(ctx context.Context, memberID int64) (*MemberSummary, error) {
	balance, err := s.ledger.GetBalance(ctx, memberID)
	if err != nil {
		return nil, err
	}
	vouchers, err := s.voucherRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &MemberSummary{
		PointsBalance: balance,
		Redemptions:   vouchers,
	}, nil
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrInsufficientPoints) ||
		errors.Is(err, domain.ErrInsufficientBalance) ||
		errors.Is(err, domain.ErrPromoUnavailable) ||
		errors.Is(err, domain.ErrPromoNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, voucherrepo.ErrDuplicateCode) ||
		errors.Is(err, voucherrepo.ErrDuplicateIdempotencyKey)
}
