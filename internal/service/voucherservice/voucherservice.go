package voucherservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/pkg/qrtoken"
	"github.com/arundaya/poinku/pkg/vouchercode"
)

type VoucherRepo interface {
	FindByFriendlyCode(ctx context.Context, code string) (*domain.Voucher, error)
	FindByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Voucher, error)
	Redeem(ctx context.Context, voucherID, adminID int64) (*domain.Voucher, error)
	ListRedeemEvents(ctx context.Context, memberID int64) ([]domain.RedeemEvent, error)
}

type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

type Service struct {
	voucherRepo VoucherRepo
	tokens      TokenParser
}

func New(voucherRepo VoucherRepo, tokens TokenParser) *Service {
	return &Service{
		voucherRepo: voucherRepo,
		tokens:      tokens,
	}
}

// Lookup resolves a scanned QR payload or a typed friendly code.
// Tampered QR tokens are rejected by signature before any storage
// access; friendly codes failing their check digit can't exist and
// short-circuit to not found.
func (s *Service) Lookup(ctx context.Context, codeOrPayload string) (*domain.Voucher, error) {
	if qrtoken.IsToken(codeOrPayload) {
		publicID, err := s.tokens.Parse(codeOrPayload)
		if err != nil {
			return nil, err
		}
		return s.voucherRepo.FindByPublicID(ctx, publicID)
	}

	if !vouchercode.IsValid(codeOrPayload) {
		return nil, domain.ErrVoucherNotFound
	}
	return s.voucherRepo.FindByFriendlyCode(ctx, codeOrPayload)
}

// Redeem marks the voucher used by the given admin, exactly once. Two
// concurrent calls on the same voucher resolve to one success and one
// ErrAlreadyRedeemed; the conditional update in the repository is the
// authoritative transition.
func (s *Service) Redeem(ctx context.Context, codeOrPayload string, adminID int64) (*domain.Voucher, error) {
	voucher, err := s.Lookup(ctx, codeOrPayload)
	if err != nil {
		return nil, err
	}

	redeemed, err := s.voucherRepo.Redeem(ctx, voucher.ID, adminID)
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyRedeemed) && !errors.Is(err, domain.ErrVoucherNotFound) {
			zap.L().Error("failed to redeem voucher",
				zap.Int64("voucherID", voucher.ID), zap.Error(err))
		}
		return nil, err
	}
	return redeemed, nil
}

func (s *Service) History(ctx context.Context, memberID int64) ([]domain.RedeemEvent, error) {
	events, err := s.voucherRepo.ListRedeemEvents(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to list redeem events", zap.Error(err))
		return nil, err
	}
	return events, nil
}
