package ledgerservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
)

type Repo interface {
	AppendTransaction(ctx context.Context, txn *domain.LedgerTransaction) (*domain.LedgerTransaction, error)
	GetBalance(ctx context.Context, memberID int64) (int64, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.LedgerTransaction, int64, error)
}

type Service struct {
	ledgerRepo Repo
}

func New(ledgerRepo Repo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

// AppendTransaction records a balance-affecting event. The amount sign
// must match the kind: credits positive, debits negative; ADJUSTED
// goes either way. The repository applies the append and the balance
// move atomically and rejects overdrafts.
func (s *Service) AppendTransaction(ctx context.Context, memberID int64, kind string, amount int64, description string, actorID int64, voucherID *int64) (*domain.LedgerTransaction, error) {
	if err := validateKindAmount(kind, amount); err != nil {
		return nil, err
	}

	txn := &domain.LedgerTransaction{
		MemberID:    memberID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		VoucherID:   voucherID,
		ActorID:     actorID,
	}
	txn, err := s.ledgerRepo.AppendTransaction(ctx, txn)
	if err != nil {
		zap.L().Error("failed to append ledger transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (s *Service) GetBalance(ctx context.Context, memberID int64) (int64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.LedgerTransaction, int64, error) {
	txns, total, err := s.ledgerRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list ledger transactions", zap.Error(err))
		return nil, 0, err
	}
	return txns, total, nil
}

// AddPoints is the single-member administrative credit.
func (s *Service) AddPoints(ctx context.Context, memberID, points int64, reason string, actorID int64) (*domain.LedgerTransaction, error) {
	if points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", domain.ErrValidation)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}
	return s.AppendTransaction(ctx, memberID, domain.KindAdjusted, points, reason, actorID, nil)
}

func validateKindAmount(kind string, amount int64) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must not be zero", domain.ErrValidation)
	}
	switch kind {
	case domain.KindEarned:
		if amount < 0 {
			return fmt.Errorf("%w: EARNED amount must be positive", domain.ErrValidation)
		}
	case domain.KindRedeemed, domain.KindExpired:
		if amount > 0 {
			return fmt.Errorf("%w: %s amount must be negative", domain.ErrValidation, kind)
		}
	case domain.KindAdjusted:
	default:
		return fmt.Errorf("%w: unknown transaction kind %q", domain.ErrValidation, kind)
	}
	return nil
}
