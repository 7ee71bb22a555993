package bulkservice

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arundaya/poinku/internal/domain"
)

type MemberRepo interface {
	ListIDsByType(ctx context.Context, memberType string) ([]int64, error)
}

type Ledger interface {
	AppendTransaction(ctx context.Context, memberID int64, kind string, amount int64, description string, actorID int64, voucherID *int64) (*domain.LedgerTransaction, error)
}

type Failure struct {
	MemberID int64  `json:"memberId"`
	Reason   string `json:"reason"`
}

type Result struct {
	Affected int       `json:"affectedMembers"`
	Failures []Failure `json:"failures"`
}

type Service struct {
	memberRepo MemberRepo
	ledger     Ledger
	workers    int
}

func New(memberRepo MemberRepo, ledger Ledger, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		memberRepo: memberRepo,
		ledger:     ledger,
		workers:    workers,
	}
}

// BulkAdjust applies the same point delta to every member matching the
// filter. Each member's adjustment is its own atomic ledger append; a
// member failing (an overdrawing SUBTRACT, a corrupted row) is
// reported and never aborts the rest of the batch.
func (s *Service) BulkAdjust(ctx context.Context, memberType, direction string, points int64, reason string, actorID int64) (*Result, error) {
	if points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", domain.ErrValidation)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	amount := points
	switch direction {
	case domain.AdjustAdd:
	case domain.AdjustSubtract:
		amount = -points
	default:
		return nil, fmt.Errorf("%w: unknown adjustment type %q", domain.ErrValidation, direction)
	}

	memberIDs, err := s.memberRepo.ListIDsByType(ctx, memberType)
	if err != nil {
		zap.L().Error("failed to resolve bulk adjustment members", zap.Error(err))
		return nil, err
	}

	var mu sync.Mutex
	result := &Result{Failures: []Failure{}}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, memberID := range memberIDs {
		memberID := memberID
		g.Go(func() error {
			_, err := s.ledger.AppendTransaction(gctx, memberID, domain.KindAdjusted, amount, reason, actorID, nil)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, Failure{
					MemberID: memberID,
					Reason:   err.Error(),
				})
				// Member failures are collected, not propagated, so the
				// group context stays alive for the remaining members.
				return nil
			}
			result.Affected++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(result.Failures) > 0 {
		zap.L().Warn("bulk adjustment finished with failures",
			zap.Int("affected", result.Affected),
			zap.Int("failed", len(result.Failures)))
	}
	return result, nil
}
