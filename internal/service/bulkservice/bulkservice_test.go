package bulkservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arundaya/poinku/internal/domain"
	memberrepo "github.com/arundaya/poinku/internal/repo/member-repo"
)

func NewMock(t *testing.T, workers int) (*Service, *MockMemberRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberRepo := NewMockMemberRepo(ctrl)
	mockLedger := NewMockLedger(ctrl)
	service := New(mockMemberRepo, mockLedger, workers)

	return service, mockMemberRepo, mockLedger
}

func TestService_BulkAdjust(t *testing.T) {
	ctx := context.Background()

	t.Run("Credit applied to every member", func(t *testing.T) {
		service, mockMemberRepo, mockLedger := NewMock(t, 4)
		mockMemberRepo.EXPECT().
			ListIDsByType(ctx, "GOLD").
			Return([]int64{1, 2, 3}, nil)
		for _, id := range []int64{1, 2, 3} {
			mockLedger.EXPECT().
				AppendTransaction(gomock.Any(), id, domain.KindAdjusted, int64(100),
					"Anniversary bonus", int64(99), nil).
				Return(&domain.LedgerTransaction{MemberID: id, Amount: 100}, nil)
		}

		result, err := service.BulkAdjust(ctx, "GOLD", domain.AdjustAdd, 100, "Anniversary bonus", 99)
		assert.NoError(t, err)
		assert.Equal(t, 3, result.Affected)
		assert.Empty(t, result.Failures)
	})

	t.Run("One member failing does not abort the batch", func(t *testing.T) {
		service, mockMemberRepo, mockLedger := NewMock(t, 4)
		mockMemberRepo.EXPECT().
			ListIDsByType(ctx, memberrepo.FilterAll).
			Return([]int64{1, 2, 3}, nil)
		mockLedger.EXPECT().
			AppendTransaction(gomock.Any(), int64(1), domain.KindAdjusted, int64(-50),
				"Promo rollback", int64(99), nil).
			Return(&domain.LedgerTransaction{}, nil)
		mockLedger.EXPECT().
			AppendTransaction(gomock.Any(), int64(2), domain.KindAdjusted, int64(-50),
				"Promo rollback", int64(99), nil).
			Return(nil, domain.ErrInsufficientBalance)
		mockLedger.EXPECT().
			AppendTransaction(gomock.Any(), int64(3), domain.KindAdjusted, int64(-50),
				"Promo rollback", int64(99), nil).
			Return(&domain.LedgerTransaction{}, nil)

		result, err := service.BulkAdjust(ctx, memberrepo.FilterAll, domain.AdjustSubtract, 50, "Promo rollback", 99)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Affected)
		assert.Len(t, result.Failures, 1)
		assert.Equal(t, int64(2), result.Failures[0].MemberID)
		assert.Equal(t, domain.ErrInsufficientBalance.Error(), result.Failures[0].Reason)
	})

	t.Run("Empty population", func(t *testing.T) {
		service, mockMemberRepo, _ := NewMock(t, 4)
		mockMemberRepo.EXPECT().
			ListIDsByType(ctx, "SILVER").
			Return(nil, nil)

		result, err := service.BulkAdjust(ctx, "SILVER", domain.AdjustAdd, 10, "Welcome", 99)
		assert.NoError(t, err)
		assert.Zero(t, result.Affected)
		assert.Empty(t, result.Failures)
	})

	t.Run("Zero points rejected", func(t *testing.T) {
		service, _, _ := NewMock(t, 4)

		result, err := service.BulkAdjust(ctx, "GOLD", domain.AdjustAdd, 0, "Bonus", 99)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, result)
	})

	t.Run("Missing reason rejected", func(t *testing.T) {
		service, _, _ := NewMock(t, 4)

		result, err := service.BulkAdjust(ctx, "GOLD", domain.AdjustAdd, 10, "", 99)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, result)
	})

	t.Run("Unknown adjustment type rejected", func(t *testing.T) {
		service, _, _ := NewMock(t, 4)

		result, err := service.BulkAdjust(ctx, "GOLD", "MULTIPLY", 10, "Bonus", 99)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, result)
	})

	t.Run("Single worker processes the whole batch", func(t *testing.T) {
		service, mockMemberRepo, mockLedger := NewMock(t, 1)
		mockMemberRepo.EXPECT().
			ListIDsByType(ctx, memberrepo.FilterAll).
			Return([]int64{1, 2}, nil)
		mockLedger.EXPECT().
			AppendTransaction(gomock.Any(), gomock.Any(), domain.KindAdjusted, int64(5),
				"Drip", int64(99), nil).
			Return(&domain.LedgerTransaction{}, nil).
			Times(2)

		result, err := service.BulkAdjust(ctx, memberrepo.FilterAll, domain.AdjustAdd, 5, "Drip", 99)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Affected)
	})
}
