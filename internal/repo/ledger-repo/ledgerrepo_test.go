package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughBegin(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_AppendTransaction(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	lockQuery := regexp.QuoteMeta(`SELECT points_balance FROM member_balances WHERE member_id = $1 FOR UPDATE`)
	createQuery := regexp.QuoteMeta(`INSERT INTO member_balances (member_id, points_balance) VALUES ($1, 0) ON CONFLICT (member_id) DO UPDATE SET points_balance = member_balances.points_balance RETURNING points_balance`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO ledger_transactions (member_id, kind, amount, description, voucher_id, actor_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`)
	updateQuery := regexp.QuoteMeta(`UPDATE member_balances SET points_balance = points_balance + $1, updated_at = now() WHERE member_id = $2`)

	now := time.Now()

	tests := []struct {
		name      string
		txn       *domain.LedgerTransaction
		mockSetup func()
		expectErr error
	}{
		{
			name: "Credit appended with balance update",
			txn: &domain.LedgerTransaction{
				MemberID:    1,
				Kind:        domain.KindAdjusted,
				Amount:      100,
				Description: "bonus",
				ActorID:     2,
			},
			mockSetup: func() {
				passthroughBegin(txManager)
				mock.ExpectQuery(lockQuery).WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"points_balance"}).AddRow(int64(50)))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(1), domain.KindAdjusted, int64(100), "bonus", (*int64)(nil), int64(2)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))
				mock.ExpectExec(updateQuery).WithArgs(int64(100), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Overdraft rejected",
			txn: &domain.LedgerTransaction{
				MemberID: 1,
				Kind:     domain.KindRedeemed,
				Amount:   -80,
				ActorID:  1,
			},
			mockSetup: func() {
				passthroughBegin(txManager)
				mock.ExpectQuery(lockQuery).WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"points_balance"}).AddRow(int64(50)))
			},
			expectErr: domain.ErrInsufficientBalance,
		},
		{
			name: "Balance row created on first touch",
			txn: &domain.LedgerTransaction{
				MemberID: 3,
				Kind:     domain.KindEarned,
				Amount:   10,
				ActorID:  3,
			},
			mockSetup: func() {
				passthroughBegin(txManager)
				mock.ExpectQuery(lockQuery).WithArgs(int64(3)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(createQuery).WithArgs(int64(3)).
					WillReturnRows(pgxmock.NewRows([]string{"points_balance"}).AddRow(int64(0)))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(3), domain.KindEarned, int64(10), "", (*int64)(nil), int64(3)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), now))
				mock.ExpectExec(updateQuery).WithArgs(int64(10), int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			// Two transactions race on a member's first touch: both miss
			// the FOR UPDATE select, the loser's upsert waits out the
			// winner and reads its committed balance instead of failing
			// on the primary key.
			name: "First-touch race loser continues on the winner's balance",
			txn: &domain.LedgerTransaction{
				MemberID: 3,
				Kind:     domain.KindAdjusted,
				Amount:   100,
				ActorID:  2,
			},
			mockSetup: func() {
				passthroughBegin(txManager)
				mock.ExpectQuery(lockQuery).WithArgs(int64(3)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(createQuery).WithArgs(int64(3)).
					WillReturnRows(pgxmock.NewRows([]string{"points_balance"}).AddRow(int64(100)))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(3), domain.KindAdjusted, int64(100), "", (*int64)(nil), int64(2)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), now))
				mock.ExpectExec(updateQuery).WithArgs(int64(100), int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Unknown member",
			txn: &domain.LedgerTransaction{
				MemberID: 99,
				Kind:     domain.KindEarned,
				Amount:   10,
				ActorID:  99,
			},
			mockSetup: func() {
				passthroughBegin(txManager)
				mock.ExpectQuery(lockQuery).WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(createQuery).WithArgs(int64(99)).
					WillReturnError(&pgconn.PgError{Code: pgFKViolationCode})
			},
			expectErr: domain.ErrMemberNotFound,
		},
		{
			name: "Database error on insert",
			txn: &domain.LedgerTransaction{
				MemberID: 1,
				Kind:     domain.KindEarned,
				Amount:   10,
				ActorID:  1,
			},
			mockSetup: func() {
				passthroughBegin(txManager)
				mock.ExpectQuery(lockQuery).WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"points_balance"}).AddRow(int64(50)))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(1), domain.KindEarned, int64(10), "", (*int64)(nil), int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.AppendTransaction(context.Background(), tt.txn)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.NotZero(t, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`SELECT COALESCE(b.points_balance, 0) FROM members m LEFT JOIN member_balances b ON b.member_id = m.id WHERE m.id = $1`)

	tests := []struct {
		name      string
		memberID  int64
		mockSetup func()
		expectErr error
		balance   int64
	}{
		{
			name:     "Existing member returns balance",
			memberID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"points_balance"}).AddRow(int64(120)))
			},
			balance: 120,
		},
		{
			name:     "Unknown member",
			memberID: 42,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.GetBalance(context.Background(), tt.memberID)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	memberID := int64(7)

	t.Run("Filtered listing with total", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM ledger_transactions WHERE member_id = $1 AND kind = $2`)).
			WithArgs(memberID, domain.KindRedeemed).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
		mock.ExpectQuery(`SELECT id, member_id, kind, amount, description, voucher_id, actor_id, created_at`).
			WithArgs(memberID, domain.KindRedeemed, 20, 0).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "member_id", "kind", "amount", "description", "voucher_id", "actor_id", "created_at",
			}).AddRow(int64(5), memberID, domain.KindRedeemed, int64(-50), "redeem", (*int64)(nil), memberID, now))

		txns, total, err := repo.List(context.Background(), domain.TransactionFilter{
			MemberID: &memberID,
			Kind:     domain.KindRedeemed,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, txns, 1)
		assert.Equal(t, int64(-50), txns[0].Amount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count error propagates", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM ledger_transactions`)).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.List(context.Background(), domain.TransactionFilter{})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
