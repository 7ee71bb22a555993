package ledgerrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/pg"
)

const pgFKViolationCode = "23503"

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

// AppendTransaction writes a ledger row and moves the cached balance in
// one database transaction. The balance row is locked FOR UPDATE for
// the whole check-then-write, so concurrent appends for one member
// serialize and the balance can never be driven negative.
func (r *Repository) AppendTransaction(ctx context.Context, txn *domain.LedgerTransaction) (*domain.LedgerTransaction, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := r.lockBalance(ctx, txn.MemberID)
		if err != nil {
			return err
		}
		if balance+txn.Amount < 0 {
			return domain.ErrInsufficientBalance
		}

		insertQuery := `
			INSERT INTO ledger_transactions (member_id, kind, amount, description, voucher_id, actor_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`
		err = r.db.QueryRow(ctx, insertQuery,
			txn.MemberID, txn.Kind, txn.Amount, txn.Description, txn.VoucherID, txn.ActorID,
		).Scan(&txn.ID, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't insert ledger transaction", zap.Error(err))
			return err
		}

		updateQuery := `
			UPDATE member_balances
			SET points_balance = points_balance + $1, updated_at = now()
			WHERE member_id = $2
		`
		if _, err := r.db.Exec(ctx, updateQuery, txn.Amount, txn.MemberID); err != nil {
			zap.L().Error("can't update member balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// lockBalance returns the member's current balance with its row locked
// for the rest of the transaction, creating the row on first touch. The
// create is an upsert: two transactions racing on a member's first
// touch both miss the FOR UPDATE select, and the no-op conflict update
// lets the loser take the lock and read the winner's balance instead of
// failing on the primary key.
func (r *Repository) lockBalance(ctx context.Context, memberID int64) (int64, error) {
	var balance int64
	lockQuery := `
		SELECT points_balance
		FROM member_balances
		WHERE member_id = $1
		FOR UPDATE
	`
	err := r.db.QueryRow(ctx, lockQuery, memberID).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't lock member balance", zap.Error(err))
		return 0, err
	}

	createQuery := `
		INSERT INTO member_balances (member_id, points_balance)
		VALUES ($1, 0)
		ON CONFLICT (member_id) DO UPDATE
		SET points_balance = member_balances.points_balance
		RETURNING points_balance
	`
	err = r.db.QueryRow(ctx, createQuery, memberID).Scan(&balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolationCode {
			return 0, domain.ErrMemberNotFound
		}
		zap.L().Error("can't create member balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) GetBalance(ctx context.Context, memberID int64) (int64, error) {
	query := `
		SELECT COALESCE(b.points_balance, 0)
		FROM members m
		LEFT JOIN member_balances b ON b.member_id = m.id
		WHERE m.id = $1
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, memberID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrMemberNotFound
	}
	if err != nil {
		zap.L().Error("can't get member balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// List returns ledger transactions newest first plus the total count
// matching the filter.
func (r *Repository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.LedgerTransaction, int64, error) {
	where, args := buildWhere(filter)

	countQuery := `SELECT COUNT(*) FROM ledger_transactions` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("can't count ledger transactions", zap.Error(err))
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	listQuery := `
		SELECT id, member_id, kind, amount, description, voucher_id, actor_id, created_at
		FROM ledger_transactions` + where + `
		ORDER BY created_at DESC, id DESC` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		zap.L().Error("can't list ledger transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var txns []domain.LedgerTransaction
	for rows.Next() {
		var txn domain.LedgerTransaction
		err := rows.Scan(&txn.ID, &txn.MemberID, &txn.Kind, &txn.Amount,
			&txn.Description, &txn.VoucherID, &txn.ActorID, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger transaction row", zap.Error(err))
			return nil, 0, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func buildWhere(filter domain.TransactionFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.MemberID != nil {
		add("member_id = $%d", *filter.MemberID)
	}
	if filter.Kind != "" {
		add("kind = $%d", filter.Kind)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}
	if filter.Search != "" {
		add("description ILIKE $%d", "%"+filter.Search+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
