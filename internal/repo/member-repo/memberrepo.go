package memberrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/pg"
)

// FilterAll selects every member regardless of member_type.
const FilterAll = "ALL"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, memberID int64) (*domain.Member, error) {
	query := `
		SELECT id, name, member_type, created_at
		FROM members
		WHERE id = $1
	`
	var member domain.Member
	err := r.db.QueryRow(ctx, query, memberID).Scan(
		&member.ID, &member.Name, &member.MemberType, &member.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

// ListIDsByType resolves the target population for a bulk adjustment.
// The result is a snapshot; members created afterwards are not in it.
func (r *Repository) ListIDsByType(ctx context.Context, memberType string) ([]int64, error) {
	query := `SELECT id FROM members ORDER BY id`
	args := []any{}
	if memberType != FilterAll {
		query = `SELECT id FROM members WHERE member_type = $1 ORDER BY id`
		args = append(args, memberType)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan member id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
