package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction kinds. Amount sign convention: EARNED and ADJUSTED
// credits are positive; REDEEMED, EXPIRED and ADJUSTED debits are
// negative.
const (
	KindEarned   = "EARNED"
	KindRedeemed = "REDEEMED"
	KindAdjusted = "ADJUSTED"
	KindExpired  = "EXPIRED"
)

// Voucher lifecycle. REDEEMED is terminal.
const (
	VoucherActive   = "ACTIVE"
	VoucherRedeemed = "REDEEMED"
)

// Bulk adjustment directions.
const (
	AdjustAdd      = "ADD"
	AdjustSubtract = "SUBTRACT"
)

type Member struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	MemberType string    `db:"member_type"`
	CreatedAt  time.Time `db:"created_at"`
}

type Balance struct {
	MemberID      int64     `db:"member_id"`
	PointsBalance int64     `db:"points_balance"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type LedgerTransaction struct {
	ID          int64     `db:"id"`
	MemberID    int64     `db:"member_id"`
	Kind        string    `db:"kind"`
	Amount      int64     `db:"amount"`
	Description string    `db:"description"`
	VoucherID   *int64    `db:"voucher_id"`
	ActorID     int64     `db:"actor_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type Promo struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	PointsRequired int64     `db:"points_required"`
	MaxRedeem      *int64    `db:"max_redeem"`
	Quota          *int64    `db:"quota"`
	ValidFrom      time.Time `db:"valid_from"`
	ValidUntil     time.Time `db:"valid_until"`
}

type Voucher struct {
	ID                int64      `db:"id"`
	PublicID          uuid.UUID  `db:"public_id"`
	MemberID          int64      `db:"member_id"`
	PromoID           *int64     `db:"promo_id"`
	RewardName        string     `db:"reward_name"`
	FriendlyCode      string     `db:"friendly_code"`
	PointsUsed        int64      `db:"points_used"`
	Quantity          int        `db:"quantity"`
	Status            string     `db:"status"`
	IdempotencyKey    *string    `db:"idempotency_key"`
	CreatedAt         time.Time  `db:"created_at"`
	RedeemedAt        *time.Time `db:"redeemed_at"`
	RedeemedByAdminID *int64     `db:"redeemed_by_admin_id"`
}

type RedeemEvent struct {
	ID         int64     `db:"id"`
	VoucherID  int64     `db:"voucher_id"`
	MemberID   int64     `db:"member_id"`
	AdminID    int64     `db:"admin_id"`
	RedeemedAt time.Time `db:"redeemed_at"`
}
