package dto

import (
	"time"

	"github.com/arundaya/poinku/internal/domain"
)

type RedeemRequestDTO struct {
	PromoID        *int64  `json:"promoId,omitempty" example:"12"`
	RewardName     string  `json:"rewardName,omitempty" example:"Free Entrance Ticket"`
	Points         int64   `json:"points,omitempty" example:"50"`
	Quantity       int     `json:"quantity,omitempty" example:"1"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty" example:"4f8a1f6e-1b2c-4c3d"`
}

type VoucherDTO struct {
	ID           string     `json:"id" example:"0b4ee0b0-65a1-4b19-8c67-2f3b5a1f6e2d"`
	RewardName   string     `json:"rewardName" example:"Free Entrance Ticket"`
	FriendlyCode string     `json:"friendlyCode" example:"4539148803"`
	QRPayload    string     `json:"qrPayload,omitempty"`
	PointsUsed   int64      `json:"pointsUsed" example:"50"`
	Quantity     int        `json:"quantity" example:"1"`
	Status       string     `json:"status" example:"ACTIVE"`
	CreatedAt    time.Time  `json:"createdAt"`
	RedeemedAt   *time.Time `json:"redeemedAt,omitempty"`
}

type MyPointsResponseDTO struct {
	PointsBalance int64        `json:"pointsBalance" example:"150"`
	Redemptions   []VoucherDTO `json:"redemptions"`
}

func NewVoucherDTO(v domain.Voucher, qrPayload string) VoucherDTO {
	return VoucherDTO{
		ID:           v.PublicID.String(),
		RewardName:   v.RewardName,
		FriendlyCode: v.FriendlyCode,
		QRPayload:    qrPayload,
		PointsUsed:   v.PointsUsed,
		Quantity:     v.Quantity,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		RedeemedAt:   v.RedeemedAt,
	}
}
