package dto

import (
	"time"

	"github.com/arundaya/poinku/internal/domain"
)

type RedeemByCodeRequestDTO struct {
	VoucherCode string `json:"voucherCode" example:"4539148803"`
}

type RedeemByCodeResponseDTO struct {
	Voucher    VoucherDTO `json:"voucher"`
	MemberID   int64      `json:"memberId" example:"7"`
	AdminID    int64      `json:"adminId" example:"2"`
	RedeemedAt time.Time  `json:"redeemedAt"`
}

type BulkAdjustRequestDTO struct {
	MemberType string `json:"memberType" example:"ALL"`
	Type       string `json:"type" example:"ADD"`
	Points     int64  `json:"points" example:"100"`
	Reason     string `json:"reason" example:"Anniversary bonus"`
}

type BulkFailureDTO struct {
	MemberID int64  `json:"memberId" example:"3"`
	Reason   string `json:"reason" example:"insufficient balance"`
}

type BulkAdjustResponseDTO struct {
	AffectedMembers int              `json:"affectedMembers" example:"42"`
	Failures        []BulkFailureDTO `json:"failures"`
}

type AddPointsRequestDTO struct {
	Points int64  `json:"points" example:"100"`
	Reason string `json:"reason" example:"Complaint compensation"`
}

type TransactionDTO struct {
	ID          int64     `json:"id" example:"101"`
	MemberID    int64     `json:"memberId" example:"7"`
	Kind        string    `json:"kind" example:"REDEEMED"`
	Amount      int64     `json:"amount" example:"-50"`
	Description string    `json:"description" example:"Redeemed \"Free Entrance Ticket\" x1"`
	VoucherID   *int64    `json:"voucherId,omitempty" example:"11"`
	ActorID     int64     `json:"actorId" example:"7"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListTransactionsResponseDTO struct {
	Transactions []TransactionDTO `json:"transactions"`
	Total        int64            `json:"total" example:"240"`
	Page         int              `json:"page" example:"1"`
	Limit        int              `json:"limit" example:"20"`
}

func NewTransactionDTO(txn domain.LedgerTransaction) TransactionDTO {
	return TransactionDTO{
		ID:          txn.ID,
		MemberID:    txn.MemberID,
		Kind:        txn.Kind,
		Amount:      txn.Amount,
		Description: txn.Description,
		VoucherID:   txn.VoucherID,
		ActorID:     txn.ActorID,
		CreatedAt:   txn.CreatedAt,
	}
}
