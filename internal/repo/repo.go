package repo

import (
	"github.com/arundaya/poinku/internal/pg"
	ledgerrepo "github.com/arundaya/poinku/internal/repo/ledger-repo"
	memberrepo "github.com/arundaya/poinku/internal/repo/member-repo"
	promorepo "github.com/arundaya/poinku/internal/repo/promo-repo"
	voucherrepo "github.com/arundaya/poinku/internal/repo/voucher-repo"
	"github.com/arundaya/poinku/internal/service/bulkservice"
	"github.com/arundaya/poinku/internal/service/ledgerservice"
	"github.com/arundaya/poinku/internal/service/redemptionservice"
)

type Repositories struct {
	LedgerRepo ledgerservice.Repo
	PromoRepo  redemptionservice.PromoRepo
	// VoucherRepo serves both the redemption engine and the voucher
	// registry, so it stays concrete here.
	VoucherRepo *voucherrepo.Repository
	MemberRepo  bulkservice.MemberRepo
	TxManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	ledgerRepo := ledgerrepo.New(conn, txManager)
	promoRepo := promorepo.New(conn)
	voucherRepo := voucherrepo.New(conn, txManager)
	memberRepo := memberrepo.New(conn)

	return &Repositories{
		LedgerRepo:  ledgerRepo,
		PromoRepo:   promoRepo,
		VoucherRepo: voucherRepo,
		MemberRepo:  memberRepo,
		TxManager:   txManager,
	}
}
