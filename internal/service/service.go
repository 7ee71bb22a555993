package service

import (
	"github.com/arundaya/poinku/internal/handlers/admin"
	"github.com/arundaya/poinku/internal/handlers/points"

	"github.com/arundaya/poinku/internal/repo"
	"github.com/arundaya/poinku/internal/service/bulkservice"
	"github.com/arundaya/poinku/internal/service/ledgerservice"
	"github.com/arundaya/poinku/internal/service/redemptionservice"
	"github.com/arundaya/poinku/internal/service/voucherservice"
	"github.com/arundaya/poinku/pkg/qrtoken"
)

type Services struct {
	RedemptionService points.Service
	VoucherService    admin.VoucherService
	BulkService       admin.BulkService
	LedgerService     admin.LedgerService
}

func New(repo *repo.Repositories, signer *qrtoken.Signer, bulkWorkers int) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	redemptionService := redemptionservice.New(ledgerService, repo.PromoRepo, repo.VoucherRepo, repo.TxManager)
	voucherService := voucherservice.New(repo.VoucherRepo, signer)
	bulkService := bulkservice.New(repo.MemberRepo, ledgerService, bulkWorkers)

	return &Services{
		RedemptionService: redemptionService,
		VoucherService:    voucherService,
		BulkService:       bulkService,
		LedgerService:     ledgerService,
	}
}
