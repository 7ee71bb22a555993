package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/dto"
	redemptionservice "github.com/arundaya/poinku/internal/service/redemptionservice"
	"github.com/arundaya/poinku/pkg/auth"
	"github.com/arundaya/poinku/pkg/qrtoken"
	"github.com/arundaya/poinku/pkg/utils"
)

type Service interface {
	Redeem(ctx context.Context, memberID int64, req redemptionservice.RedeemRequest) (*domain.Voucher, error)
	MemberSummary(ctx context.Context, memberID int64) (*redemptionservice.MemberSummary, error)
}

type PointsHandler struct {
	redemptionService Service
	signer            *qrtoken.Signer
}

func New(redemptionService Service, signer *qrtoken.Signer) *PointsHandler {
	return &PointsHandler{
		redemptionService: redemptionService,
		signer:            signer,
	}
}

// Redeem godoc
//
//	@Summary		Redeem points for a voucher
//	@Description	Exchange loyalty points for a single-use voucher, either against a catalog promo or as a direct reward.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redemption request payload"
//	@Success		201		{object}	dto.VoucherDTO			"Created voucher"
//	@Failure		400		{object}	utils.Response			"Malformed request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient points"
//	@Failure		404		{object}	utils.Response			"Unknown promo"
//	@Failure		409		{object}	utils.Response			"Promo unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/points/redeem [post]
func (h *PointsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	voucher, err := h.redemptionService.Redeem(r.Context(), memberID, redemptionservice.RedeemRequest{
		PromoID:        req.PromoID,
		RewardName:     req.RewardName,
		PointsRequired: req.Points,
		Quantity:       req.Quantity,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Poin Anda tidak mencukupi")
		case errors.Is(err, domain.ErrPromoNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Promo not found")
		case errors.Is(err, domain.ErrPromoUnavailable):
			utils.RespondWithError(w, http.StatusConflict, "Promo is not available")
		case errors.Is(err, domain.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.NewVoucherDTO(*voucher, h.signer.Issue(voucher.PublicID)))
}

// MyPoints godoc
//
//	@Summary		Get current member points
//	@Description	Current points balance and redemption history for the authenticated member.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MyPointsResponseDTO	"Balance and redemptions"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/points/my [get]
func (h *PointsHandler) MyPoints(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int64)

	summary, err := h.redemptionService.MemberSummary(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Member not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	redemptions := make([]dto.VoucherDTO, len(summary.Redemptions))
	for i, v := range summary.Redemptions {
		qrPayload := ""
		if v.Status == domain.VoucherActive {
			qrPayload = h.signer.Issue(v.PublicID)
		}
		redemptions[i] = dto.NewVoucherDTO(v, qrPayload)
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MyPointsResponseDTO{
		PointsBalance: summary.PointsBalance,
		Redemptions:   redemptions,
	})
}
