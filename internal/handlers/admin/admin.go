package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/dto"
	"github.com/arundaya/poinku/internal/service/bulkservice"
	"github.com/arundaya/poinku/pkg/auth"
	"github.com/arundaya/poinku/pkg/utils"
)

type VoucherService interface {
	Redeem(ctx context.Context, codeOrPayload string, adminID int64) (*domain.Voucher, error)
}

type BulkService interface {
	BulkAdjust(ctx context.Context, memberType, direction string, points int64, reason string, actorID int64) (*bulkservice.Result, error)
}

type LedgerService interface {
	AddPoints(ctx context.Context, memberID, points int64, reason string, actorID int64) (*domain.LedgerTransaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.LedgerTransaction, int64, error)
}

type AdminHandler struct {
	voucherService VoucherService
	bulkService    BulkService
	ledgerService  LedgerService
}

func New(voucherService VoucherService, bulkService BulkService, ledgerService LedgerService) *AdminHandler {
	return &AdminHandler{
		voucherService: voucherService,
		bulkService:    bulkService,
		ledgerService:  ledgerService,
	}
}

// RedeemByCode godoc
//
//	@Summary		Redeem a voucher by code or QR payload
//	@Description	Mark a voucher as used, exactly once, on behalf of the scanning admin; returns the data needed for receipt printing.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemByCodeRequestDTO		true	"Voucher code or QR payload"
//	@Success		200		{object}	dto.RedeemByCodeResponseDTO		"Redeemed voucher"
//	@Failure		400		{object}	utils.Response					"Malformed request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Voucher not found"
//	@Failure		409		{object}	utils.Response					"Voucher already redeemed"
//	@Failure		422		{object}	utils.Response					"Invalid QR token"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/redeem-by-code [post]
func (h *AdminHandler) RedeemByCode(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.RedeemByCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VoucherCode == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	voucher, err := h.voucherService.Redeem(r.Context(), req.VoucherCode, adminID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidToken):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid voucher token")
		case errors.Is(err, domain.ErrVoucherNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Voucher not found")
		case errors.Is(err, domain.ErrAlreadyRedeemed):
			utils.RespondWithError(w, http.StatusConflict, "Voucher sudah digunakan")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemByCodeResponseDTO{
		Voucher:    dto.NewVoucherDTO(*voucher, ""),
		MemberID:   voucher.MemberID,
		AdminID:    adminID,
		RedeemedAt: *voucher.RedeemedAt,
	})
}

// BulkAdjust godoc
//
//	@Summary		Bulk point adjustment
//	@Description	Add or subtract the same number of points for every member matching the filter; per-member failures are reported, not fatal.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkAdjustRequestDTO	true	"Bulk adjustment payload"
//	@Success		200		{object}	dto.BulkAdjustResponseDTO	"Batch outcome"
//	@Failure		400		{object}	utils.Response				"Malformed request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/points/bulk-adjust [post]
func (h *AdminHandler) BulkAdjust(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.BulkAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MemberType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "memberType is required")
		return
	}

	result, err := h.bulkService.BulkAdjust(r.Context(), req.MemberType, req.Type, req.Points, req.Reason, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	failures := make([]dto.BulkFailureDTO, len(result.Failures))
	for i, f := range result.Failures {
		failures[i] = dto.BulkFailureDTO{MemberID: f.MemberID, Reason: f.Reason}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BulkAdjustResponseDTO{
		AffectedMembers: result.Affected,
		Failures:        failures,
	})
}

// AddPoints godoc
//
//	@Summary		Credit points to one member
//	@Description	Administrative single-member point credit with a mandatory reason.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Member ID"
//	@Param			request	body		dto.AddPointsRequestDTO	true	"Credit payload"
//	@Success		200		{object}	dto.TransactionDTO		"Recorded transaction"
//	@Failure		400		{object}	utils.Response			"Malformed request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Member not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/members/{id}/points/add [post]
func (h *AdminHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int64)

	memberID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req dto.AddPointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.ledgerService.AddPoints(r.Context(), memberID, req.Points, req.Reason, adminID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(*txn))
}

// ListTransactions godoc
//
//	@Summary		Ledger transactions
//	@Description	Paginated, filterable view of the points ledger for audit display.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberId	query		int		false	"Member filter"
//	@Param			kind		query		string	false	"Kind filter (EARNED, REDEEMED, ADJUSTED, EXPIRED)"
//	@Param			from		query		string	false	"Start of date range (RFC 3339)"
//	@Param			to			query		string	false	"End of date range (RFC 3339)"
//	@Param			search		query		string	false	"Description substring"
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size"
//	@Success		200			{object}	dto.ListTransactionsResponseDTO	"Transactions page"
//	@Failure		400			{object}	utils.Response					"Malformed query"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/points/transactions [get]
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, total, err := h.ledgerService.ListTransactions(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ListTransactionsResponseDTO{
		Transactions: make([]dto.TransactionDTO, len(txns)),
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}
	for i, txn := range txns {
		response.Transactions[i] = dto.NewTransactionDTO(txn)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseTransactionFilter(r *http.Request) (domain.TransactionFilter, error) {
	q := r.URL.Query()
	filter := domain.TransactionFilter{
		Kind:   q.Get("kind"),
		Search: q.Get("search"),
		Page:   1,
		Limit:  domain.DefaultPageLimit,
	}

	if raw := q.Get("memberId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid memberId")
		}
		filter.MemberID = &id
	}
	if raw := q.Get("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid from timestamp")
		}
		filter.From = &ts
	}
	if raw := q.Get("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid to timestamp")
		}
		filter.To = &ts
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, errors.New("invalid page")
		}
		filter.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return filter, errors.New("invalid limit")
		}
		// Clamped here so the limit echoed in the response is the one
		// the repository applies.
		if limit > domain.MaxPageLimit {
			limit = domain.MaxPageLimit
		}
		filter.Limit = limit
	}
	return filter, nil
}
