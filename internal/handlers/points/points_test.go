package points

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arundaya/poinku/internal/domain"
	"github.com/arundaya/poinku/internal/dto"
	redemptionservice "github.com/arundaya/poinku/internal/service/redemptionservice"
	"github.com/arundaya/poinku/pkg/auth"
	"github.com/arundaya/poinku/pkg/qrtoken"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockService(ctrl)
	handler := New(mockService, qrtoken.NewSigner("test-secret"))

	return handler, mockService
}

func asMember(r *http.Request, memberID int64) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, memberID)
	return r.WithContext(ctx)
}

func TestPointsHandler_Redeem(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "Voucher created",
			body: `{"rewardName":"Free Ticket","points":50}`,
			mockSetup: func() {
				mockService.EXPECT().
					Redeem(gomock.Any(), int64(1), redemptionservice.RedeemRequest{
						RewardName:     "Free Ticket",
						PointsRequired: 50,
					}).
					Return(&domain.Voucher{
						PublicID:     uuid.New(),
						RewardName:   "Free Ticket",
						FriendlyCode: "1234567897",
						PointsUsed:   50,
						Quantity:     1,
						Status:       domain.VoucherActive,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         `{invalid}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation failure",
			body: `{}`,
			mockSetup: func() {
				mockService.EXPECT().
					Redeem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient points",
			body: `{"rewardName":"Free Ticket","points":50}`,
			mockSetup: func() {
				mockService.EXPECT().
					Redeem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, domain.ErrInsufficientPoints)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Unknown promo",
			body: `{"promoId":9}`,
			mockSetup: func() {
				mockService.EXPECT().
					Redeem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, domain.ErrPromoNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Promo unavailable",
			body: `{"promoId":9}`,
			mockSetup: func() {
				mockService.EXPECT().
					Redeem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, domain.ErrPromoUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"rewardName":"Free Ticket","points":50}`,
			mockSetup: func() {
				mockService.EXPECT().
					Redeem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodPost, "/api/points/redeem", bytes.NewBufferString(tt.body))
			req = asMember(req, 1)
			rr := httptest.NewRecorder()

			handler.Redeem(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp dto.VoucherDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "1234567897", resp.FriendlyCode)
				assert.Equal(t, domain.VoucherActive, resp.Status)
				assert.True(t, qrtoken.IsToken(resp.QRPayload))
			}
		})
	}
}

func TestPointsHandler_MyPoints(t *testing.T) {
	handler, mockService := NewMock(t)

	t.Run("Balance with QR payloads only for active vouchers", func(t *testing.T) {
		mockService.EXPECT().
			MemberSummary(gomock.Any(), int64(1)).
			Return(&redemptionservice.MemberSummary{
				PointsBalance: 150,
				Redemptions: []domain.Voucher{
					{PublicID: uuid.New(), FriendlyCode: "1234567897", Status: domain.VoucherActive},
					{PublicID: uuid.New(), FriendlyCode: "0000000000", Status: domain.VoucherRedeemed},
				},
			}, nil)

		req := asMember(httptest.NewRequest(http.MethodGet, "/api/points/my", nil), 1)
		rr := httptest.NewRecorder()

		handler.MyPoints(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.MyPointsResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(150), resp.PointsBalance)
		assert.Len(t, resp.Redemptions, 2)
		assert.True(t, qrtoken.IsToken(resp.Redemptions[0].QRPayload))
		assert.Empty(t, resp.Redemptions[1].QRPayload)
	})

	t.Run("Unknown member", func(t *testing.T) {
		mockService.EXPECT().
			MemberSummary(gomock.Any(), int64(1)).
			Return(nil, domain.ErrMemberNotFound)

		req := asMember(httptest.NewRequest(http.MethodGet, "/api/points/my", nil), 1)
		rr := httptest.NewRecorder()

		handler.MyPoints(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		mockService.EXPECT().
			MemberSummary(gomock.Any(), int64(1)).
			Return(nil, errors.New("database error"))

		req := asMember(httptest.NewRequest(http.MethodGet, "/api/points/my", nil), 1)
		rr := httptest.NewRecorder()

		handler.MyPoints(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
