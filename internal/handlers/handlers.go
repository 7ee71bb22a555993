package handlers

import (
	"net/http"

	_ "github.com/arundaya/poinku/docs"
	adminhandlers "github.com/arundaya/poinku/internal/handlers/admin"
	pointshandlers "github.com/arundaya/poinku/internal/handlers/points"
	"github.com/arundaya/poinku/internal/service"
	"github.com/arundaya/poinku/pkg/auth"
	"github.com/arundaya/poinku/pkg/qrtoken"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type PointsHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	MyPoints(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	RedeemByCode(w http.ResponseWriter, r *http.Request)
	BulkAdjust(w http.ResponseWriter, r *http.Request)
	AddPoints(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PointsHandler PointsHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services, signer *qrtoken.Signer) *Handlers {
	return &Handlers{
		PointsHandler: pointshandlers.New(s.RedemptionService, signer),
		AdminHandler:  adminhandlers.New(s.VoucherService, s.BulkService, s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/points", func(r chi.Router) {
				r.Post("/redeem", h.PointsHandler.Redeem)
				r.Get("/my", h.PointsHandler.MyPoints)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AdminMiddleware)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/redeem-by-code", h.AdminHandler.RedeemByCode)
				r.Route("/points", func(r chi.Router) {
					r.Post("/bulk-adjust", h.AdminHandler.BulkAdjust)
					r.Get("/transactions", h.AdminHandler.ListTransactions)
				})
				r.Post("/members/{id}/points/add", h.AdminHandler.AddPoints)
			})
		})
	})

	return r
}
