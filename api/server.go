// Package api exposes the CRM services over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"influencer-crm-service/analytics"
	_ "influencer-crm-service/api/docs"
	"influencer-crm-service/auth"
	"influencer-crm-service/config"
	"influencer-crm-service/importer"
	"influencer-crm-service/metrics"
	"influencer-crm-service/models"
	"influencer-crm-service/services"
	"influencer-crm-service/validation"
)

// Services groups everything the handlers call into.
type Services struct {
	Users       *services.UserService
	Tenancy     *services.TenancyService
	Influencers *services.InfluencerService
	Campaigns   *services.CampaignService
	Products    *services.ProductService
	Documents   *services.FinancialDocumentService
	Shipments   *services.ShipmentService
	Invoices    *services.InvoiceService
	Payouts     *services.PayoutService
	Metrics     *services.MetricService
	Analytics   *analytics.Service
	Importer    *importer.Importer
	// Ping reports database health; nil skips the check.
	Ping func(ctx context.Context) error
}

type TokenParser interface {
	Parse(token string) (*auth.Principal, error)
}

type Handler struct {
	logger   *zap.Logger
	cfg      *config.Config
	svc      Services
	tokens   TokenParser
	validate *validation.Validator
	metrics  *metrics.Metrics
	limiter  *rateLimiter
}

func NewHandler(logger *zap.Logger, cfg *config.Config, svc Services, tokens TokenParser, validate *validation.Validator, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		cfg:      cfg,
		svc:      svc,
		tokens:   tokens,
		validate: validate,
		metrics:  m,
		limiter:  newRateLimiter(cfg.RateLimit),
	}
}

var (
	allRoles   = []models.Role{models.RoleSuperAdmin, models.RoleFirmAdmin, models.RoleStoreManager, models.RoleStaff}
	managers   = []models.Role{models.RoleSuperAdmin, models.RoleFirmAdmin, models.RoleStoreManager}
	admins     = []models.Role{models.RoleSuperAdmin, models.RoleFirmAdmin}
	firmStaff  = []models.Role{models.RoleFirmAdmin, models.RoleStoreManager, models.RoleStaff}
	storeLeads = []models.Role{models.RoleFirmAdmin, models.RoleStoreManager}
)

var (
	member   = auth.Requirement{Roles: allRoles, Scope: auth.ScopeGlobal}
	manager  = auth.Requirement{Roles: managers, Scope: auth.ScopeGlobal}
	admin    = auth.Requirement{Roles: admins, Scope: auth.ScopeGlobal}
	platform = auth.Requirement{Roles: []models.Role{models.RoleSuperAdmin}, Scope: auth.ScopeGlobal}

	firmMember  = auth.Requirement{Roles: firmStaff, Scope: auth.ScopeFirm}
	firmOwner   = auth.Requirement{Roles: []models.Role{models.RoleFirmAdmin}, Scope: auth.ScopeFirm}
	storeMember = auth.Requirement{Roles: firmStaff, Scope: auth.ScopeStore}
	storeLead   = auth.Requirement{Roles: storeLeads, Scope: auth.ScopeStore}
)

// Routes builds the router with the full middleware stack.
//
// @title Influencer CRM API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimw.RealIP)
	r.Use(h.observe)
	r.Use(h.recoverer)
	r.Use(cors(h.cfg.CORSOrigins))
	r.Use(h.authenticate)
	r.Use(h.rateLimit)

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.With(h.require(member)).Get("/me", h.me)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(h.require(platform))
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
	})

	r.Route("/firms", func(r chi.Router) {
		r.With(h.require(platform)).Get("/", h.listFirms)
		r.With(h.require(platform)).Post("/", h.createFirm)
		r.Route("/{firmId}", func(r chi.Router) {
			r.With(h.require(platform)).Get("/", h.getFirm)
			r.With(h.require(platform)).Patch("/", h.updateFirm)
			r.With(h.require(platform)).Delete("/", h.deleteFirm)

			r.With(h.require(firmMember)).Get("/stores", h.listFirmStores)
			r.With(h.require(firmOwner)).Post("/stores", h.createFirmStore)
			r.With(h.require(storeMember)).Get("/stores/{storeId}", h.getFirmStore)
			r.With(h.require(storeLead)).Patch("/stores/{storeId}", h.updateFirmStore)
		})
	})

	r.Route("/stores", func(r chi.Router) {
		r.Use(h.require(platform))
		r.Get("/", h.listStores)
		r.Post("/", h.createStore)
		r.Get("/{id}", h.getStore)
		r.Patch("/{id}", h.updateStore)
		r.Delete("/{id}", h.deleteStore)
	})

	r.Route("/influencers", func(r chi.Router) {
		r.With(h.require(member)).Get("/", h.listInfluencers)
		r.With(h.require(member)).Post("/", h.createInfluencer)
		r.With(h.require(manager)).Post("/import", h.importInfluencers)
		r.With(h.require(member)).Get("/{id}", h.getInfluencer)
		r.With(h.require(member)).Patch("/{id}", h.updateInfluencer)
		r.With(h.require(manager)).Delete("/{id}", h.deleteInfluencer)
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.With(h.require(member)).Get("/", h.listCampaigns)
		r.With(h.require(manager)).Post("/", h.createCampaign)
		r.With(h.require(member)).Get("/{id}", h.getCampaign)
		r.With(h.require(manager)).Patch("/{id}", h.updateCampaign)
		r.With(h.require(manager)).Delete("/{id}", h.deleteCampaign)

		r.With(h.require(member)).Get("/{id}/influencers", h.listCampaignInfluencers)
		r.With(h.require(manager)).Post("/{id}/influencers", h.linkCampaignInfluencer)
		r.With(h.require(manager)).Patch("/{id}/influencers/{influencerId}", h.updateCampaignInfluencer)
		r.With(h.require(manager)).Delete("/{id}/influencers/{influencerId}", h.unlinkCampaignInfluencer)
	})

	r.Route("/products", func(r chi.Router) {
		r.With(h.require(member)).Get("/", h.listProducts)
		r.With(h.require(manager)).Post("/", h.createProduct)
		r.With(h.require(member)).Get("/{id}", h.getProduct)
		r.With(h.require(manager)).Patch("/{id}", h.updateProduct)
		r.With(h.require(manager)).Delete("/{id}", h.deleteProduct)
	})

	r.Route("/courier-shipments", func(r chi.Router) {
		r.Use(h.require(member))
		r.Get("/", h.listShipments)
		r.Post("/", h.createShipment)
		r.Get("/carriers", h.listCarriers)
		r.Get("/{id}", h.getShipment)
		r.Patch("/{id}", h.updateShipment)
		r.With(h.require(manager)).Delete("/{id}", h.deleteShipment)
		r.Patch("/{id}/status", h.updateShipmentStatus)
		r.Post("/{id}/timeline-event", h.recordShipmentEvent)
		r.Get("/{id}/timeline", h.shipmentTimeline)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Use(h.require(member))
		r.Get("/", h.listInvoices)
		r.Post("/", h.uploadInvoice)
		r.Get("/{id}", h.getInvoice)
		r.Get("/{id}/file", h.downloadInvoice)
		r.Patch("/{id}", h.updateInvoice)
		r.Patch("/{id}/status", h.updateInvoiceStatus)
		r.With(h.require(manager)).Delete("/{id}", h.deleteInvoice)
	})

	r.Route("/payouts", func(r chi.Router) {
		r.With(h.require(member)).Get("/", h.listPayouts)
		r.With(h.require(manager)).Post("/", h.createPayout)
		r.With(h.require(member)).Get("/{id}", h.getPayout)
		r.With(h.require(manager)).Patch("/{id}", h.updatePayout)
		r.With(h.require(admin)).Patch("/{id}/status", h.updatePayoutStatus)
		r.With(h.require(admin)).Delete("/{id}", h.deletePayout)
	})

	r.Route("/financial-documents", func(r chi.Router) {
		r.With(h.require(member)).Get("/", h.listDocuments)
		r.With(h.require(manager)).Post("/", h.createDocument)
		r.With(h.require(member)).Get("/{id}", h.getDocument)
		r.With(h.require(manager)).Patch("/{id}", h.updateDocument)
		r.With(h.require(manager)).Delete("/{id}", h.deleteDocument)
	})

	r.Route("/performance-metrics", func(r chi.Router) {
		r.With(h.require(member)).Get("/", h.listMetrics)
		r.With(h.require(member)).Post("/", h.createMetric)
		r.With(h.require(member)).Get("/{id}", h.getMetric)
		r.With(h.require(manager)).Delete("/{id}", h.deleteMetric)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Use(h.require(member))
		r.Get("/influencer/{id}/score", h.influencerScore)
		r.Get("/influencer/{id}/summary", h.influencerSummary)
		r.Get("/campaign/{id}/budget-utilization", h.budgetUtilization)
		r.Get("/campaign/{id}/summary", h.campaignSummary)
		r.Get("/aggregated", h.aggregated)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			StatusCode: http.StatusNotFound,
			Error:      http.StatusText(http.StatusNotFound),
			Message:    "Cannot " + r.Method + " " + r.URL.Path,
		})
	})

	return r
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// health godoc
// @Summary Liveness and database check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /healthz [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.svc.Ping == nil {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}
	if err := h.svc.Ping(r.Context()); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
