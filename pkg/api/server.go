// Package api is the HTTP surface: channel webhooks, the authenticated
// admin/dashboard API, the health endpoint, and the WebSocket upgrade.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/dedup"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/outbound"
	"github.com/vendrahq/vendra/pkg/queue"
	"github.com/vendrahq/vendra/pkg/services"
)

// readHeaderTimeout bounds slow-header attacks on the listener.
const readHeaderTimeout = 10 * time.Second

// Server hosts the HTTP surface. Webhooks persist inbound messages and wake
// the queue; the admin API is scoped per tenant by the JWT principal.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	users        *services.UserService
	catalog      *services.CatalogService
	orders       *services.OrderService
	reservations *services.ReservationService
	sessions     *services.SessionService
	tickets      *services.TicketService
	integrations *services.IntegrationService

	deduper     dedup.Deduper
	dispatcher  *outbound.Dispatcher
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager
	publisher   *events.Publisher

	jwtSecret  []byte
	wsOrigins  []string
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer wires the HTTP surface. The JWT secret is read from the env var
// named in the auth config; a missing secret is a startup error.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	deduper dedup.Deduper,
	dispatcher *outbound.Dispatcher,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
	publisher *events.Publisher,
) (*Server, error) {
	secret := os.Getenv(cfg.Auth.JWTSecretEnv)
	if secret == "" {
		return nil, fmt.Errorf("JWT secret env %s is not set", cfg.Auth.JWTSecretEnv)
	}

	s := &Server{
		cfg:          cfg,
		dbClient:     dbClient,
		users:        services.NewUserService(dbClient.Client),
		catalog:      services.NewCatalogService(dbClient.Client),
		orders:       services.NewOrderService(dbClient.Client),
		reservations: services.NewReservationService(dbClient.Client),
		sessions:     services.NewSessionService(dbClient.Client),
		tickets:      services.NewTicketService(dbClient.Client),
		integrations: services.NewIntegrationService(dbClient.Client),
		deduper:      deduper,
		dispatcher:   dispatcher,
		workerPool:   workerPool,
		connManager:  connManager,
		publisher:    publisher,
		jwtSecret:    []byte(secret),
		wsOrigins:    wsOriginPatterns(cfg),
	}
	s.router = s.routes()
	return s, nil
}

// wsOriginPatterns collects the WebSocket origin allowlist: the dashboard
// host plus any extra patterns from config.
func wsOriginPatterns(cfg *config.Config) []string {
	var patterns []string
	if u, err := url.Parse(cfg.DashboardURL); err == nil && u.Host != "" {
		patterns = append(patterns, u.Host)
	}
	patterns = append(patterns, cfg.AllowedWSOrigins...)
	return patterns
}

// routes builds the gin engine with all endpoints registered.
func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	// Channel webhooks are authenticated by verify tokens, not JWT.
	wh := r.Group("/webhooks")
	{
		wh.GET("/whatsapp", s.metaVerifyHandler("whatsapp"))
		wh.POST("/whatsapp", s.whatsappWebhookHandler)
		wh.GET("/messenger", s.metaVerifyHandler("messenger"))
		wh.POST("/messenger", s.messengerWebhookHandler)
		wh.POST("/telegram/:account", s.telegramWebhookHandler)
	}

	v1 := r.Group("/api/v1", s.authRequired())
	{
		v1.POST("/businesses", requireRoles(roleAdmin), s.createBusinessHandler)
		v1.GET("/businesses", requireRoles(roleAdmin), s.listBusinessesHandler)
		v1.GET("/businesses/:id", s.getBusinessHandler)
		v1.PATCH("/businesses/:id", s.updateBusinessHandler)
		v1.PUT("/businesses/:id/subscription", requireRoles(roleAdmin), s.setSubscriptionHandler)

		v1.POST("/branches", requireRoles(roleAdmin, roleBusiness), s.createBranchHandler)
		v1.GET("/branches", s.listBranchesHandler)

		v1.POST("/addons", requireRoles(roleAdmin), s.setAddonHandler)
		v1.GET("/addons", s.listAddonsHandler)

		v1.POST("/integrations", requireRoles(roleAdmin, roleBusiness), s.upsertIntegrationHandler)
		v1.GET("/integrations", s.listIntegrationsHandler)
		v1.PATCH("/integrations/:id/active", requireRoles(roleAdmin, roleBusiness), s.setIntegrationActiveHandler)

		v1.POST("/items", s.createItemHandler)
		v1.GET("/items", s.listItemsHandler)
		v1.GET("/items/:id", s.getItemHandler)
		v1.PATCH("/items/:id", s.updateItemHandler)
		v1.DELETE("/items/:id", s.deleteItemHandler)

		v1.POST("/menus", s.createMenuHandler)
		v1.GET("/menus", s.listMenusHandler)
		v1.PATCH("/menus/:id", s.updateMenuHandler)

		v1.POST("/categories", s.createCategoryHandler)
		v1.GET("/categories", s.listCategoriesHandler)

		v1.PUT("/opening-hours", s.upsertOpeningHourHandler)
		v1.GET("/opening-hours", s.listOpeningHoursHandler)

		v1.POST("/tables", s.createTableHandler)
		v1.GET("/tables", s.listTablesHandler)
		v1.PATCH("/tables/:id", s.updateTableHandler)

		v1.GET("/orders", s.listOrdersHandler)
		v1.GET("/orders/:id", s.getOrderHandler)
		v1.PATCH("/orders/:id/status", s.updateOrderStatusHandler)
		v1.PATCH("/orders/:id/delivery-price", s.setDeliveryPriceHandler)

		v1.POST("/reservations", s.createReservationHandler)
		v1.GET("/reservations", s.listReservationsHandler)
		v1.GET("/reservations/availability", s.reservationAvailabilityHandler)
		v1.GET("/reservations/:id", s.getReservationHandler)
		v1.PATCH("/reservations/:id/status", s.updateReservationStatusHandler)
		v1.POST("/reservations/:id/items", s.addReservationItemHandler)
		v1.GET("/reservations/:id/items", s.listReservationItemsHandler)
		v1.DELETE("/reservations/:id/items/:lineID", s.removeReservationItemHandler)

		v1.GET("/calendar", s.calendarHandler)

		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/messages", s.listSessionMessagesHandler)
		v1.POST("/sessions/:id/messages", s.sendSessionMessageHandler)
		v1.POST("/sessions/:id/takeover", s.takeoverSessionHandler)
		v1.POST("/sessions/:id/release", s.releaseSessionHandler)

		v1.POST("/tickets", s.openTicketHandler)
		v1.GET("/tickets", s.listTicketsHandler)
		v1.GET("/tickets/:id", s.getTicketHandler)
		v1.GET("/tickets/:id/messages", s.listTicketMessagesHandler)
		v1.POST("/tickets/:id/messages", s.addTicketMessageHandler)
		v1.PATCH("/tickets/:id/status", s.updateTicketStatusHandler)
		v1.PATCH("/tickets/:id/assign", s.assignTicketHandler)
	}

	return r
}

// Start serves HTTP on addr. Blocks until the listener stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves HTTP on an existing listener. Lets tests bind
// to an OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
