package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// listOrdersHandler handles GET /api/v1/orders.
func (s *Server) listOrdersHandler(c *gin.Context) {
	tenant, err := s.resolveTenant(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	limit, offset := listParams(c)
	filters := models.OrderFilters{
		BusinessID:    tenant,
		UserID:        c.Query("owner_id"),
		CustomerPhone: c.Query("customer_phone"),
		Status:        order.Status(c.Query("status")),
		RequestType:   order.RequestType(c.Query("request_type")),
		Limit:         limit,
		Offset:        offset,
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			mapServiceError(c, services.NewValidationError("created_after", "must be RFC3339"))
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			mapServiceError(c, services.NewValidationError("created_before", "must be RFC3339"))
			return
		}
		filters.CreatedBefore = &t
	}

	result, err := s.orders.ListOrders(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// getOrderHandler handles GET /api/v1/orders/:id. Responds with the order,
// its lines, and its status history.
func (s *Server) getOrderHandler(c *gin.Context) {
	view, err := s.orders.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, view.Order.BusinessID) {
		return
	}
	respondData(c, http.StatusOK, view)
}

// UpdateOrderStatusBody is the body of PATCH /orders/:id/status. The actor
// is taken from the token, not the body.
type UpdateOrderStatusBody struct {
	Status order.Status `json:"status"`
}

// updateOrderStatusHandler handles PATCH /api/v1/orders/:id/status.
func (s *Server) updateOrderStatusHandler(c *gin.Context) {
	orderID := c.Param("id")
	o, err := s.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, o.BusinessID) {
		return
	}
	var body UpdateOrderStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	updated, err := s.orders.UpdateStatus(c.Request.Context(), orderID, models.UpdateOrderStatusRequest{
		Status:    body.Status,
		ChangedBy: currentPrincipal(c).UserID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishOrderEvent(c.Request.Context(), events.EventTypeOrderStatus, updated)
	respondData(c, http.StatusOK, updated)
}

// SetDeliveryPriceBody is the body of PATCH /orders/:id/delivery-price.
type SetDeliveryPriceBody struct {
	DeliveryPrice decimal.Decimal `json:"delivery_price"`
}

// setDeliveryPriceHandler handles PATCH /api/v1/orders/:id/delivery-price.
func (s *Server) setDeliveryPriceHandler(c *gin.Context) {
	orderID := c.Param("id")
	o, err := s.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, o.BusinessID) {
		return
	}
	var body SetDeliveryPriceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	updated, err := s.orders.SetDeliveryPrice(c.Request.Context(), orderID, body.DeliveryPrice)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// calendarHandler handles GET /api/v1/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD.
// It merges scheduled orders and reservations into one list sorted by time.
// Day boundaries follow the business timezone.
func (s *Server) calendarHandler(c *gin.Context) {
	tenant, err := s.resolveTenantUser(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	loc, err := time.LoadLocation(tenant.Timezone)
	if err != nil {
		loc = time.UTC
	}

	fromDate := c.Query("from")
	toDate := c.Query("to")
	from, err := time.ParseInLocation("2006-01-02", fromDate, loc)
	if err != nil {
		mapServiceError(c, services.NewValidationError("from", "must be YYYY-MM-DD"))
		return
	}
	to, err := time.ParseInLocation("2006-01-02", toDate, loc)
	if err != nil {
		mapServiceError(c, services.NewValidationError("to", "must be YYYY-MM-DD"))
		return
	}
	if to.Before(from) {
		mapServiceError(c, services.NewValidationError("to", "must not be before from"))
		return
	}

	ctx := c.Request.Context()
	orders, err := s.orders.ListScheduledBetween(ctx, tenant.ID, from, to.AddDate(0, 0, 1))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	reservations, err := s.reservations.ListBetween(ctx, tenant.ID, fromDate, toDate)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	var tableIDs []string
	for _, r := range reservations {
		if r.TableID != nil && *r.TableID != "" {
			tableIDs = append(tableIDs, *r.TableID)
		}
	}
	tableNumbers, err := s.catalog.TableNumbers(ctx, tableIDs)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	entries := make([]models.CalendarEntry, 0, len(orders)+len(reservations))
	for _, o := range orders {
		if o.ScheduledFor == nil {
			continue
		}
		total := o.Total
		entries = append(entries, models.CalendarEntry{
			Kind:          "order",
			ID:            o.ID,
			At:            o.ScheduledFor.In(loc),
			Status:        string(o.Status),
			CustomerPhone: o.CustomerPhoneNumber,
			Total:         &total,
		})
	}
	for _, r := range reservations {
		at, err := time.ParseInLocation("2006-01-02 15:04", r.ReservationDate+" "+r.ReservationTime, loc)
		if err != nil {
			continue
		}
		entry := models.CalendarEntry{
			Kind:          "reservation",
			ID:            r.ID,
			At:            at,
			Status:        string(r.Status),
			CustomerName:  r.CustomerName,
			CustomerPhone: r.CustomerPhoneNumber,
			Guests:        r.NumberOfGuests,
		}
		if r.TableID != nil {
			if n, ok := tableNumbers[*r.TableID]; ok {
				entry.TableNumber = &n
			}
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })

	respondData(c, http.StatusOK, gin.H{
		"from":    fromDate,
		"to":      toDate,
		"entries": entries,
	})
}
