package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

// scheduledCutoff is how close a scheduled time must be for a confirmed
// order to start in ongoing rather than accepted.
const scheduledCutoff = 5 * time.Minute

// orderTransitions is the order state machine. Confirmation handles the
// cart row separately; absent keys are terminal.
var orderTransitions = map[order.Status][]order.Status{
	order.StatusAccepted: {order.StatusOngoing, order.StatusReady, order.StatusCompleted, order.StatusCancelled, order.StatusRejected},
	order.StatusOngoing:  {order.StatusReady, order.StatusCompleted, order.StatusCancelled},
	order.StatusReady:    {order.StatusCompleted, order.StatusCancelled},
}

// OrderService manages the order lifecycle from cart confirmation through
// the terminal states.
type OrderService struct {
	client *ent.Client
}

// NewOrderService creates a new OrderService
func NewOrderService(client *ent.Client) *OrderService {
	return &OrderService{client: client}
}

// Confirm converts a cart into a placed order in one transaction: prices
// snapshotted, status flipped, initial history row appended, stock
// decremented under row locks, and per-item order counters bumped.
func (s *OrderService) Confirm(ctx context.Context, orderID string, req models.ConfirmOrderRequest) (*ent.Order, error) {
	if orderID == "" {
		return nil, NewValidationError("order_id", "required")
	}
	if req.ChangedBy == "" {
		return nil, NewValidationError("changed_by", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	cart, err := tx.Order.Query().
		Where(order.IDEQ(orderID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}
	if cart.Status != order.StatusCart {
		return nil, ErrInvalidTransition
	}

	lines, err := tx.OrderItem.Query().
		Where(orderitem.OrderIDEQ(cart.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Quantities per item; items locked in sorted order to keep concurrent
	// confirmations deadlock-free.
	quantities := make(map[string]int, len(lines))
	for _, line := range lines {
		quantities[line.ItemID] += line.Quantity
	}
	itemIDs := make([]string, 0, len(quantities))
	for id := range quantities {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	subtotal := decimal.NewFromInt(0)
	for _, itemID := range itemIDs {
		it, err := tx.Item.Query().
			Where(item.IDEQ(itemID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// Item removed since it was added; line keeps its snapshot
				continue
			}
			return nil, fmt.Errorf("failed to lock item: %w", err)
		}

		qty := quantities[itemID]
		update := it.Update().SetTimesOrdered(it.TimesOrdered + qty)
		if it.StockQuantity != nil {
			if *it.StockQuantity < qty {
				return nil, ErrInsufficientStock
			}
			update.SetStockQuantity(*it.StockQuantity - qty)
		}
		if err := update.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update item stock: %w", err)
		}

		// Final price snapshot
		if it.DeletedAt == nil {
			for _, line := range lines {
				if line.ItemID == itemID && !line.PriceAtTime.Equal(it.Price) {
					if err := line.Update().SetPriceAtTime(it.Price).Exec(ctx); err != nil {
						return nil, fmt.Errorf("failed to snapshot line price: %w", err)
					}
					line.PriceAtTime = it.Price
				}
			}
		}
	}
	for _, line := range lines {
		subtotal = subtotal.Add(line.PriceAtTime.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	now := time.Now()
	status := order.StatusAccepted
	requestType := order.RequestTypeOrder
	if cart.ScheduledFor != nil {
		requestType = order.RequestTypeScheduledRequest
		if !cart.ScheduledFor.After(now.Add(scheduledCutoff)) {
			status = order.StatusOngoing
		}
	}

	update := tx.Order.UpdateOneID(cart.ID).
		SetStatus(status).
		SetRequestType(requestType).
		SetSubtotal(subtotal).
		SetTotal(subtotal.Add(cart.DeliveryPrice)).
		SetNotes(userNotes(cart))
	if req.PaymentMethod != "" {
		update.SetPaymentMethod(req.PaymentMethod)
	}
	if req.OrderSource != "" {
		update.SetOrderSource(req.OrderSource)
	}
	if req.LanguageUsed != "" {
		update.SetLanguageUsed(req.LanguageUsed)
	}

	confirmed, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm order: %w", err)
	}

	if err := appendHistory(ctx, tx, confirmed.ID, status, req.ChangedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return confirmed, nil
}

// UpdateStatus moves an order through its state machine, appending history
// and applying completion/cancellation side effects in one transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, req models.UpdateOrderStatusRequest) (*ent.Order, error) {
	if req.ChangedBy == "" {
		return nil, NewValidationError("changed_by", "required")
	}
	if err := order.StatusValidator(req.Status); err != nil {
		return nil, NewValidationError("status", "unknown status")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	o, err := tx.Order.Query().
		Where(order.IDEQ(orderID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if !transitionAllowed(o.Status, req.Status) {
		return nil, ErrInvalidTransition
	}
	// Ongoing means a scheduled request is being worked on; immediate
	// orders go accepted -> ready -> completed.
	if req.Status == order.StatusOngoing && o.ScheduledFor == nil {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	update := o.Update().SetStatus(req.Status)
	switch req.Status {
	case order.StatusCompleted:
		update.SetCompletedAt(now)
	case order.StatusCancelled:
		update.SetCancelledAt(now)
	}
	if !req.SystemActor && o.FirstResponseAt == nil {
		update.SetFirstResponseAt(now)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if req.Status == order.StatusCompleted {
		if err := bumpTimesDelivered(ctx, tx, updated.ID); err != nil {
			return nil, err
		}
	}

	if err := appendHistory(ctx, tx, updated.ID, req.Status, req.ChangedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// SetDeliveryPrice amends the delivery fee. Allowed only while the order is
// accepted and fulfilled by delivery; the total is recomputed atomically.
func (s *OrderService) SetDeliveryPrice(ctx context.Context, orderID string, price decimal.Decimal) (*ent.Order, error) {
	if price.IsNegative() {
		return nil, NewValidationError("delivery_price", "must not be negative")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	o, err := tx.Order.Query().
		Where(order.IDEQ(orderID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if o.Status != order.StatusAccepted || o.DeliveryType == nil || *o.DeliveryType != order.DeliveryTypeDelivery {
		return nil, ErrInvalidTransition
	}

	update := o.Update().
		SetDeliveryPrice(price).
		SetTotal(o.Subtotal.Add(price))
	if o.FirstResponseAt == nil {
		update.SetFirstResponseAt(time.Now())
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set delivery price: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// CancelByCustomer cancels a scheduled order on behalf of its customer,
// enforcing ownership and the cancellation window.
func (s *OrderService) CancelByCustomer(ctx context.Context, orderID, customerPhone string) (*ent.Order, error) {
	if customerPhone == "" {
		return nil, NewValidationError("customer_phone", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	o, err := tx.Order.Query().
		Where(
			order.IDEQ(orderID),
			order.CustomerPhoneNumberEQ(customerPhone),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if !transitionAllowed(o.Status, order.StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	deadline, err := cancellationDeadline(ctx, tx.Client(), o)
	if err != nil {
		return nil, err
	}
	if time.Now().After(deadline) {
		return nil, ErrCancelDeadlinePassed
	}

	updated, err := o.Update().
		SetStatus(order.StatusCancelled).
		SetCancelledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	if err := appendHistory(ctx, tx, updated.ID, order.StatusCancelled, customerPhone); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// CancellationDeadline computes the instant until which the customer may
// cancel: scheduled_for minus the widest item-level window, falling back to
// the business default.
func (s *OrderService) CancellationDeadline(ctx context.Context, o *ent.Order) (time.Time, error) {
	return cancellationDeadline(ctx, s.client, o)
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*ent.Order, error) {
	o, err := s.client.Order.Query().Where(order.IDEQ(orderID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// GetOrderForCustomer retrieves an order scoped to its customer
func (s *OrderService) GetOrderForCustomer(ctx context.Context, orderID, customerPhone string) (*ent.Order, error) {
	o, err := s.client.Order.Query().
		Where(
			order.IDEQ(orderID),
			order.CustomerPhoneNumberEQ(customerPhone),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// GetView returns an order with its lines and full status history
func (s *OrderService) GetView(ctx context.Context, orderID string) (*models.OrderView, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.client.OrderItem.Query().
		Where(orderitem.OrderIDEQ(orderID)).
		Order(ent.Asc(orderitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	history, err := s.client.OrderStatusHistory.Query().
		Where(orderstatushistory.OrderIDEQ(orderID)).
		Order(ent.Asc(orderstatushistory.FieldChangedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query order history: %w", err)
	}

	return &models.OrderView{Order: o, Items: items, History: history}, nil
}

// ListOrders lists orders with filtering and pagination. Cart rows are
// excluded unless explicitly requested by status.
func (s *OrderService) ListOrders(ctx context.Context, filters models.OrderFilters) (*models.OrderListResponse, error) {
	query := s.client.Order.Query()

	if filters.BusinessID != "" {
		query = query.Where(order.BusinessIDEQ(filters.BusinessID))
	}
	if filters.UserID != "" {
		query = query.Where(order.UserIDEQ(filters.UserID))
	}
	if filters.CustomerPhone != "" {
		query = query.Where(order.CustomerPhoneNumberEQ(filters.CustomerPhone))
	}
	if filters.Status != "" {
		query = query.Where(order.StatusEQ(filters.Status))
	} else {
		query = query.Where(order.StatusNEQ(order.StatusCart))
	}
	if filters.RequestType != "" {
		query = query.Where(order.RequestTypeEQ(filters.RequestType))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(order.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(order.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	orders, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(order.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &models.OrderListResponse{
		Orders:     orders,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListRecentForCustomer lists a customer's placed orders, newest first
func (s *OrderService) ListRecentForCustomer(ctx context.Context, businessID, customerPhone string, limit int) ([]*ent.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	orders, err := s.client.Order.Query().
		Where(
			order.BusinessIDEQ(businessID),
			order.CustomerPhoneNumberEQ(customerPhone),
			order.StatusNEQ(order.StatusCart),
		).
		Order(ent.Desc(order.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	return orders, nil
}

// DueScheduled returns scheduled requests whose time has come, oldest first
func (s *OrderService) DueScheduled(ctx context.Context, now time.Time, limit int) ([]*ent.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	orders, err := s.client.Order.Query().
		Where(
			order.RequestTypeEQ(order.RequestTypeScheduledRequest),
			order.StatusEQ(order.StatusAccepted),
			order.ScheduledForLTE(now),
		).
		Order(ent.Asc(order.FieldScheduledFor)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due scheduled orders: %w", err)
	}
	return orders, nil
}

// ListArchivable returns terminal orders old enough to move to the cold
// store.
func (s *OrderService) ListArchivable(ctx context.Context, cutoff time.Time, limit int) ([]*ent.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	orders, err := s.client.Order.Query().
		Where(
			order.Or(
				order.And(
					order.StatusEQ(order.StatusCompleted),
					order.CompletedAtLT(cutoff),
				),
				order.And(
					order.StatusEQ(order.StatusCancelled),
					order.CancelledAtLT(cutoff),
				),
			),
		).
		Order(ent.Asc(order.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archivable orders: %w", err)
	}
	return orders, nil
}

// ListScheduledBetween returns a tenant's scheduled requests inside a time
// window, for the dashboard calendar.
func (s *OrderService) ListScheduledBetween(ctx context.Context, businessID string, from, to time.Time) ([]*ent.Order, error) {
	orders, err := s.client.Order.Query().
		Where(
			order.BusinessIDEQ(businessID),
			order.RequestTypeEQ(order.RequestTypeScheduledRequest),
			order.ScheduledForGTE(from),
			order.ScheduledForLT(to),
		).
		Order(ent.Asc(order.FieldScheduledFor)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled orders: %w", err)
	}
	return orders, nil
}

// transitionAllowed reports whether the state machine permits from → to.
func transitionAllowed(from, to order.Status) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// appendHistory writes one status-history row inside the transaction.
func appendHistory(ctx context.Context, tx *ent.Tx, orderID string, status order.Status, changedBy string) error {
	err := tx.OrderStatusHistory.Create().
		SetID(uuid.New().String()).
		SetOrderID(orderID).
		SetStatus(orderstatushistory.Status(status)).
		SetChangedBy(changedBy).
		SetChangedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

// bumpTimesDelivered increments each line item's delivered counter by the
// line quantity.
func bumpTimesDelivered(ctx context.Context, tx *ent.Tx, orderID string) error {
	lines, err := tx.OrderItem.Query().
		Where(orderitem.OrderIDEQ(orderID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query order lines: %w", err)
	}
	for _, line := range lines {
		err := tx.Item.Update().
			Where(item.IDEQ(line.ItemID)).
			AddTimesDelivered(line.Quantity).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to bump delivered counter: %w", err)
		}
	}
	return nil
}

// cancellationDeadline anchors the window at scheduled_for; orders without a
// scheduled time are not customer-cancellable.
func cancellationDeadline(ctx context.Context, client *ent.Client, o *ent.Order) (time.Time, error) {
	if o.ScheduledFor == nil {
		return time.Time{}, ErrCancelDeadlinePassed
	}

	lines, err := client.OrderItem.Query().
		Where(orderitem.OrderIDEQ(o.ID)).
		All(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query order lines: %w", err)
	}

	itemIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		itemIDs = append(itemIDs, line.ItemID)
	}

	windowHours := 0
	found := false
	if len(itemIDs) > 0 {
		items, err := client.Item.Query().
			Where(item.IDIn(itemIDs...)).
			All(ctx)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to query items: %w", err)
		}
		for _, it := range items {
			if it.CancelableBeforeHours != nil && *it.CancelableBeforeHours > windowHours {
				windowHours = *it.CancelableBeforeHours
				found = true
			}
		}
	}

	if !found {
		business, err := client.User.Query().
			Where(user.IDEQ(o.BusinessID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return time.Time{}, ErrNotFound
			}
			return time.Time{}, fmt.Errorf("failed to query business: %w", err)
		}
		windowHours = business.DefaultCancelableBeforeHours
	}

	return o.ScheduledFor.Add(-time.Duration(windowHours) * time.Hour), nil
}
