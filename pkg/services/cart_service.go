package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/pkg/models"
)

// cartNotesSentinel prefixes the notes column of order rows in cart status.
// Confirmation strips it, leaving the customer's own notes.
const cartNotesSentinel = "__cart__"

// CartService manages the customer's in-progress basket: an order row held
// in cart status, one per (business, owner, customer), with lines re-priced
// from the catalog on every mutation.
type CartService struct {
	client *ent.Client
}

// NewCartService creates a new CartService
func NewCartService(client *ent.Client) *CartService {
	return &CartService{client: client}
}

// GetOrCreate returns the scope's cart row, creating it when absent. A
// creation race against the cart uniqueness index resolves by re-fetch.
func (s *CartService) GetOrCreate(ctx context.Context, scope models.CartScope) (*ent.Order, error) {
	if err := validateCartScope(scope); err != nil {
		return nil, err
	}

	cart, err := s.find(ctx, scope)
	if err == nil {
		return cart, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	cart, err = s.client.Order.Create().
		SetID(uuid.New().String()).
		SetBusinessID(scope.BusinessID).
		SetUserID(scope.OwnerUserID).
		SetCustomerPhoneNumber(scope.CustomerPhone).
		SetStatus(order.StatusCart).
		SetNotes(cartNotesSentinel).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race; the winner's row is ours
			cart, err = s.find(ctx, scope)
			if err != nil {
				return nil, fmt.Errorf("failed to re-fetch cart: %w", err)
			}
			return cart, nil
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// AddLine adds an item to the cart, merging into an existing line on the
// same (item, notes) pair.
func (s *CartService) AddLine(ctx context.Context, scope models.CartScope, req models.AddLineRequest) (*models.CartSnapshot, error) {
	if req.ItemID == "" {
		return nil, NewValidationError("item_id", "required")
	}
	if req.Quantity < 1 {
		return nil, NewValidationError("quantity", "must be at least 1")
	}

	cart, err := s.GetOrCreate(ctx, scope)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := lockCart(ctx, tx, cart.ID)
	if err != nil {
		return nil, err
	}

	it, err := s.addableItem(ctx, tx, scope, req.ItemID)
	if err != nil {
		return nil, err
	}

	// Merge on the same (item, notes) pair
	lineQuery := tx.OrderItem.Query().
		Where(
			orderitem.OrderIDEQ(locked.ID),
			orderitem.ItemIDEQ(req.ItemID),
		)
	if req.Notes == "" {
		lineQuery = lineQuery.Where(orderitem.NotesIsNil())
	} else {
		lineQuery = lineQuery.Where(orderitem.NotesEQ(req.Notes))
	}
	existing, err := lineQuery.Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query cart line: %w", err)
	}

	if existing != nil {
		err = existing.Update().
			SetQuantity(existing.Quantity + req.Quantity).
			SetPriceAtTime(it.Price).
			SetNameAtTime(it.Name).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to merge cart line: %w", err)
		}
	} else {
		builder := tx.OrderItem.Create().
			SetID(uuid.New().String()).
			SetOrderID(locked.ID).
			SetItemID(req.ItemID).
			SetQuantity(req.Quantity).
			SetPriceAtTime(it.Price).
			SetNameAtTime(it.Name)
		if it.Cost != nil {
			builder.SetCostAtTime(*it.Cost)
		}
		if req.Notes != "" {
			builder.SetNotes(req.Notes)
		}
		if err := builder.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create cart line: %w", err)
		}
	}

	if err := repriceCart(ctx, tx, locked); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Snapshot(ctx, scope)
}

// UpdateLine changes a cart line's quantity or notes. Quantity zero removes
// the line.
func (s *CartService) UpdateLine(ctx context.Context, scope models.CartScope, req models.UpdateLineRequest) (*models.CartSnapshot, error) {
	if req.LineID == "" {
		return nil, NewValidationError("line_id", "required")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, NewValidationError("quantity", "must not be negative")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := s.lockCartForScope(ctx, tx, scope)
	if err != nil {
		return nil, err
	}

	line, err := tx.OrderItem.Query().
		Where(
			orderitem.IDEQ(req.LineID),
			orderitem.OrderIDEQ(locked.ID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cart line: %w", err)
	}

	if req.Quantity != nil && *req.Quantity == 0 {
		if err := tx.OrderItem.DeleteOne(line).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to remove cart line: %w", err)
		}
	} else {
		update := line.Update()
		if req.Quantity != nil {
			update.SetQuantity(*req.Quantity)
		}
		if req.Notes != nil {
			if *req.Notes == "" {
				update.ClearNotes()
			} else {
				update.SetNotes(*req.Notes)
			}
		}
		if err := update.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update cart line: %w", err)
		}
	}

	if err := repriceCart(ctx, tx, locked); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Snapshot(ctx, scope)
}

// RemoveLine deletes one line from the cart
func (s *CartService) RemoveLine(ctx context.Context, scope models.CartScope, lineID string) (*models.CartSnapshot, error) {
	zero := 0
	return s.UpdateLine(ctx, scope, models.UpdateLineRequest{LineID: lineID, Quantity: &zero})
}

// SetDeliveryType sets how the order will be fulfilled. The address is
// stored when provided; delivery orders need one before confirmation.
func (s *CartService) SetDeliveryType(ctx context.Context, scope models.CartScope, deliveryType order.DeliveryType, address string) (*models.CartSnapshot, error) {
	if err := order.DeliveryTypeValidator(deliveryType); err != nil {
		return nil, NewValidationError("delivery_type", "must be takeaway, delivery, or on_site")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := s.lockCartForScope(ctx, tx, scope)
	if err != nil {
		return nil, err
	}

	update := locked.Update().SetDeliveryType(deliveryType)
	if address != "" {
		update.SetLocationAddress(address)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to set delivery type: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.Snapshot(ctx, scope)
}

// SetNotes replaces the customer's order notes
func (s *CartService) SetNotes(ctx context.Context, scope models.CartScope, text string) (*models.CartSnapshot, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := s.lockCartForScope(ctx, tx, scope)
	if err != nil {
		return nil, err
	}

	if err := locked.Update().SetNotes(cartNotesSentinel + text).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to set notes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.Snapshot(ctx, scope)
}

// SetScheduled sets or clears the requested fulfillment time
func (s *CartService) SetScheduled(ctx context.Context, scope models.CartScope, at *time.Time) (*models.CartSnapshot, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := s.lockCartForScope(ctx, tx, scope)
	if err != nil {
		return nil, err
	}

	update := locked.Update()
	if at == nil {
		update.ClearScheduledFor()
	} else {
		update.SetScheduledFor(*at)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to set scheduled time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.Snapshot(ctx, scope)
}

// Clear empties the cart: lines deleted, delivery and scheduling fields
// reset. Clearing a scope without a cart is a no-op.
func (s *CartService) Clear(ctx context.Context, scope models.CartScope) error {
	if err := validateCartScope(scope); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := s.lockCartForScope(ctx, tx, scope)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if _, err := tx.OrderItem.Delete().Where(orderitem.OrderIDEQ(locked.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete cart lines: %w", err)
	}

	err = locked.Update().
		ClearDeliveryType().
		ClearScheduledFor().
		ClearLocationAddress().
		SetNotes(cartNotesSentinel).
		SetSubtotal(decimal.NewFromInt(0)).
		SetDeliveryPrice(decimal.NewFromInt(0)).
		SetTotal(decimal.NewFromInt(0)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Snapshot returns the customer-facing cart view. A scope without a cart
// yields an empty snapshot with no order id.
func (s *CartService) Snapshot(ctx context.Context, scope models.CartScope) (*models.CartSnapshot, error) {
	if err := validateCartScope(scope); err != nil {
		return nil, err
	}

	snapshot := &models.CartSnapshot{
		BusinessID:    scope.BusinessID,
		OwnerUserID:   scope.OwnerUserID,
		CustomerPhone: scope.CustomerPhone,
		Lines:         []models.CartLine{},
		Subtotal:      decimal.NewFromInt(0),
		DeliveryPrice: decimal.NewFromInt(0),
		Total:         decimal.NewFromInt(0),
	}

	cart, err := s.find(ctx, scope)
	if err != nil {
		if ent.IsNotFound(err) {
			return snapshot, nil
		}
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	lines, err := s.client.OrderItem.Query().
		Where(orderitem.OrderIDEQ(cart.ID)).
		Order(ent.Asc(orderitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}

	snapshot.OrderID = cart.ID
	snapshot.DeliveryType = cart.DeliveryType
	snapshot.ScheduledFor = cart.ScheduledFor
	snapshot.Notes = userNotes(cart)
	if cart.LocationAddress != nil {
		snapshot.Address = *cart.LocationAddress
	}
	snapshot.Subtotal = cart.Subtotal
	snapshot.DeliveryPrice = cart.DeliveryPrice
	snapshot.Total = cart.Total

	for _, line := range lines {
		cartLine := models.CartLine{
			LineID:    line.ID,
			ItemID:    line.ItemID,
			Name:      line.NameAtTime,
			Quantity:  line.Quantity,
			UnitPrice: line.PriceAtTime,
			LineTotal: line.PriceAtTime.Mul(decimal.NewFromInt(int64(line.Quantity))),
		}
		if line.Notes != nil {
			cartLine.Notes = *line.Notes
		}
		snapshot.Lines = append(snapshot.Lines, cartLine)
	}

	return snapshot, nil
}

// find returns the scope's cart row or ent's not-found error.
func (s *CartService) find(ctx context.Context, scope models.CartScope) (*ent.Order, error) {
	return s.client.Order.Query().
		Where(
			order.BusinessIDEQ(scope.BusinessID),
			order.UserIDEQ(scope.OwnerUserID),
			order.CustomerPhoneNumberEQ(scope.CustomerPhone),
			order.StatusEQ(order.StatusCart),
		).
		Only(ctx)
}

// lockCartForScope locks the scope's cart row for the transaction.
func (s *CartService) lockCartForScope(ctx context.Context, tx *ent.Tx, scope models.CartScope) (*ent.Order, error) {
	if err := validateCartScope(scope); err != nil {
		return nil, err
	}
	locked, err := tx.Order.Query().
		Where(
			order.BusinessIDEQ(scope.BusinessID),
			order.UserIDEQ(scope.OwnerUserID),
			order.CustomerPhoneNumberEQ(scope.CustomerPhone),
			order.StatusEQ(order.StatusCart),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}
	return locked, nil
}

// lockCart locks a cart row by id, failing when it is no longer in cart
// status (a concurrent confirmation won).
func lockCart(ctx context.Context, tx *ent.Tx, cartID string) (*ent.Order, error) {
	locked, err := tx.Order.Query().
		Where(
			order.IDEQ(cartID),
			order.StatusEQ(order.StatusCart),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}
	return locked, nil
}

// addableItem validates that an item can be added to a cart in this scope:
// tenant match, owner scope match, not hidden or deleted, and currently
// available.
func (s *CartService) addableItem(ctx context.Context, tx *ent.Tx, scope models.CartScope, itemID string) (*ent.Item, error) {
	it, err := tx.Item.Query().
		Where(
			item.IDEQ(itemID),
			item.BusinessIDEQ(scope.BusinessID),
			item.DeletedAtIsNil(),
			item.AvailabilityNEQ(item.AvailabilityHidden),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	if it.OwnerUserID != nil && *it.OwnerUserID != scope.OwnerUserID {
		return nil, ErrNotFound
	}
	if it.Availability != item.AvailabilityAvailable {
		return nil, NewValidationError("item_id", "item is currently unavailable")
	}
	return it, nil
}

// repriceCart refreshes line prices from the catalog and recomputes the
// cart's subtotal and total. Lines whose item vanished keep their snapshot.
func repriceCart(ctx context.Context, tx *ent.Tx, cart *ent.Order) error {
	lines, err := tx.OrderItem.Query().
		Where(orderitem.OrderIDEQ(cart.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query cart lines: %w", err)
	}

	itemIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		itemIDs = append(itemIDs, line.ItemID)
	}
	currentPrices := make(map[string]decimal.Decimal, len(itemIDs))
	if len(itemIDs) > 0 {
		items, err := tx.Item.Query().
			Where(
				item.IDIn(itemIDs...),
				item.DeletedAtIsNil(),
			).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to query items: %w", err)
		}
		for _, it := range items {
			currentPrices[it.ID] = it.Price
		}
	}

	subtotal := decimal.NewFromInt(0)
	for _, line := range lines {
		price := line.PriceAtTime
		if current, ok := currentPrices[line.ItemID]; ok && !current.Equal(price) {
			if err := line.Update().SetPriceAtTime(current).Exec(ctx); err != nil {
				return fmt.Errorf("failed to reprice cart line: %w", err)
			}
			price = current
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	err = tx.Order.UpdateOneID(cart.ID).
		SetSubtotal(subtotal).
		SetTotal(subtotal.Add(cart.DeliveryPrice)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update cart totals: %w", err)
	}
	return nil
}

// userNotes strips the cart sentinel from an order's notes.
func userNotes(o *ent.Order) string {
	if o.Notes == nil {
		return ""
	}
	return strings.TrimPrefix(*o.Notes, cartNotesSentinel)
}

func validateCartScope(scope models.CartScope) error {
	if scope.BusinessID == "" {
		return NewValidationError("business_id", "required")
	}
	if scope.OwnerUserID == "" {
		return NewValidationError("owner_user_id", "required")
	}
	if scope.CustomerPhone == "" {
		return NewValidationError("customer_phone", "required")
	}
	return nil
}
