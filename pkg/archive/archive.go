// Package archive moves terminated orders out of the operational store into
// the append-only order-log cold store. The move is write-then-delete: the
// document lands in the cold store first, then the operational rows are
// removed in one transaction, so a crash between the two leaves a retryable
// duplicate rather than a lost order.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
)

var (
	// ErrNotFound is returned when an order exists in neither store.
	ErrNotFound = errors.New("order not found in either store")

	// ErrNotTerminal is returned when the order is still live.
	ErrNotTerminal = errors.New("order is not in a terminal status")
)

// LogStore is the cold store for archived orders. Implementations must be
// safe for concurrent use; Save must be idempotent on order_id.
type LogStore interface {
	// Save writes the document, replacing any existing one for the same
	// order_id.
	Save(ctx context.Context, log *OrderLog) error

	// Get returns an archived order. Returns ErrNotFound when absent.
	Get(ctx context.Context, orderID string) (*OrderLog, error)

	// ListForBusiness returns a tenant's archived orders, newest first.
	ListForBusiness(ctx context.Context, businessID string, limit, offset int) ([]*OrderLog, error)
}

// Archiver performs the operational-to-cold move for single orders. Batch
// selection and scheduling belong to the caller.
type Archiver struct {
	client *ent.Client
	store  LogStore
}

// NewArchiver creates a new Archiver.
func NewArchiver(client *ent.Client, store LogStore) *Archiver {
	return &Archiver{client: client, store: store}
}

// Archive moves one terminated order to the cold store. Calling it again
// after a partial failure finishes the move: a missing operational row with
// an existing log means a previous run already completed.
func (a *Archiver) Archive(ctx context.Context, orderID string) error {
	o, err := a.client.Order.Query().
		Where(order.IDEQ(orderID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if _, lookupErr := a.store.Get(ctx, orderID); lookupErr == nil {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrNotFound, orderID)
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if o.Status != order.StatusCompleted && o.Status != order.StatusCancelled {
		return fmt.Errorf("%w: %s is %s", ErrNotTerminal, orderID, o.Status)
	}

	items, err := a.client.OrderItem.Query().
		Where(orderitem.OrderIDEQ(orderID)).
		Order(ent.Asc(orderitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}

	history, err := a.client.OrderStatusHistory.Query().
		Where(orderstatushistory.OrderIDEQ(orderID)).
		Order(ent.Asc(orderstatushistory.FieldChangedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load status history: %w", err)
	}

	// Cold store first. If the delete below fails, the next run replaces
	// the same document and retries the delete.
	if err := a.store.Save(ctx, NewOrderLog(o, items, history, time.Now().UTC())); err != nil {
		return fmt.Errorf("failed to write order log: %w", err)
	}

	tx, err := a.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.OrderStatusHistory.Delete().
		Where(orderstatushistory.OrderIDEQ(orderID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete status history: %w", err)
	}
	if _, err := tx.OrderItem.Delete().
		Where(orderitem.OrderIDEQ(orderID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if err := tx.Order.DeleteOneID(orderID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
