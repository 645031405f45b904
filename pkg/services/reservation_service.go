package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
	enttable "github.com/vendrahq/vendra/ent/table"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

// reservationTransitions is the reservation state machine; confirmed is the
// only non-terminal state.
var reservationTransitions = map[reservation.Status][]reservation.Status{
	reservation.StatusConfirmed: {reservation.StatusCancelled, reservation.StatusCompleted, reservation.StatusNoShow},
}

// ReservationService allocates table slots. Availability is derived by
// querying confirmed reservations; the partial unique index on
// (table_id, date, time) makes concurrent creators race safely.
type ReservationService struct {
	client *ent.Client
}

// NewReservationService creates a new ReservationService
func NewReservationService(client *ent.Client) *ReservationService {
	return &ReservationService{client: client}
}

// AvailableForSlot returns the active tables free for one slot, filtered by
// capacity and position preference, ordered by table number.
func (s *ReservationService) AvailableForSlot(ctx context.Context, q models.SlotQuery) ([]*ent.Table, error) {
	if q.OwnerUserID == "" {
		return nil, NewValidationError("owner_user_id", "required")
	}
	date, err := normalizeDate(q.Date)
	if err != nil {
		return nil, NewValidationError("date", "must be YYYY-MM-DD")
	}
	slot, err := normalizeClock(q.Time)
	if err != nil {
		return nil, NewValidationError("time", "must be HH:MM")
	}

	tables, err := s.CandidateTables(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return []*ent.Table{}, nil
	}

	occupied, err := s.occupiedAt(ctx, tables, date, slot)
	if err != nil {
		return nil, err
	}

	available := make([]*ent.Table, 0, len(tables))
	for _, t := range tables {
		if !occupied[t.ID] {
			available = append(available, t)
		}
	}
	return available, nil
}

// CandidateTables lists the active tables matching capacity and position,
// ordered by table number. Occupancy is not considered.
func (s *ReservationService) CandidateTables(ctx context.Context, q models.SlotQuery) ([]*ent.Table, error) {
	if q.Guests != nil && *q.Guests < 1 {
		return nil, NewValidationError("guests", "must be at least 1")
	}

	query := s.client.Table.Query().
		Where(
			enttable.OwnerUserIDEQ(q.OwnerUserID),
			enttable.IsActiveEQ(true),
		)
	if q.Guests != nil {
		query = query.Where(
			enttable.MinSeatsLTE(*q.Guests),
			enttable.MaxSeatsGTE(*q.Guests),
		)
	}

	tables, err := query.Order(ent.Asc(enttable.FieldTableNumber)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}

	if q.PositionPref != "" {
		pref := strings.ToLower(q.PositionPref)
		filtered := tables[:0]
		for _, t := range tables {
			if t.PositionLabel != nil && strings.Contains(strings.ToLower(*t.PositionLabel), pref) {
				filtered = append(filtered, t)
			}
		}
		tables = filtered
	}
	return tables, nil
}

// occupiedAt returns the IDs among tables that hold a confirmed reservation
// for the slot.
func (s *ReservationService) occupiedAt(ctx context.Context, tables []*ent.Table, date, slot string) (map[string]bool, error) {
	tableIDs := make([]string, 0, len(tables))
	for _, t := range tables {
		tableIDs = append(tableIDs, t.ID)
	}
	taken, err := s.client.Reservation.Query().
		Where(
			reservation.TableIDIn(tableIDs...),
			reservation.ReservationDateEQ(date),
			reservation.ReservationTimeEQ(slot),
			reservation.StatusEQ(reservation.StatusConfirmed),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}

	occupied := make(map[string]bool, len(taken))
	for _, r := range taken {
		if r.TableID != nil {
			occupied[*r.TableID] = true
		}
	}
	return occupied, nil
}

// Create books a table. An explicit table number is honored when the table
// fits; otherwise the lowest-numbered free table with capacity is chosen.
// Losing a concurrent race for the slot returns ErrSlotTaken.
func (s *ReservationService) Create(ctx context.Context, req models.CreateReservationRequest) (*ent.Reservation, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.OwnerUserID == "" {
		return nil, NewValidationError("owner_user_id", "required")
	}
	if req.CustomerPhone == "" {
		return nil, NewValidationError("customer_phone", "required")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, NewValidationError("customer_name", "required")
	}
	date, err := normalizeDate(req.ReservationDate)
	if err != nil {
		return nil, NewValidationError("reservation_date", "must be YYYY-MM-DD")
	}
	slot, err := normalizeClock(req.ReservationTime)
	if err != nil {
		return nil, NewValidationError("reservation_time", "must be HH:MM")
	}
	if req.NumberOfGuests != nil && *req.NumberOfGuests < 1 {
		return nil, NewValidationError("number_of_guests", "must be at least 1")
	}

	if req.TableNumber > 0 {
		t, err := s.client.Table.Query().
			Where(
				enttable.OwnerUserIDEQ(req.OwnerUserID),
				enttable.TableNumberEQ(req.TableNumber),
				enttable.IsActiveEQ(true),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to query table: %w", err)
		}
		if req.NumberOfGuests != nil && (*req.NumberOfGuests < t.MinSeats || *req.NumberOfGuests > t.MaxSeats) {
			return nil, NewValidationError("number_of_guests",
				fmt.Sprintf("table %d seats %d to %d guests", t.TableNumber, t.MinSeats, t.MaxSeats))
		}
		return s.insert(ctx, req, t, date, slot)
	}

	candidates, err := s.CandidateTables(ctx, models.SlotQuery{
		OwnerUserID:  req.OwnerUserID,
		Guests:       req.NumberOfGuests,
		PositionPref: req.PositionPref,
	})
	if err != nil {
		return nil, err
	}
	// No table can ever seat this party; a fully booked slot is ErrSlotTaken
	// so the caller can suggest another time instead.
	if len(candidates) == 0 {
		return nil, ErrNoTablesAvailable
	}

	occupied, err := s.occupiedAt(ctx, candidates, date, slot)
	if err != nil {
		return nil, err
	}

	// Losing a slot race moves on to the next candidate
	for _, t := range candidates {
		if occupied[t.ID] {
			continue
		}
		res, err := s.insert(ctx, req, t, date, slot)
		if errors.Is(err, ErrSlotTaken) {
			continue
		}
		return res, err
	}
	return nil, ErrSlotTaken
}

// insert writes the confirmed reservation row; the slot index turns races
// into constraint errors.
func (s *ReservationService) insert(ctx context.Context, req models.CreateReservationRequest, t *ent.Table, date, slot string) (*ent.Reservation, error) {
	builder := s.client.Reservation.Create().
		SetID(uuid.New().String()).
		SetBusinessUserID(req.BusinessID).
		SetOwnerUserID(req.OwnerUserID).
		SetTableID(t.ID).
		SetCustomerPhoneNumber(req.CustomerPhone).
		SetCustomerName(strings.TrimSpace(req.CustomerName)).
		SetReservationDate(date).
		SetReservationTime(slot).
		SetReservationType(reservation.ReservationTypeTable).
		SetStatus(reservation.StatusConfirmed)
	if req.NumberOfGuests != nil {
		builder.SetNumberOfGuests(*req.NumberOfGuests)
	}
	if req.Notes != "" {
		builder.SetNotes(req.Notes)
	}

	res, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return res, nil
}

// UpdateStatus moves a reservation out of confirmed. Terminal states are
// immutable; cancelling or completing releases the slot by derivation.
func (s *ReservationService) UpdateStatus(ctx context.Context, reservationID string, status reservation.Status) (*ent.Reservation, error) {
	if err := reservation.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", "unknown status")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Reservation.Query().
		Where(reservation.IDEQ(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock reservation: %w", err)
	}

	if !reservationTransitionAllowed(res.Status, status) {
		return nil, ErrInvalidTransition
	}

	updated, err := res.Update().SetStatus(status).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// CancelByCustomer cancels a reservation on behalf of its customer,
// enforcing ownership and the cancellation window in the business timezone.
func (s *ReservationService) CancelByCustomer(ctx context.Context, reservationID, customerPhone string) (*ent.Reservation, error) {
	if customerPhone == "" {
		return nil, NewValidationError("customer_phone", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Reservation.Query().
		Where(
			reservation.IDEQ(reservationID),
			reservation.CustomerPhoneNumberEQ(customerPhone),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock reservation: %w", err)
	}

	if res.Status != reservation.StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	deadline, err := s.cancellationDeadline(ctx, tx.Client(), res)
	if err != nil {
		return nil, err
	}
	if time.Now().After(deadline) {
		return nil, ErrCancelDeadlinePassed
	}

	updated, err := res.Update().SetStatus(reservation.StatusCancelled).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// CancellationDeadline computes the instant until which the customer may
// cancel this reservation.
func (s *ReservationService) CancellationDeadline(ctx context.Context, res *ent.Reservation) (time.Time, error) {
	return s.cancellationDeadline(ctx, s.client, res)
}

// cancellationDeadline resolves the reservation instant in the business
// timezone and subtracts the widest applicable cancellation window.
func (s *ReservationService) cancellationDeadline(ctx context.Context, client *ent.Client, res *ent.Reservation) (time.Time, error) {
	business, err := client.User.Query().
		Where(user.IDEQ(res.BusinessUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("failed to query business: %w", err)
	}

	loc, err := time.LoadLocation(business.Timezone)
	if err != nil {
		loc = time.UTC
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", res.ReservationDate+" "+res.ReservationTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse reservation time: %w", err)
	}

	windowHours := business.DefaultCancelableBeforeHours
	lines, err := client.ReservationItem.Query().
		Where(reservationitem.ReservationIDEQ(res.ID)).
		All(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query reservation items: %w", err)
	}
	if len(lines) > 0 {
		itemIDs := make([]string, 0, len(lines))
		for _, line := range lines {
			itemIDs = append(itemIDs, line.ItemID)
		}
		items, err := client.Item.Query().
			Where(item.IDIn(itemIDs...)).
			All(ctx)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to query items: %w", err)
		}
		for _, it := range items {
			if it.CancelableBeforeHours != nil && *it.CancelableBeforeHours > windowHours {
				windowHours = *it.CancelableBeforeHours
			}
		}
	}

	return at.Add(-time.Duration(windowHours) * time.Hour), nil
}

// Get retrieves a reservation by ID
func (s *ReservationService) Get(ctx context.Context, reservationID string) (*ent.Reservation, error) {
	res, err := s.client.Reservation.Query().
		Where(reservation.IDEQ(reservationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// GetForCustomer retrieves a reservation scoped to its customer
func (s *ReservationService) GetForCustomer(ctx context.Context, reservationID, customerPhone string) (*ent.Reservation, error) {
	res, err := s.client.Reservation.Query().
		Where(
			reservation.IDEQ(reservationID),
			reservation.CustomerPhoneNumberEQ(customerPhone),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// List lists reservations with filtering and pagination
func (s *ReservationService) List(ctx context.Context, filters models.ReservationFilters) (*models.ReservationListResponse, error) {
	query := s.client.Reservation.Query()

	if filters.BusinessID != "" {
		query = query.Where(reservation.BusinessUserIDEQ(filters.BusinessID))
	}
	if filters.OwnerUserID != "" {
		query = query.Where(reservation.OwnerUserIDEQ(filters.OwnerUserID))
	}
	if filters.CustomerPhone != "" {
		query = query.Where(reservation.CustomerPhoneNumberEQ(filters.CustomerPhone))
	}
	if filters.Date != "" {
		query = query.Where(reservation.ReservationDateEQ(filters.Date))
	}
	if filters.Status != "" {
		query = query.Where(reservation.StatusEQ(filters.Status))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	reservations, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(reservation.FieldReservationDate), ent.Asc(reservation.FieldReservationTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return &models.ReservationListResponse{
		Reservations: reservations,
		TotalCount:   totalCount,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// ListBetween returns a tenant's reservations with dates inside [from, to],
// for the dashboard calendar.
func (s *ReservationService) ListBetween(ctx context.Context, businessID, fromDate, toDate string) ([]*ent.Reservation, error) {
	reservations, err := s.client.Reservation.Query().
		Where(
			reservation.BusinessUserIDEQ(businessID),
			reservation.ReservationDateGTE(fromDate),
			reservation.ReservationDateLTE(toDate),
		).
		Order(ent.Asc(reservation.FieldReservationDate), ent.Asc(reservation.FieldReservationTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// AddItem pre-orders an item alongside a confirmed reservation, snapshotting
// its price.
func (s *ReservationService) AddItem(ctx context.Context, reservationID string, req models.AddReservationItemRequest) (*ent.ReservationItem, error) {
	if req.ItemID == "" {
		return nil, NewValidationError("item_id", "required")
	}
	if req.Quantity < 1 {
		return nil, NewValidationError("quantity", "must be at least 1")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Reservation.Query().
		Where(reservation.IDEQ(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock reservation: %w", err)
	}
	if res.Status != reservation.StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	it, err := tx.Item.Query().
		Where(
			item.IDEQ(req.ItemID),
			item.BusinessIDEQ(res.BusinessUserID),
			item.DeletedAtIsNil(),
			item.AvailabilityEQ(item.AvailabilityAvailable),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	builder := tx.ReservationItem.Create().
		SetID(uuid.New().String()).
		SetReservationID(res.ID).
		SetItemID(it.ID).
		SetQuantity(req.Quantity).
		SetPriceAtTime(it.Price).
		SetNameAtTime(it.Name)
	if req.Notes != "" {
		builder.SetNotes(req.Notes)
	}

	line, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return line, nil
}

// RemoveItem removes a pre-ordered line from a confirmed reservation
func (s *ReservationService) RemoveItem(ctx context.Context, reservationID, lineID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Reservation.Query().
		Where(reservation.IDEQ(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock reservation: %w", err)
	}
	if res.Status != reservation.StatusConfirmed {
		return ErrInvalidTransition
	}

	deleted, err := tx.ReservationItem.Delete().
		Where(
			reservationitem.IDEQ(lineID),
			reservationitem.ReservationIDEQ(res.ID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete reservation item: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListItems lists a reservation's pre-ordered lines
func (s *ReservationService) ListItems(ctx context.Context, reservationID string) ([]*ent.ReservationItem, error) {
	lines, err := s.client.ReservationItem.Query().
		Where(reservationitem.ReservationIDEQ(reservationID)).
		Order(ent.Asc(reservationitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservation items: %w", err)
	}
	return lines, nil
}

func reservationTransitionAllowed(from, to reservation.Status) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// normalizeDate validates and echoes a YYYY-MM-DD date.
func normalizeDate(v string) (string, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// normalizeClock validates an HH:MM string and zero-pads the hour.
func normalizeClock(v string) (string, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}
