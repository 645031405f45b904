package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/menu"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/servicecategory"
	enttable "github.com/vendrahq/vendra/ent/table"
	"github.com/vendrahq/vendra/pkg/models"
)

// CatalogService manages what a business sells and when it sells it: menus,
// categories, items, dining tables, and opening hours.
type CatalogService struct {
	client *ent.Client
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(client *ent.Client) *CatalogService {
	return &CatalogService{client: client}
}

// CreateMenu creates a menu
func (s *CatalogService) CreateMenu(ctx context.Context, req models.CreateMenuRequest) (*ent.Menu, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.Menu.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetName(req.Name)
	if req.OwnerUserID != "" {
		builder.SetOwnerUserID(req.OwnerUserID)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return m, nil
}

// GetMenu retrieves a menu by ID
func (s *CatalogService) GetMenu(ctx context.Context, menuID string) (*ent.Menu, error) {
	m, err := s.client.Menu.Get(ctx, menuID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return m, nil
}

// UpdateMenu applies the non-nil fields of the request to a menu
func (s *CatalogService) UpdateMenu(ctx context.Context, menuID string, req models.UpdateMenuRequest) (*ent.Menu, error) {
	update := s.client.Menu.UpdateOneID(menuID)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	m, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return m, nil
}

// ListMenus lists a tenant's active menus
func (s *CatalogService) ListMenus(ctx context.Context, businessID string, includeInactive bool) ([]*ent.Menu, error) {
	query := s.client.Menu.Query().Where(menu.BusinessIDEQ(businessID))
	if !includeInactive {
		query = query.Where(menu.IsActiveEQ(true))
	}
	menus, err := query.Order(ent.Asc(menu.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// CreateCategory creates a service category
func (s *CatalogService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*ent.ServiceCategory, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.ServiceCategory.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetName(req.Name)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

// ListCategories lists a tenant's service categories
func (s *CatalogService) ListCategories(ctx context.Context, businessID string) ([]*ent.ServiceCategory, error) {
	categories, err := s.client.ServiceCategory.Query().
		Where(servicecategory.BusinessIDEQ(businessID)).
		Order(ent.Asc(servicecategory.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateItem creates a catalog item
func (s *CatalogService) CreateItem(ctx context.Context, req models.CreateItemRequest) (*ent.Item, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Price.IsNegative() {
		return nil, NewValidationError("price", "must not be negative")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return nil, NewValidationError("stock_quantity", "must not be negative")
	}

	builder := s.client.Item.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetName(req.Name).
		SetPrice(req.Price).
		SetIsSchedulable(req.IsSchedulable).
		SetMinScheduleHours(req.MinScheduleHours)

	if req.OwnerUserID != "" {
		builder.SetOwnerUserID(req.OwnerUserID)
	}
	if req.MenuID != "" {
		builder.SetMenuID(req.MenuID)
	}
	if req.CategoryID != "" {
		builder.SetCategoryID(req.CategoryID)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.ItemType != "" {
		builder.SetItemType(req.ItemType)
	}
	if req.Cost != nil {
		builder.SetCost(*req.Cost)
	}
	if req.PreparationTimeMinutes != nil {
		builder.SetPreparationTimeMinutes(*req.PreparationTimeMinutes)
	}
	if req.DurationMinutes != nil {
		builder.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.CancelableBeforeHours != nil {
		builder.SetCancelableBeforeHours(*req.CancelableBeforeHours)
	}
	if req.StockQuantity != nil {
		builder.SetStockQuantity(*req.StockQuantity)
	}
	if len(req.DaysAvailable) > 0 {
		builder.SetDaysAvailable(req.DaysAvailable)
	}
	if req.AvailableFrom != "" {
		builder.SetAvailableFrom(req.AvailableFrom)
	}
	if req.AvailableTo != "" {
		builder.SetAvailableTo(req.AvailableTo)
	}

	it, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return it, nil
}

// GetItem retrieves an item by ID, excluding soft-deleted rows
func (s *CatalogService) GetItem(ctx context.Context, itemID string) (*ent.Item, error) {
	it, err := s.client.Item.Query().
		Where(
			item.IDEQ(itemID),
			item.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return it, nil
}

// UpdateItem applies the non-nil fields of the request to an item
func (s *CatalogService) UpdateItem(ctx context.Context, itemID string, req models.UpdateItemRequest) (*ent.Item, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, NewValidationError("price", "must not be negative")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return nil, NewValidationError("stock_quantity", "must not be negative")
	}

	update := s.client.Item.UpdateOneID(itemID)
	if req.MenuID != nil {
		update.SetMenuID(*req.MenuID)
	}
	if req.CategoryID != nil {
		update.SetCategoryID(*req.CategoryID)
	}
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Price != nil {
		update.SetPrice(*req.Price)
	}
	if req.Cost != nil {
		update.SetCost(*req.Cost)
	}
	if req.PreparationTimeMinutes != nil {
		update.SetPreparationTimeMinutes(*req.PreparationTimeMinutes)
	}
	if req.DurationMinutes != nil {
		update.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.IsSchedulable != nil {
		update.SetIsSchedulable(*req.IsSchedulable)
	}
	if req.MinScheduleHours != nil {
		update.SetMinScheduleHours(*req.MinScheduleHours)
	}
	if req.CancelableBeforeHours != nil {
		update.SetCancelableBeforeHours(*req.CancelableBeforeHours)
	}
	if req.StockQuantity != nil {
		update.SetStockQuantity(*req.StockQuantity)
	}
	if req.Availability != nil {
		update.SetAvailability(*req.Availability)
	}
	if len(req.DaysAvailable) > 0 {
		update.SetDaysAvailable(req.DaysAvailable)
	}
	if req.AvailableFrom != nil {
		update.SetAvailableFrom(*req.AvailableFrom)
	}
	if req.AvailableTo != nil {
		update.SetAvailableTo(*req.AvailableTo)
	}

	it, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return it, nil
}

// DeleteItem soft-deletes an item. Order lines referencing it keep their
// snapshots.
func (s *CatalogService) DeleteItem(ctx context.Context, itemID string) error {
	err := s.client.Item.UpdateOneID(itemID).
		SetDeletedAt(time.Now()).
		SetAvailability(item.AvailabilityHidden).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ListItems lists items with filtering and pagination
func (s *CatalogService) ListItems(ctx context.Context, filters models.ItemFilters) (*models.ItemListResponse, error) {
	query := s.client.Item.Query()

	if filters.BusinessID != "" {
		query = query.Where(item.BusinessIDEQ(filters.BusinessID))
	}
	if filters.OwnerUserID != "" {
		query = query.Where(item.OwnerUserIDEQ(filters.OwnerUserID))
	}
	if filters.MenuID != "" {
		query = query.Where(item.MenuIDEQ(filters.MenuID))
	}
	if filters.CategoryID != "" {
		query = query.Where(item.CategoryIDEQ(filters.CategoryID))
	}
	if filters.Availability != "" {
		query = query.Where(item.AvailabilityEQ(filters.Availability))
	}
	if !filters.IncludeDeleted {
		query = query.Where(item.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	items, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(item.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &models.ItemListResponse{
		Items:      items,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SearchItems performs the customer-facing catalog search: tenant and owner
// scoped, excluding hidden and soft-deleted rows, full-text matching on name
// and description with a substring fallback.
func (s *CatalogService) SearchItems(ctx context.Context, req models.SearchItemsRequest) ([]*ent.Item, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	term := strings.TrimSpace(req.Query)
	if term == "" {
		return nil, NewValidationError("query", "required")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	query := s.client.Item.Query().
		Where(
			item.BusinessIDEQ(req.BusinessID),
			item.DeletedAtIsNil(),
			item.AvailabilityNEQ(item.AvailabilityHidden),
		)

	// Branch carts see branch items plus unscoped business items
	if req.OwnerUserID != "" && req.OwnerUserID != req.BusinessID {
		query = query.Where(
			item.Or(
				item.OwnerUserIDIsNil(),
				item.OwnerUserIDEQ(req.OwnerUserID),
			),
		)
	} else {
		query = query.Where(item.OwnerUserIDIsNil())
	}

	pattern := "%" + term + "%"
	items, err := query.
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.P(func(b *sql.Builder) {
					b.WriteString("to_tsvector('simple', name || ' ' || COALESCE(description, '')) @@ plainto_tsquery('simple', ").Arg(term).WriteString(")")
				}),
				sql.P(func(b *sql.Builder) {
					b.WriteString("name ILIKE ").Arg(pattern)
				}),
			))
		}).
		Limit(limit).
		Order(ent.Asc(item.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	return items, nil
}

// UpsertOpeningHour sets the opening hours for one (owner, weekday) row
func (s *CatalogService) UpsertOpeningHour(ctx context.Context, req models.UpsertOpeningHourRequest) (*ent.OpeningHour, error) {
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if req.OwnerType == "" {
		return nil, NewValidationError("owner_type", "required")
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, NewValidationError("day_of_week", "must be between 0 and 6")
	}
	if !req.IsClosed {
		if _, err := parseClock(req.OpenTime); err != nil {
			return nil, NewValidationError("open_time", "must be HH:MM")
		}
		if _, err := parseClock(req.CloseTime); err != nil {
			return nil, NewValidationError("close_time", "must be HH:MM")
		}
	}
	if req.LastOrderTime != "" {
		if _, err := parseClock(req.LastOrderTime); err != nil {
			return nil, NewValidationError("last_order_time", "must be HH:MM")
		}
	}

	existing, err := s.client.OpeningHour.Query().
		Where(
			openinghour.OwnerTypeEQ(req.OwnerType),
			openinghour.OwnerIDEQ(req.OwnerID),
			openinghour.DayOfWeekEQ(req.DayOfWeek),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query opening hour: %w", err)
	}

	if existing != nil {
		update := existing.Update().SetIsClosed(req.IsClosed)
		if req.OpenTime != "" {
			update.SetOpenTime(req.OpenTime)
		}
		if req.CloseTime != "" {
			update.SetCloseTime(req.CloseTime)
		}
		if req.LastOrderTime != "" {
			update.SetLastOrderTime(req.LastOrderTime)
		}
		oh, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update opening hour: %w", err)
		}
		return oh, nil
	}

	builder := s.client.OpeningHour.Create().
		SetID(uuid.New().String()).
		SetOwnerType(req.OwnerType).
		SetOwnerID(req.OwnerID).
		SetDayOfWeek(req.DayOfWeek).
		SetIsClosed(req.IsClosed)
	if req.OpenTime != "" {
		builder.SetOpenTime(req.OpenTime)
	}
	if req.CloseTime != "" {
		builder.SetCloseTime(req.CloseTime)
	}
	if req.LastOrderTime != "" {
		builder.SetLastOrderTime(req.LastOrderTime)
	}

	oh, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create opening hour: %w", err)
	}
	return oh, nil
}

// EffectiveHours resolves the opening hours for a weekday: the branch row
// when the fulfilling principal has one, the business row otherwise.
func (s *CatalogService) EffectiveHours(ctx context.Context, businessID, ownerUserID string, dayOfWeek int) (*ent.OpeningHour, error) {
	if ownerUserID != "" && ownerUserID != businessID {
		oh, err := s.client.OpeningHour.Query().
			Where(
				openinghour.OwnerTypeEQ(openinghour.OwnerTypeBranch),
				openinghour.OwnerIDEQ(ownerUserID),
				openinghour.DayOfWeekEQ(dayOfWeek),
			).
			Only(ctx)
		if err == nil {
			return oh, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query branch hours: %w", err)
		}
	}

	oh, err := s.client.OpeningHour.Query().
		Where(
			openinghour.OwnerTypeEQ(openinghour.OwnerTypeBusiness),
			openinghour.OwnerIDEQ(businessID),
			openinghour.DayOfWeekEQ(dayOfWeek),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query business hours: %w", err)
	}
	return oh, nil
}

// ListOpeningHours lists all weekday rows for one owner
func (s *CatalogService) ListOpeningHours(ctx context.Context, ownerType openinghour.OwnerType, ownerID string) ([]*ent.OpeningHour, error) {
	hours, err := s.client.OpeningHour.Query().
		Where(
			openinghour.OwnerTypeEQ(ownerType),
			openinghour.OwnerIDEQ(ownerID),
		).
		Order(ent.Asc(openinghour.FieldDayOfWeek)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list opening hours: %w", err)
	}
	return hours, nil
}

// IsOpenAt reports whether the business (or branch) is open at the given
// instant, already expressed in the business timezone. No hours row for the
// weekday means closed.
func (s *CatalogService) IsOpenAt(ctx context.Context, businessID, ownerUserID string, at time.Time) (bool, error) {
	oh, err := s.EffectiveHours(ctx, businessID, ownerUserID, int(at.Weekday()))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return hoursContain(oh, at), nil
}

// LastOrderTimeFor returns the last-order cutoff for the weekday, empty when
// none is configured.
func (s *CatalogService) LastOrderTimeFor(ctx context.Context, businessID, ownerUserID string, dayOfWeek int) (string, error) {
	oh, err := s.EffectiveHours(ctx, businessID, ownerUserID, dayOfWeek)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if oh.LastOrderTime == nil {
		return "", nil
	}
	return *oh.LastOrderTime, nil
}

// CreateTable creates a dining table
func (s *CatalogService) CreateTable(ctx context.Context, req models.CreateTableRequest) (*ent.Table, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.OwnerUserID == "" {
		return nil, NewValidationError("owner_user_id", "required")
	}
	if req.TableNumber <= 0 {
		return nil, NewValidationError("table_number", "must be positive")
	}
	minSeats := req.MinSeats
	if minSeats <= 0 {
		minSeats = 1
	}
	if req.MaxSeats < minSeats {
		return nil, NewValidationError("max_seats", "must be at least min_seats")
	}

	builder := s.client.Table.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetOwnerUserID(req.OwnerUserID).
		SetTableNumber(req.TableNumber).
		SetMinSeats(minSeats).
		SetMaxSeats(req.MaxSeats)
	if req.PositionLabel != "" {
		builder.SetPositionLabel(req.PositionLabel)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return t, nil
}

// UpdateTable applies the non-nil fields of the request to a table
func (s *CatalogService) UpdateTable(ctx context.Context, tableID string, req models.UpdateTableRequest) (*ent.Table, error) {
	update := s.client.Table.UpdateOneID(tableID)
	if req.MinSeats != nil {
		update.SetMinSeats(*req.MinSeats)
	}
	if req.MaxSeats != nil {
		update.SetMaxSeats(*req.MaxSeats)
	}
	if req.PositionLabel != nil {
		update.SetPositionLabel(*req.PositionLabel)
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	t, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return t, nil
}

// GetTable retrieves a table by ID
func (s *CatalogService) GetTable(ctx context.Context, tableID string) (*ent.Table, error) {
	t, err := s.client.Table.Get(ctx, tableID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return t, nil
}

// TableNumbers resolves table IDs to their display numbers. Unknown IDs are
// simply absent from the result.
func (s *CatalogService) TableNumbers(ctx context.Context, tableIDs []string) (map[string]int, error) {
	if len(tableIDs) == 0 {
		return map[string]int{}, nil
	}
	tables, err := s.client.Table.Query().
		Where(enttable.IDIn(tableIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve table numbers: %w", err)
	}
	numbers := make(map[string]int, len(tables))
	for _, t := range tables {
		numbers[t.ID] = t.TableNumber
	}
	return numbers, nil
}

// ListTables lists the active tables of a fulfilling principal ordered by
// table number.
func (s *CatalogService) ListTables(ctx context.Context, ownerUserID string) ([]*ent.Table, error) {
	tables, err := s.client.Table.Query().
		Where(
			enttable.OwnerUserIDEQ(ownerUserID),
			enttable.IsActiveEQ(true),
		).
		Order(ent.Asc(enttable.FieldTableNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// parseClock parses an HH:MM string into minutes since midnight.
func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// hoursContain reports whether the instant falls inside the row's open
// window. Windows with close before open span midnight.
func hoursContain(oh *ent.OpeningHour, at time.Time) bool {
	if oh.IsClosed || oh.OpenTime == nil || oh.CloseTime == nil {
		return false
	}
	open, err := parseClock(*oh.OpenTime)
	if err != nil {
		return false
	}
	closeAt, err := parseClock(*oh.CloseTime)
	if err != nil {
		return false
	}
	minute := at.Hour()*60 + at.Minute()
	if closeAt <= open {
		return minute >= open || minute < closeAt
	}
	return minute >= open && minute < closeAt
}
