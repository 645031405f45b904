package models

import (
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/openinghour"
)

// CreateItemRequest contains fields for creating a catalog item.
type CreateItemRequest struct {
	BusinessID             string           `json:"business_id"`
	OwnerUserID            string           `json:"owner_user_id,omitempty"`
	MenuID                 string           `json:"menu_id,omitempty"`
	CategoryID             string           `json:"category_id,omitempty"`
	Name                   string           `json:"name"`
	Description            string           `json:"description,omitempty"`
	ItemType               item.ItemType    `json:"item_type,omitempty"`
	Price                  decimal.Decimal  `json:"price"`
	Cost                   *decimal.Decimal `json:"cost,omitempty"`
	PreparationTimeMinutes *int             `json:"preparation_time_minutes,omitempty"`
	DurationMinutes        *int             `json:"duration_minutes,omitempty"`
	IsSchedulable          bool             `json:"is_schedulable,omitempty"`
	MinScheduleHours       int              `json:"min_schedule_hours,omitempty"`
	CancelableBeforeHours  *int             `json:"cancelable_before_hours,omitempty"`
	StockQuantity          *int             `json:"stock_quantity,omitempty"`
	DaysAvailable          []int            `json:"days_available,omitempty"`
	AvailableFrom          string           `json:"available_from,omitempty"`
	AvailableTo            string           `json:"available_to,omitempty"`
}

// UpdateItemRequest contains the mutable fields of an item. Nil pointers
// leave the stored value untouched.
type UpdateItemRequest struct {
	MenuID                 *string            `json:"menu_id,omitempty"`
	CategoryID             *string            `json:"category_id,omitempty"`
	Name                   *string            `json:"name,omitempty"`
	Description            *string            `json:"description,omitempty"`
	Price                  *decimal.Decimal   `json:"price,omitempty"`
	Cost                   *decimal.Decimal   `json:"cost,omitempty"`
	PreparationTimeMinutes *int               `json:"preparation_time_minutes,omitempty"`
	DurationMinutes        *int               `json:"duration_minutes,omitempty"`
	IsSchedulable          *bool              `json:"is_schedulable,omitempty"`
	MinScheduleHours       *int               `json:"min_schedule_hours,omitempty"`
	CancelableBeforeHours  *int               `json:"cancelable_before_hours,omitempty"`
	StockQuantity          *int               `json:"stock_quantity,omitempty"`
	Availability           *item.Availability `json:"availability,omitempty"`
	DaysAvailable          []int              `json:"days_available,omitempty"`
	AvailableFrom          *string            `json:"available_from,omitempty"`
	AvailableTo            *string            `json:"available_to,omitempty"`
}

// ItemFilters contains filtering options for listing items.
type ItemFilters struct {
	BusinessID     string            `json:"business_id,omitempty"`
	OwnerUserID    string            `json:"owner_user_id,omitempty"`
	MenuID         string            `json:"menu_id,omitempty"`
	CategoryID     string            `json:"category_id,omitempty"`
	Availability   item.Availability `json:"availability,omitempty"`
	IncludeDeleted bool              `json:"include_deleted,omitempty"`
	Limit          int               `json:"limit,omitempty"`
	Offset         int               `json:"offset,omitempty"`
}

// ItemListResponse contains a paginated item list.
type ItemListResponse struct {
	Items      []*ent.Item `json:"items"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// SearchItemsRequest is the customer-facing catalog query issued by the
// search_menu_items tool: tenant plus owner scope, free-text term, and an
// optional availability instant.
type SearchItemsRequest struct {
	BusinessID  string `json:"business_id"`
	OwnerUserID string `json:"owner_user_id,omitempty"`
	Query       string `json:"query"`
	Limit       int    `json:"limit,omitempty"`
}

// CreateMenuRequest contains fields for creating a menu.
type CreateMenuRequest struct {
	BusinessID  string `json:"business_id"`
	OwnerUserID string `json:"owner_user_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateMenuRequest contains the mutable fields of a menu.
type UpdateMenuRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CreateCategoryRequest contains fields for creating a service category.
type CreateCategoryRequest struct {
	BusinessID  string `json:"business_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpsertOpeningHourRequest sets the hours for one (owner, weekday) row.
type UpsertOpeningHourRequest struct {
	OwnerType     openinghour.OwnerType `json:"owner_type"`
	OwnerID       string                `json:"owner_id"`
	DayOfWeek     int                   `json:"day_of_week"`
	OpenTime      string                `json:"open_time,omitempty"`
	CloseTime     string                `json:"close_time,omitempty"`
	IsClosed      bool                  `json:"is_closed,omitempty"`
	LastOrderTime string                `json:"last_order_time,omitempty"`
}

// CreateTableRequest contains fields for creating a dining table.
type CreateTableRequest struct {
	BusinessID    string `json:"business_id"`
	OwnerUserID   string `json:"owner_user_id"`
	TableNumber   int    `json:"table_number"`
	MinSeats      int    `json:"min_seats,omitempty"`
	MaxSeats      int    `json:"max_seats"`
	PositionLabel string `json:"position_label,omitempty"`
}

// UpdateTableRequest contains the mutable fields of a table.
type UpdateTableRequest struct {
	MinSeats      *int    `json:"min_seats,omitempty"`
	MaxSeats      *int    `json:"max_seats,omitempty"`
	PositionLabel *string `json:"position_label,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
