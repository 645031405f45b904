// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BotIntegrationsColumns holds the columns for the "bot_integrations" table.
	BotIntegrationsColumns = []*schema.Column{
		{Name: "integration_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"whatsapp", "telegram", "instagram", "facebook"}},
		{Name: "provider_account_id", Type: field.TypeString},
		{Name: "access_token", Type: field.TypeString},
		{Name: "verify_token", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BotIntegrationsTable holds the schema information for the "bot_integrations" table.
	BotIntegrationsTable = &schema.Table{
		Name:       "bot_integrations",
		Columns:    BotIntegrationsColumns,
		PrimaryKey: []*schema.Column{BotIntegrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "botintegration_platform_provider_account_id",
				Unique:  true,
				Columns: []*schema.Column{BotIntegrationsColumns[2], BotIntegrationsColumns[3]},
			},
			{
				Name:    "botintegration_business_id",
				Unique:  false,
				Columns: []*schema.Column{BotIntegrationsColumns[1]},
			},
		},
	}
	// BusinessAddonsColumns holds the columns for the "business_addons" table.
	BusinessAddonsColumns = []*schema.Column{
		{Name: "addon_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "addon_key", Type: field.TypeEnum, Enums: []string{"base_bot", "table_reservations", "scheduled_requests", "support_tickets"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "price_override", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BusinessAddonsTable holds the schema information for the "business_addons" table.
	BusinessAddonsTable = &schema.Table{
		Name:       "business_addons",
		Columns:    BusinessAddonsColumns,
		PrimaryKey: []*schema.Column{BusinessAddonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "businessaddon_business_id_addon_key",
				Unique:  true,
				Columns: []*schema.Column{BusinessAddonsColumns[1], BusinessAddonsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sender_type", Type: field.TypeEnum, Enums: []string{"customer", "bot", "employee", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "media_url", Type: field.TypeString, Nullable: true},
		{Name: "provider_message_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_sessions_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[6]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[6], ChatMessagesColumns[5]},
			},
			{
				Name:    "chatmessage_provider_message_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"whatsapp", "telegram", "instagram", "facebook"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"bot_active", "human_locked", "closed"}, Default: "bot_active"},
		{Name: "assigned_employee_id", Type: field.TypeString, Nullable: true},
		{Name: "language_hint", Type: field.TypeString, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_business_id_customer_id_platform",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[2], ChatSessionsColumns[3]},
			},
			{
				Name:    "chatsession_state_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[4], ChatSessionsColumns[7]},
			},
		},
	}
	// InboundJobsColumns holds the columns for the "inbound_jobs" table.
	InboundJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InboundJobsTable holds the schema information for the "inbound_jobs" table.
	InboundJobsTable = &schema.Table{
		Name:       "inbound_jobs",
		Columns:    InboundJobsColumns,
		PrimaryKey: []*schema.Column{InboundJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inboundjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InboundJobsColumns[4], InboundJobsColumns[10]},
			},
			{
				Name:    "inboundjob_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{InboundJobsColumns[2], InboundJobsColumns[4]},
			},
			{
				Name:    "inboundjob_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{InboundJobsColumns[4], InboundJobsColumns[8]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
		{Name: "menu_id", Type: field.TypeString, Nullable: true},
		{Name: "category_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "item_type", Type: field.TypeEnum, Enums: []string{"good", "service"}, Default: "good"},
		{Name: "price", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cost", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "preparation_time_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "is_schedulable", Type: field.TypeBool, Default: false},
		{Name: "min_schedule_hours", Type: field.TypeInt, Default: 0},
		{Name: "cancelable_before_hours", Type: field.TypeInt, Nullable: true},
		{Name: "stock_quantity", Type: field.TypeInt, Nullable: true},
		{Name: "availability", Type: field.TypeEnum, Enums: []string{"available", "unavailable", "hidden"}, Default: "available"},
		{Name: "days_available", Type: field.TypeJSON, Nullable: true},
		{Name: "available_from", Type: field.TypeString, Nullable: true},
		{Name: "available_to", Type: field.TypeString, Nullable: true},
		{Name: "times_ordered", Type: field.TypeInt, Default: 0},
		{Name: "times_delivered", Type: field.TypeInt, Default: 0},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_business_id_availability",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[1], ItemsColumns[16]},
			},
			{
				Name:    "item_owner_user_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[2]},
			},
			{
				Name:    "item_menu_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[3]},
			},
			{
				Name:    "item_category_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[4]},
			},
			{
				Name:    "item_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// LlmTracesColumns holds the columns for the "llm_traces" table.
	LlmTracesColumns = []*schema.Column{
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "business_id", Type: field.TypeString},
		{Name: "turn_id", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "request_messages", Type: field.TypeJSON, Nullable: true},
		{Name: "final_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "iterations", Type: field.TypeInt, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmTracesTable holds the schema information for the "llm_traces" table.
	LlmTracesTable = &schema.Table{
		Name:       "llm_traces",
		Columns:    LlmTracesColumns,
		PrimaryKey: []*schema.Column{LlmTracesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmtrace_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmTracesColumns[1], LlmTracesColumns[13]},
			},
			{
				Name:    "llmtrace_business_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmTracesColumns[2], LlmTracesColumns[13]},
			},
		},
	}
	// MenusColumns holds the columns for the "menus" table.
	MenusColumns = []*schema.Column{
		{Name: "menu_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MenusTable holds the schema information for the "menus" table.
	MenusTable = &schema.Table{
		Name:       "menus",
		Columns:    MenusColumns,
		PrimaryKey: []*schema.Column{MenusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "menu_business_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{MenusColumns[1], MenusColumns[5]},
			},
		},
	}
	// OpeningHoursColumns holds the columns for the "opening_hours" table.
	OpeningHoursColumns = []*schema.Column{
		{Name: "opening_hour_id", Type: field.TypeString, Unique: true},
		{Name: "owner_type", Type: field.TypeEnum, Enums: []string{"business", "branch"}},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "day_of_week", Type: field.TypeInt},
		{Name: "open_time", Type: field.TypeString, Nullable: true},
		{Name: "close_time", Type: field.TypeString, Nullable: true},
		{Name: "is_closed", Type: field.TypeBool, Default: false},
		{Name: "last_order_time", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OpeningHoursTable holds the schema information for the "opening_hours" table.
	OpeningHoursTable = &schema.Table{
		Name:       "opening_hours",
		Columns:    OpeningHoursColumns,
		PrimaryKey: []*schema.Column{OpeningHoursColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "openinghour_owner_type_owner_id_day_of_week",
				Unique:  true,
				Columns: []*schema.Column{OpeningHoursColumns[1], OpeningHoursColumns[2], OpeningHoursColumns[3]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "order_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "customer_phone_number", Type: field.TypeString},
		{Name: "delivery_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"takeaway", "delivery", "on_site"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"cart", "accepted", "ongoing", "ready", "completed", "cancelled", "rejected"}, Default: "cart"},
		{Name: "request_type", Type: field.TypeEnum, Enums: []string{"order", "scheduled_request"}, Default: "order"},
		{Name: "scheduled_for", Type: field.TypeTime, Nullable: true},
		{Name: "subtotal", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "delivery_price", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payment_method", Type: field.TypeEnum, Enums: []string{"cash", "card", "online"}, Default: "cash"},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"unpaid", "paid", "refunded"}, Default: "unpaid"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "location_address", Type: field.TypeString, Nullable: true},
		{Name: "language_used", Type: field.TypeString, Nullable: true},
		{Name: "order_source", Type: field.TypeEnum, Enums: []string{"whatsapp", "telegram", "instagram", "facebook", "dashboard"}, Default: "whatsapp"},
		{Name: "first_response_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1], OrdersColumns[5]},
			},
			{
				Name:    "order_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2], OrdersColumns[5]},
			},
			{
				Name:    "order_customer_phone_number",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[3]},
			},
			{
				Name:    "order_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[5], OrdersColumns[7]},
			},
			{
				Name:    "order_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[5], OrdersColumns[18]},
			},
			{
				Name:    "order_status_cancelled_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[5], OrdersColumns[19]},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "order_item_id", Type: field.TypeString, Unique: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "price_at_time", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cost_at_time", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "name_at_time", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeString},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[8]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderitem_order_id",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[8]},
			},
			{
				Name:    "orderitem_item_id",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[1]},
			},
		},
	}
	// OrderStatusHistoryColumns holds the columns for the "order_status_history" table.
	OrderStatusHistoryColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"cart", "accepted", "ongoing", "ready", "completed", "cancelled", "rejected"}},
		{Name: "changed_by", Type: field.TypeString},
		{Name: "changed_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeString},
	}
	// OrderStatusHistoryTable holds the schema information for the "order_status_history" table.
	OrderStatusHistoryTable = &schema.Table{
		Name:       "order_status_history",
		Columns:    OrderStatusHistoryColumns,
		PrimaryKey: []*schema.Column{OrderStatusHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_status_history_orders_status_history",
				Columns:    []*schema.Column{OrderStatusHistoryColumns[4]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderstatushistory_order_id_changed_at",
				Unique:  false,
				Columns: []*schema.Column{OrderStatusHistoryColumns[4], OrderStatusHistoryColumns[3]},
			},
		},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "reservation_id", Type: field.TypeString, Unique: true},
		{Name: "business_user_id", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString},
		{Name: "table_id", Type: field.TypeString, Nullable: true},
		{Name: "customer_phone_number", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString},
		{Name: "reservation_date", Type: field.TypeString},
		{Name: "reservation_time", Type: field.TypeString},
		{Name: "number_of_guests", Type: field.TypeInt, Nullable: true},
		{Name: "reservation_type", Type: field.TypeEnum, Enums: []string{"table", "appointment"}, Default: "table"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed", "cancelled", "completed", "no_show"}, Default: "confirmed"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reservation_owner_user_id_reservation_date",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[2], ReservationsColumns[6]},
			},
			{
				Name:    "reservation_business_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[1], ReservationsColumns[10]},
			},
			{
				Name:    "reservation_table_id_reservation_date_reservation_time",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[3], ReservationsColumns[6], ReservationsColumns[7]},
			},
			{
				Name:    "reservation_customer_phone_number",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[4]},
			},
		},
	}
	// ReservationItemsColumns holds the columns for the "reservation_items" table.
	ReservationItemsColumns = []*schema.Column{
		{Name: "reservation_item_id", Type: field.TypeString, Unique: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "price_at_time", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "name_at_time", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reservation_id", Type: field.TypeString},
	}
	// ReservationItemsTable holds the schema information for the "reservation_items" table.
	ReservationItemsTable = &schema.Table{
		Name:       "reservation_items",
		Columns:    ReservationItemsColumns,
		PrimaryKey: []*schema.Column{ReservationItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reservation_items_reservations_items",
				Columns:    []*schema.Column{ReservationItemsColumns[7]},
				RefColumns: []*schema.Column{ReservationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reservationitem_reservation_id",
				Unique:  false,
				Columns: []*schema.Column{ReservationItemsColumns[7]},
			},
		},
	}
	// ServiceCategoriesColumns holds the columns for the "service_categories" table.
	ServiceCategoriesColumns = []*schema.Column{
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ServiceCategoriesTable holds the schema information for the "service_categories" table.
	ServiceCategoriesTable = &schema.Table{
		Name:       "service_categories",
		Columns:    ServiceCategoriesColumns,
		PrimaryKey: []*schema.Column{ServiceCategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "servicecategory_business_id",
				Unique:  false,
				Columns: []*schema.Column{ServiceCategoriesColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "subscription_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"free", "starter", "pro"}, Default: "free"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "past_due", "cancelled"}, Default: "active"},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_business_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[1]},
			},
		},
	}
	// SupportTicketsColumns holds the columns for the "support_tickets" table.
	SupportTicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "related_order_id", Type: field.TypeString, Nullable: true},
		{Name: "related_reservation_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "waiting_customer", "closed"}, Default: "open"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "assigned_employee_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SupportTicketsTable holds the schema information for the "support_tickets" table.
	SupportTicketsTable = &schema.Table{
		Name:       "support_tickets",
		Columns:    SupportTicketsColumns,
		PrimaryKey: []*schema.Column{SupportTicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supportticket_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{SupportTicketsColumns[1], SupportTicketsColumns[7]},
			},
			{
				Name:    "supportticket_assigned_employee_id",
				Unique:  false,
				Columns: []*schema.Column{SupportTicketsColumns[9]},
			},
			{
				Name:    "supportticket_session_id",
				Unique:  false,
				Columns: []*schema.Column{SupportTicketsColumns[5]},
			},
		},
	}
	// TablesColumns holds the columns for the "tables" table.
	TablesColumns = []*schema.Column{
		{Name: "table_id", Type: field.TypeString, Unique: true},
		{Name: "business_id", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString},
		{Name: "table_number", Type: field.TypeInt},
		{Name: "min_seats", Type: field.TypeInt, Default: 1},
		{Name: "max_seats", Type: field.TypeInt, Default: 1},
		{Name: "position_label", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TablesTable holds the schema information for the "tables" table.
	TablesTable = &schema.Table{
		Name:       "tables",
		Columns:    TablesColumns,
		PrimaryKey: []*schema.Column{TablesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "table_owner_user_id_table_number",
				Unique:  true,
				Columns: []*schema.Column{TablesColumns[2], TablesColumns[3]},
			},
			{
				Name:    "table_business_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{TablesColumns[1], TablesColumns[7]},
			},
		},
	}
	// SupportTicketMessagesColumns holds the columns for the "support_ticket_messages" table.
	SupportTicketMessagesColumns = []*schema.Column{
		{Name: "ticket_message_id", Type: field.TypeString, Unique: true},
		{Name: "sender_type", Type: field.TypeEnum, Enums: []string{"customer", "bot", "employee", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
	}
	// SupportTicketMessagesTable holds the schema information for the "support_ticket_messages" table.
	SupportTicketMessagesTable = &schema.Table{
		Name:       "support_ticket_messages",
		Columns:    SupportTicketMessagesColumns,
		PrimaryKey: []*schema.Column{SupportTicketMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "support_ticket_messages_support_tickets_messages",
				Columns:    []*schema.Column{SupportTicketMessagesColumns[4]},
				RefColumns: []*schema.Column{SupportTicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticketmessage_ticket_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SupportTicketMessagesColumns[4], SupportTicketMessagesColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "business_owner", "branch", "employee"}},
		{Name: "parent_user_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
		{Name: "business_type", Type: field.TypeEnum, Enums: []string{"food_and_beverage", "salon", "rental", "retail", "other"}, Default: "other"},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "default_cancelable_before_hours", Type: field.TypeInt, Default: 2},
		{Name: "playbook_url", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_parent_user_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BotIntegrationsTable,
		BusinessAddonsTable,
		ChatMessagesTable,
		ChatSessionsTable,
		InboundJobsTable,
		ItemsTable,
		LlmTracesTable,
		MenusTable,
		OpeningHoursTable,
		OrdersTable,
		OrderItemsTable,
		OrderStatusHistoryTable,
		ReservationsTable,
		ReservationItemsTable,
		ServiceCategoriesTable,
		SubscriptionsTable,
		SupportTicketsTable,
		TablesTable,
		SupportTicketMessagesTable,
		UsersTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatSessionsTable
	LlmTracesTable.Annotation = &entsql.Annotation{
		Table: "llm_traces",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	OrderStatusHistoryTable.ForeignKeys[0].RefTable = OrdersTable
	OrderStatusHistoryTable.Annotation = &entsql.Annotation{
		Table: "order_status_history",
	}
	ReservationItemsTable.ForeignKeys[0].RefTable = ReservationsTable
	TablesTable.Annotation = &entsql.Annotation{
		Table: "tables",
	}
	SupportTicketMessagesTable.ForeignKeys[0].RefTable = SupportTicketsTable
	SupportTicketMessagesTable.Annotation = &entsql.Annotation{
		Table: "support_ticket_messages",
	}
}
