// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/llmtrace"
	"github.com/vendrahq/vendra/ent/menu"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
	"github.com/vendrahq/vendra/ent/schema"
	"github.com/vendrahq/vendra/ent/servicecategory"
	"github.com/vendrahq/vendra/ent/subscription"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/table"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	botintegrationFields := schema.BotIntegration{}.Fields()
	_ = botintegrationFields
	// botintegrationDescIsActive is the schema descriptor for is_active field.
	botintegrationDescIsActive := botintegrationFields[6].Descriptor()
	// botintegration.DefaultIsActive holds the default value on creation for the is_active field.
	botintegration.DefaultIsActive = botintegrationDescIsActive.Default.(bool)
	// botintegrationDescCreatedAt is the schema descriptor for created_at field.
	botintegrationDescCreatedAt := botintegrationFields[7].Descriptor()
	// botintegration.DefaultCreatedAt holds the default value on creation for the created_at field.
	botintegration.DefaultCreatedAt = botintegrationDescCreatedAt.Default.(func() time.Time)
	// botintegrationDescUpdatedAt is the schema descriptor for updated_at field.
	botintegrationDescUpdatedAt := botintegrationFields[8].Descriptor()
	// botintegration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	botintegration.DefaultUpdatedAt = botintegrationDescUpdatedAt.Default.(func() time.Time)
	// botintegration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	botintegration.UpdateDefaultUpdatedAt = botintegrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	businessaddonFields := schema.BusinessAddon{}.Fields()
	_ = businessaddonFields
	// businessaddonDescPriceOverride is the schema descriptor for price_override field.
	businessaddonDescPriceOverride := businessaddonFields[4].Descriptor()
	// businessaddon.DefaultPriceOverride holds the default value on creation for the price_override field.
	businessaddon.DefaultPriceOverride = businessaddonDescPriceOverride.Default.(decimal.Decimal)
	// businessaddonDescCreatedAt is the schema descriptor for created_at field.
	businessaddonDescCreatedAt := businessaddonFields[5].Descriptor()
	// businessaddon.DefaultCreatedAt holds the default value on creation for the created_at field.
	businessaddon.DefaultCreatedAt = businessaddonDescCreatedAt.Default.(func() time.Time)
	// businessaddonDescUpdatedAt is the schema descriptor for updated_at field.
	businessaddonDescUpdatedAt := businessaddonFields[6].Descriptor()
	// businessaddon.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businessaddon.DefaultUpdatedAt = businessaddonDescUpdatedAt.Default.(func() time.Time)
	// businessaddon.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businessaddon.UpdateDefaultUpdatedAt = businessaddonDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	chatsessionDescLastActivityAt := chatsessionFields[7].Descriptor()
	// chatsession.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	chatsession.DefaultLastActivityAt = chatsessionDescLastActivityAt.Default.(func() time.Time)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[8].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[9].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	inboundjobFields := schema.InboundJob{}.Fields()
	_ = inboundjobFields
	// inboundjobDescAttempts is the schema descriptor for attempts field.
	inboundjobDescAttempts := inboundjobFields[5].Descriptor()
	// inboundjob.DefaultAttempts holds the default value on creation for the attempts field.
	inboundjob.DefaultAttempts = inboundjobDescAttempts.Default.(int)
	// inboundjobDescCreatedAt is the schema descriptor for created_at field.
	inboundjobDescCreatedAt := inboundjobFields[10].Descriptor()
	// inboundjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	inboundjob.DefaultCreatedAt = inboundjobDescCreatedAt.Default.(func() time.Time)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescPrice is the schema descriptor for price field.
	itemDescPrice := itemFields[8].Descriptor()
	// item.DefaultPrice holds the default value on creation for the price field.
	item.DefaultPrice = itemDescPrice.Default.(decimal.Decimal)
	// itemDescIsSchedulable is the schema descriptor for is_schedulable field.
	itemDescIsSchedulable := itemFields[12].Descriptor()
	// item.DefaultIsSchedulable holds the default value on creation for the is_schedulable field.
	item.DefaultIsSchedulable = itemDescIsSchedulable.Default.(bool)
	// itemDescMinScheduleHours is the schema descriptor for min_schedule_hours field.
	itemDescMinScheduleHours := itemFields[13].Descriptor()
	// item.DefaultMinScheduleHours holds the default value on creation for the min_schedule_hours field.
	item.DefaultMinScheduleHours = itemDescMinScheduleHours.Default.(int)
	// itemDescTimesOrdered is the schema descriptor for times_ordered field.
	itemDescTimesOrdered := itemFields[20].Descriptor()
	// item.DefaultTimesOrdered holds the default value on creation for the times_ordered field.
	item.DefaultTimesOrdered = itemDescTimesOrdered.Default.(int)
	// itemDescTimesDelivered is the schema descriptor for times_delivered field.
	itemDescTimesDelivered := itemFields[21].Descriptor()
	// item.DefaultTimesDelivered holds the default value on creation for the times_delivered field.
	item.DefaultTimesDelivered = itemDescTimesDelivered.Default.(int)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[23].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	// itemDescUpdatedAt is the schema descriptor for updated_at field.
	itemDescUpdatedAt := itemFields[24].Descriptor()
	// item.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	item.DefaultUpdatedAt = itemDescUpdatedAt.Default.(func() time.Time)
	// item.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	item.UpdateDefaultUpdatedAt = itemDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmtraceFields := schema.LLMTrace{}.Fields()
	_ = llmtraceFields
	// llmtraceDescIterations is the schema descriptor for iterations field.
	llmtraceDescIterations := llmtraceFields[8].Descriptor()
	// llmtrace.DefaultIterations holds the default value on creation for the iterations field.
	llmtrace.DefaultIterations = llmtraceDescIterations.Default.(int)
	// llmtraceDescInputTokens is the schema descriptor for input_tokens field.
	llmtraceDescInputTokens := llmtraceFields[9].Descriptor()
	// llmtrace.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmtrace.DefaultInputTokens = llmtraceDescInputTokens.Default.(int)
	// llmtraceDescOutputTokens is the schema descriptor for output_tokens field.
	llmtraceDescOutputTokens := llmtraceFields[10].Descriptor()
	// llmtrace.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmtrace.DefaultOutputTokens = llmtraceDescOutputTokens.Default.(int)
	// llmtraceDescDurationMs is the schema descriptor for duration_ms field.
	llmtraceDescDurationMs := llmtraceFields[11].Descriptor()
	// llmtrace.DefaultDurationMs holds the default value on creation for the duration_ms field.
	llmtrace.DefaultDurationMs = llmtraceDescDurationMs.Default.(int64)
	// llmtraceDescCreatedAt is the schema descriptor for created_at field.
	llmtraceDescCreatedAt := llmtraceFields[13].Descriptor()
	// llmtrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmtrace.DefaultCreatedAt = llmtraceDescCreatedAt.Default.(func() time.Time)
	menuFields := schema.Menu{}.Fields()
	_ = menuFields
	// menuDescIsActive is the schema descriptor for is_active field.
	menuDescIsActive := menuFields[5].Descriptor()
	// menu.DefaultIsActive holds the default value on creation for the is_active field.
	menu.DefaultIsActive = menuDescIsActive.Default.(bool)
	// menuDescCreatedAt is the schema descriptor for created_at field.
	menuDescCreatedAt := menuFields[6].Descriptor()
	// menu.DefaultCreatedAt holds the default value on creation for the created_at field.
	menu.DefaultCreatedAt = menuDescCreatedAt.Default.(func() time.Time)
	// menuDescUpdatedAt is the schema descriptor for updated_at field.
	menuDescUpdatedAt := menuFields[7].Descriptor()
	// menu.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	menu.DefaultUpdatedAt = menuDescUpdatedAt.Default.(func() time.Time)
	// menu.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	menu.UpdateDefaultUpdatedAt = menuDescUpdatedAt.UpdateDefault.(func() time.Time)
	openinghourFields := schema.OpeningHour{}.Fields()
	_ = openinghourFields
	// openinghourDescDayOfWeek is the schema descriptor for day_of_week field.
	openinghourDescDayOfWeek := openinghourFields[3].Descriptor()
	// openinghour.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	openinghour.DayOfWeekValidator = func() func(int) error {
		validators := openinghourDescDayOfWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day_of_week int) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// openinghourDescIsClosed is the schema descriptor for is_closed field.
	openinghourDescIsClosed := openinghourFields[6].Descriptor()
	// openinghour.DefaultIsClosed holds the default value on creation for the is_closed field.
	openinghour.DefaultIsClosed = openinghourDescIsClosed.Default.(bool)
	// openinghourDescCreatedAt is the schema descriptor for created_at field.
	openinghourDescCreatedAt := openinghourFields[8].Descriptor()
	// openinghour.DefaultCreatedAt holds the default value on creation for the created_at field.
	openinghour.DefaultCreatedAt = openinghourDescCreatedAt.Default.(func() time.Time)
	// openinghourDescUpdatedAt is the schema descriptor for updated_at field.
	openinghourDescUpdatedAt := openinghourFields[9].Descriptor()
	// openinghour.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	openinghour.DefaultUpdatedAt = openinghourDescUpdatedAt.Default.(func() time.Time)
	// openinghour.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	openinghour.UpdateDefaultUpdatedAt = openinghourDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescSubtotal is the schema descriptor for subtotal field.
	orderDescSubtotal := orderFields[8].Descriptor()
	// order.DefaultSubtotal holds the default value on creation for the subtotal field.
	order.DefaultSubtotal = orderDescSubtotal.Default.(decimal.Decimal)
	// orderDescDeliveryPrice is the schema descriptor for delivery_price field.
	orderDescDeliveryPrice := orderFields[9].Descriptor()
	// order.DefaultDeliveryPrice holds the default value on creation for the delivery_price field.
	order.DefaultDeliveryPrice = orderDescDeliveryPrice.Default.(decimal.Decimal)
	// orderDescTotal is the schema descriptor for total field.
	orderDescTotal := orderFields[10].Descriptor()
	// order.DefaultTotal holds the default value on creation for the total field.
	order.DefaultTotal = orderDescTotal.Default.(decimal.Decimal)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[20].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[21].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[3].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescPriceAtTime is the schema descriptor for price_at_time field.
	orderitemDescPriceAtTime := orderitemFields[4].Descriptor()
	// orderitem.DefaultPriceAtTime holds the default value on creation for the price_at_time field.
	orderitem.DefaultPriceAtTime = orderitemDescPriceAtTime.Default.(decimal.Decimal)
	// orderitemDescCreatedAt is the schema descriptor for created_at field.
	orderitemDescCreatedAt := orderitemFields[8].Descriptor()
	// orderitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderitem.DefaultCreatedAt = orderitemDescCreatedAt.Default.(func() time.Time)
	orderstatushistoryFields := schema.OrderStatusHistory{}.Fields()
	_ = orderstatushistoryFields
	// orderstatushistoryDescChangedAt is the schema descriptor for changed_at field.
	orderstatushistoryDescChangedAt := orderstatushistoryFields[4].Descriptor()
	// orderstatushistory.DefaultChangedAt holds the default value on creation for the changed_at field.
	orderstatushistory.DefaultChangedAt = orderstatushistoryDescChangedAt.Default.(func() time.Time)
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationFields[12].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	// reservationDescUpdatedAt is the schema descriptor for updated_at field.
	reservationDescUpdatedAt := reservationFields[13].Descriptor()
	// reservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reservation.DefaultUpdatedAt = reservationDescUpdatedAt.Default.(func() time.Time)
	// reservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reservation.UpdateDefaultUpdatedAt = reservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	reservationitemFields := schema.ReservationItem{}.Fields()
	_ = reservationitemFields
	// reservationitemDescQuantity is the schema descriptor for quantity field.
	reservationitemDescQuantity := reservationitemFields[3].Descriptor()
	// reservationitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	reservationitem.QuantityValidator = reservationitemDescQuantity.Validators[0].(func(int) error)
	// reservationitemDescPriceAtTime is the schema descriptor for price_at_time field.
	reservationitemDescPriceAtTime := reservationitemFields[4].Descriptor()
	// reservationitem.DefaultPriceAtTime holds the default value on creation for the price_at_time field.
	reservationitem.DefaultPriceAtTime = reservationitemDescPriceAtTime.Default.(decimal.Decimal)
	// reservationitemDescCreatedAt is the schema descriptor for created_at field.
	reservationitemDescCreatedAt := reservationitemFields[7].Descriptor()
	// reservationitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservationitem.DefaultCreatedAt = reservationitemDescCreatedAt.Default.(func() time.Time)
	servicecategoryFields := schema.ServiceCategory{}.Fields()
	_ = servicecategoryFields
	// servicecategoryDescCreatedAt is the schema descriptor for created_at field.
	servicecategoryDescCreatedAt := servicecategoryFields[4].Descriptor()
	// servicecategory.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicecategory.DefaultCreatedAt = servicecategoryDescCreatedAt.Default.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[5].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[6].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	supportticketFields := schema.SupportTicket{}.Fields()
	_ = supportticketFields
	// supportticketDescCreatedAt is the schema descriptor for created_at field.
	supportticketDescCreatedAt := supportticketFields[10].Descriptor()
	// supportticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	supportticket.DefaultCreatedAt = supportticketDescCreatedAt.Default.(func() time.Time)
	// supportticketDescUpdatedAt is the schema descriptor for updated_at field.
	supportticketDescUpdatedAt := supportticketFields[11].Descriptor()
	// supportticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supportticket.DefaultUpdatedAt = supportticketDescUpdatedAt.Default.(func() time.Time)
	// supportticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supportticket.UpdateDefaultUpdatedAt = supportticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	tableFields := schema.Table{}.Fields()
	_ = tableFields
	// tableDescMinSeats is the schema descriptor for min_seats field.
	tableDescMinSeats := tableFields[4].Descriptor()
	// table.DefaultMinSeats holds the default value on creation for the min_seats field.
	table.DefaultMinSeats = tableDescMinSeats.Default.(int)
	// tableDescMaxSeats is the schema descriptor for max_seats field.
	tableDescMaxSeats := tableFields[5].Descriptor()
	// table.DefaultMaxSeats holds the default value on creation for the max_seats field.
	table.DefaultMaxSeats = tableDescMaxSeats.Default.(int)
	// tableDescIsActive is the schema descriptor for is_active field.
	tableDescIsActive := tableFields[7].Descriptor()
	// table.DefaultIsActive holds the default value on creation for the is_active field.
	table.DefaultIsActive = tableDescIsActive.Default.(bool)
	// tableDescCreatedAt is the schema descriptor for created_at field.
	tableDescCreatedAt := tableFields[8].Descriptor()
	// table.DefaultCreatedAt holds the default value on creation for the created_at field.
	table.DefaultCreatedAt = tableDescCreatedAt.Default.(func() time.Time)
	// tableDescUpdatedAt is the schema descriptor for updated_at field.
	tableDescUpdatedAt := tableFields[9].Descriptor()
	// table.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	table.DefaultUpdatedAt = tableDescUpdatedAt.Default.(func() time.Time)
	// table.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	table.UpdateDefaultUpdatedAt = tableDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketmessageFields := schema.TicketMessage{}.Fields()
	_ = ticketmessageFields
	// ticketmessageDescCreatedAt is the schema descriptor for created_at field.
	ticketmessageDescCreatedAt := ticketmessageFields[4].Descriptor()
	// ticketmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketmessage.DefaultCreatedAt = ticketmessageDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[7].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// userDescDefaultCancelableBeforeHours is the schema descriptor for default_cancelable_before_hours field.
	userDescDefaultCancelableBeforeHours := userFields[9].Descriptor()
	// user.DefaultDefaultCancelableBeforeHours holds the default value on creation for the default_cancelable_before_hours field.
	user.DefaultDefaultCancelableBeforeHours = userDescDefaultCancelableBeforeHours.Default.(int)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[11].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[12].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[13].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
