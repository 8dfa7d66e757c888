package simulator

import (
	"fmt"
	"log"
	"time"

	"github.com/xitongsys/parquet-go/schema"
)

// Topics every simulation event is routed to.
const (
	TopicCustomerEvents   = "customer_events"
	TopicOrderEvents      = "order_events"
	TopicFeedbackEvents   = "feedback_events"
	TopicShopEvents       = "shop_events"
	TopicAlertEvents      = "alert_events"
	TopicDaySummaryEvents = "day_summary_events"
)

// BaseEvent is the common structure for all events
type BaseEvent struct {
	Timestamp  int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType  string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	Day        int32  `json:"day" parquet:"name=day,type=INT32"`
	CustomerID string `json:"customerId,omitempty" parquet:"name=customerId,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
}

// CustomerEvent covers a customer spawning, queueing, or leaving the screen.
type CustomerEvent struct {
	BaseEvent
	CustomerName string  `json:"customerName" parquet:"name=customerName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Variant      string  `json:"variant" parquet:"name=variant,type=BYTE_ARRAY,convertedtype=UTF8"`
	State        string  `json:"state" parquet:"name=state,type=BYTE_ARRAY,convertedtype=UTF8"`
	PositionX    float64 `json:"positionX" parquet:"name=positionX,type=DOUBLE"`
	PositionY    float64 `json:"positionY" parquet:"name=positionY,type=DOUBLE"`
}

// OrderEvent covers an order being placed, rejected, or served.
type OrderEvent struct {
	BaseEvent
	Amount     int32  `json:"amount" parquet:"name=amount,type=INT32"`
	Status     string `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
	PaidAmount int32  `json:"paidAmount" parquet:"name=paidAmount,type=INT32"`
	Stock      int32  `json:"stock" parquet:"name=stock,type=INT32"`
}

// FeedbackEvent records a served customer's verdict on the recipe.
type FeedbackEvent struct {
	BaseEvent
	Feedback     string  `json:"feedback" parquet:"name=feedback,type=BYTE_ARRAY,convertedtype=UTF8"`
	Score        float64 `json:"score" parquet:"name=score,type=DOUBLE"`
	Favorability float64 `json:"favorability" parquet:"name=favorability,type=DOUBLE"`
}

// ShopPurchaseEvent records a prep-phase ingredient purchase.
type ShopPurchaseEvent struct {
	BaseEvent
	CoffeePacks int32 `json:"coffeePacks" parquet:"name=coffeePacks,type=INT32"`
	MilkPacks   int32 `json:"milkPacks" parquet:"name=milkPacks,type=INT32"`
	SugarPacks  int32 `json:"sugarPacks" parquet:"name=sugarPacks,type=INT32"`
	CupSleeves  int32 `json:"cupSleeves" parquet:"name=cupSleeves,type=INT32"`
	TotalCost   int32 `json:"totalCost" parquet:"name=totalCost,type=INT32"`
	Money       int32 `json:"money" parquet:"name=money,type=INT32"`
}

// AlertEvent is a blocked user action surfaced to the alert UI.
type AlertEvent struct {
	BaseEvent
	Message string `json:"message" parquet:"name=message,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// DaySummaryEvent closes out a trading day (also emitted at day start with
// zeroed tallies).
type DaySummaryEvent struct {
	BaseEvent
	Clock        string  `json:"clock" parquet:"name=clock,type=BYTE_ARRAY,convertedtype=UTF8"`
	LoveCount    int32   `json:"loveCount" parquet:"name=loveCount,type=INT32"`
	LikeCount    int32   `json:"likeCount" parquet:"name=likeCount,type=INT32"`
	DislikeCount int32   `json:"dislikeCount" parquet:"name=dislikeCount,type=INT32"`
	Revenue      int32   `json:"revenue" parquet:"name=revenue,type=INT32"`
	Money        int32   `json:"money" parquet:"name=money,type=INT32"`
	Stock        int32   `json:"stock" parquet:"name=stock,type=INT32"`
	Price        int32   `json:"price" parquet:"name=price,type=INT32"`
	Favorability float64 `json:"favorability" parquet:"name=favorability,type=DOUBLE"`
}

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case TopicCustomerEvents:
		sh, err = schema.NewSchemaHandlerFromStruct(new(CustomerEvent))
	case TopicOrderEvents:
		sh, err = schema.NewSchemaHandlerFromStruct(new(OrderEvent))
	case TopicFeedbackEvents:
		sh, err = schema.NewSchemaHandlerFromStruct(new(FeedbackEvent))
	case TopicShopEvents:
		sh, err = schema.NewSchemaHandlerFromStruct(new(ShopPurchaseEvent))
	case TopicAlertEvents:
		sh, err = schema.NewSchemaHandlerFromStruct(new(AlertEvent))
	case TopicDaySummaryEvents:
		sh, err = schema.NewSchemaHandlerFromStruct(new(DaySummaryEvent))
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", topic, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}

	return sh, nil
}

func NewBaseEvent(eventType string, timestamp time.Time, day int) BaseEvent {
	return BaseEvent{
		Timestamp: timestamp.Unix(),
		EventType: eventType,
		Day:       int32(day),
	}
}
