package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/andriantama/brewsim/internal/repositories"
	"github.com/andriantama/brewsim/internal/rng"
	"github.com/schollz/progressbar/v3"
)

// Simulator drives the whole run: it loads the saved game, plays each day
// through the prep and selling phases, routes every event to the configured
// output, and persists the closing state.
type Simulator struct {
	Config      *models.Config
	State       *models.GameState
	Rng         *rng.Rng
	EventQueue  *models.EventQueue
	CurrentTime time.Time

	gameStates   repositories.GameStateRepository
	daySummaries repositories.DaySummaryRepository
}

func NewSimulator(config *models.Config) *Simulator {
	return &Simulator{
		Config:     config,
		State:      models.LoadGameState(config.SaveFilePath),
		Rng:        rng.New(config.Seed),
		EventQueue: models.NewEventQueue(),
	}
}

// WithRepositories attaches the optional database persistence layer.
func (s *Simulator) WithRepositories(states repositories.GameStateRepository, summaries repositories.DaySummaryRepository) *Simulator {
	s.gameStates = states
	s.daySummaries = summaries
	return s
}

// orderChange carries the context of a placed or rejected order to the
// serializer.
type orderChange struct {
	Customer *models.Customer
	Amount   int
	Stock    int
}

// purchaseOutcome carries a completed shop purchase to the serializer.
type purchaseOutcome struct {
	Order models.PurchaseOrder
	Cost  int
	Money int
}

// daySnapshot carries the clock and tallies for day open/close events.
type daySnapshot struct {
	Clock string
	Tally DayTally
}

func (s *Simulator) Run() {
	output := s.determineOutputDestination()
	defer func() {
		if err := output.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	log.Printf("Simulation starts on day %d with %d money\n", s.State.Day, s.State.Money)

	var bar *progressbar.ProgressBar
	if !s.Config.Continuous {
		bar = progressbar.Default(int64(s.Config.Days), "simulating days")
	}

	for dayIndex := 0; s.Config.Continuous || dayIndex < s.Config.Days; dayIndex++ {
		dayNumber, tally := s.runDay(output, dayIndex)

		if err := s.State.SaveToFile(s.Config.SaveFilePath); err != nil {
			log.Printf("Failed to save game state: %v", err)
		}
		s.persistDay(dayNumber, tally)

		log.Printf("Day %d complete: %d in, %d served, %d rejected, %d revenue, favorability %.2f",
			dayNumber, tally.Spawned, tally.Served, tally.Rejected, tally.Revenue, s.State.Favorability)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	log.Printf("Simulation completed at %s\n", time.Now().UTC().Format(time.RFC3339))
}

// runDay plays a single trading day and returns its number and tallies. The
// day counter is advanced here, once, whether or not the day opened.
func (s *Simulator) runDay(output OutputDestination, dayIndex int) (int, DayTally) {
	dayDate := s.dayDate(dayIndex)
	s.CurrentTime = dayDate.Add(minutesToDuration(s.Config.DayStartMinute))

	prep := NewPrepPhase(s.Config, s.State)
	outcome, prepErr := prep.Run()
	dayNumber := s.State.Day

	for _, alert := range outcome.Alerts {
		s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventAlertRaised, Data: alert})
	}
	if outcome.Purchased != nil {
		s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventIngredientsBought, Data: &purchaseOutcome{
			Order: *outcome.Purchased,
			Cost:  outcome.Cost,
			Money: s.State.Money,
		}})
	}
	if prepErr != nil {
		log.Printf("Day %d did not open: %v", dayNumber, prepErr)
		s.State.FinishDay()
		return dayNumber, DayTally{}
	}

	phase := NewSellingPhase(s.Config, s.State, s.Rng)
	spawner := NewSpawner(s.Config, s.Rng)

	s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventDayStarted, Data: &daySnapshot{
		Clock: phase.ClockLabel(),
	}})

	s.EventQueue.Enqueue(&models.Event{
		Time: s.CurrentTime.Add(spawner.Interval()),
		Type: models.EventSpawnCheck,
	})
	if s.Config.FastForwardAtMinute > s.Config.DayStartMinute {
		s.EventQueue.Enqueue(&models.Event{
			Time: dayDate.Add(minutesToDuration(s.Config.FastForwardAtMinute)),
			Type: models.EventToggleFastForward,
		})
	}

	closed := false
	for !phase.DayOver() || phase.HasOrders() {
		delta := s.Config.TickSeconds * phase.SpeedFactor()

		// Process any scheduled events that are due
		for {
			next := s.EventQueue.Peek()
			if next == nil || next.Time.After(s.CurrentTime) {
				break
			}
			event := s.EventQueue.Dequeue()
			if event != nil {
				s.processScheduled(output, event, phase, spawner)
			}
		}

		phase.ProgressTime(delta)
		if phase.DayOver() && !closed {
			closed = true
			phase.CloseDoors()
		}

		result := phase.Step(delta)
		for i, customer := range result.Queued {
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventCustomerQueued, Data: customer})
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventOrderPlaced, Data: &orderChange{
				Customer: customer,
				Amount:   result.Placed[i].Amount,
				Stock:    s.State.Stock,
			}})
		}
		for _, customer := range result.Rejected {
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventOrderRejected, Data: &orderChange{
				Customer: customer,
				Amount:   1,
				Stock:    s.State.Stock,
			}})
		}
		for _, customer := range result.Left {
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventCustomerLeft, Data: customer})
		}

		if served, ok := phase.Serve(delta); ok {
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventOrderServed, Data: served})
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventFeedbackGiven, Data: served})
		}

		s.CurrentTime = dayDate.Add(minutesToDuration(phase.ClockMinutes()))
	}

	// Drain leftover scheduled events so the next day starts clean.
	for !s.EventQueue.IsEmpty() {
		s.EventQueue.Dequeue()
	}

	tally := phase.Tally()
	s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventDayEnded, Data: &daySnapshot{
		Clock: phase.ClockLabel(),
		Tally: tally,
	}})
	s.State.FinishDay()
	return dayNumber, tally
}

func (s *Simulator) processScheduled(output OutputDestination, event *models.Event, phase *SellingPhase, spawner *Spawner) {
	switch event.Type {
	case models.EventSpawnCheck:
		if phase.DayOver() {
			return
		}
		if customer := spawner.TrySpawn(s.CurrentTime); customer != nil {
			phase.AddCustomer(customer)
			s.writeEvent(output, &models.Event{Time: s.CurrentTime, Type: models.EventCustomerSpawned, Data: customer})
		}
		s.EventQueue.Enqueue(&models.Event{
			Time: event.Time.Add(spawner.Interval()),
			Type: models.EventSpawnCheck,
		})
	case models.EventToggleFastForward:
		phase.SetFastForward(!phase.FastForward())
	}
}

func (s *Simulator) writeEvent(output OutputDestination, event *models.Event) {
	msg, err := s.serializeEvent(event)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
		return
	}
	if err := output.WriteMessage(msg.Topic, msg.Message); err != nil {
		log.Printf("Failed to write message: %v", err)
	}
}

func (s *Simulator) serializeEvent(event *models.Event) (models.EventMessage, error) {
	var topic string
	var eventData interface{}

	base := NewBaseEvent(event.Type, event.Time, s.State.Day)

	switch event.Type {
	case models.EventCustomerSpawned, models.EventCustomerQueued, models.EventCustomerLeft:
		customer := event.Data.(*models.Customer)
		base.CustomerID = customer.ID
		eventData = CustomerEvent{
			BaseEvent:    base,
			CustomerName: customer.Name,
			Variant:      customer.Variant.Name,
			State:        customer.State,
			PositionX:    customer.Position.X,
			PositionY:    customer.Position.Y,
		}
		topic = TopicCustomerEvents

	case models.EventOrderPlaced:
		change := event.Data.(*orderChange)
		base.CustomerID = change.Customer.ID
		eventData = OrderEvent{
			BaseEvent: base,
			Amount:    int32(change.Amount),
			Status:    "placed",
			Stock:     int32(change.Stock),
		}
		topic = TopicOrderEvents

	case models.EventOrderRejected:
		change := event.Data.(*orderChange)
		base.CustomerID = change.Customer.ID
		eventData = OrderEvent{
			BaseEvent: base,
			Amount:    int32(change.Amount),
			Status:    "rejected",
			Stock:     int32(change.Stock),
		}
		topic = TopicOrderEvents

	case models.EventOrderServed:
		served := event.Data.(*ServeOutcome)
		base.CustomerID = served.Customer.ID
		eventData = OrderEvent{
			BaseEvent:  base,
			Amount:     int32(served.Amount),
			Status:     "served",
			PaidAmount: int32(served.Paid),
			Stock:      int32(s.State.Stock),
		}
		topic = TopicOrderEvents

	case models.EventFeedbackGiven:
		served := event.Data.(*ServeOutcome)
		base.CustomerID = served.Customer.ID
		eventData = FeedbackEvent{
			BaseEvent:    base,
			Feedback:     served.Feedback,
			Score:        served.Score,
			Favorability: s.State.Favorability,
		}
		topic = TopicFeedbackEvents

	case models.EventIngredientsBought:
		purchase := event.Data.(*purchaseOutcome)
		eventData = ShopPurchaseEvent{
			BaseEvent:   base,
			CoffeePacks: int32(purchase.Order.CoffeePacks),
			MilkPacks:   int32(purchase.Order.MilkPacks),
			SugarPacks:  int32(purchase.Order.SugarPacks),
			CupSleeves:  int32(purchase.Order.CupSleeves),
			TotalCost:   int32(purchase.Cost),
			Money:       int32(purchase.Money),
		}
		topic = TopicShopEvents

	case models.EventAlertRaised:
		eventData = AlertEvent{
			BaseEvent: base,
			Message:   event.Data.(string),
		}
		topic = TopicAlertEvents

	case models.EventDayStarted, models.EventDayEnded:
		snapshot := event.Data.(*daySnapshot)
		eventData = DaySummaryEvent{
			BaseEvent:    base,
			Clock:        snapshot.Clock,
			LoveCount:    int32(snapshot.Tally.Love),
			LikeCount:    int32(snapshot.Tally.Like),
			DislikeCount: int32(snapshot.Tally.Dislike),
			Revenue:      int32(snapshot.Tally.Revenue),
			Money:        int32(s.State.Money),
			Stock:        int32(s.State.Stock),
			Price:        int32(s.State.Price),
			Favorability: s.State.Favorability,
		}
		topic = TopicDaySummaryEvents

	default:
		return models.EventMessage{}, fmt.Errorf("unknown event type: %s", event.Type)
	}

	msg, err := json.Marshal(eventData)
	if err != nil {
		return models.EventMessage{}, fmt.Errorf("failed to serialize event: %w", err)
	}
	return models.EventMessage{Topic: topic, Message: msg}, nil
}

func (s *Simulator) persistDay(dayNumber int, tally DayTally) {
	if s.gameStates == nil && s.daySummaries == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.gameStates != nil {
		if err := s.gameStates.SaveSnapshot(ctx, s.State); err != nil {
			log.Printf("Failed to persist game state snapshot: %v", err)
		}
	}
	if s.daySummaries != nil {
		summary := &repositories.DaySummary{
			Day:          dayNumber,
			LoveCount:    tally.Love,
			LikeCount:    tally.Like,
			DislikeCount: tally.Dislike,
			CustomersIn:  tally.Spawned,
			Served:       tally.Served,
			Rejected:     tally.Rejected,
			Revenue:      tally.Revenue,
			Money:        s.State.Money,
			Favorability: s.State.Favorability,
		}
		if err := s.daySummaries.Create(ctx, summary); err != nil {
			log.Printf("Failed to persist day summary: %v", err)
		}
	}
}

// dayDate maps a zero-based day index to midnight of that calendar day.
func (s *Simulator) dayDate(dayIndex int) time.Time {
	start := s.Config.StartDate
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return midnight.AddDate(0, 0, dayIndex)
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
