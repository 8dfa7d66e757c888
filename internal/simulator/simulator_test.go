package simulator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/andriantama/brewsim/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOutput records every written message for inspection.
type memoryOutput struct {
	messages map[string][][]byte
}

func newMemoryOutput() *memoryOutput {
	return &memoryOutput{messages: make(map[string][][]byte)}
}

func (m *memoryOutput) WriteMessage(topic string, msg []byte) error {
	m.messages[topic] = append(m.messages[topic], msg)
	return nil
}

func (m *memoryOutput) Close() error { return nil }

func newTestSimulator(config *models.Config) *Simulator {
	return &Simulator{
		Config:     config,
		State:      models.NewGameState(),
		Rng:        rng.New(config.Seed),
		EventQueue: models.NewEventQueue(),
	}
}

func TestSerializeEventTopics(t *testing.T) {
	sim := newTestSimulator(testConfig())
	sim.State.StartNew()
	now := timeAt(480)

	customer := customerAtCart(sim.Config)

	tests := []struct {
		event *models.Event
		topic string
	}{
		{&models.Event{Time: now, Type: models.EventCustomerSpawned, Data: customer}, TopicCustomerEvents},
		{&models.Event{Time: now, Type: models.EventCustomerQueued, Data: customer}, TopicCustomerEvents},
		{&models.Event{Time: now, Type: models.EventCustomerLeft, Data: customer}, TopicCustomerEvents},
		{&models.Event{Time: now, Type: models.EventOrderPlaced, Data: &orderChange{Customer: customer, Amount: 1, Stock: 7}}, TopicOrderEvents},
		{&models.Event{Time: now, Type: models.EventOrderRejected, Data: &orderChange{Customer: customer, Amount: 1}}, TopicOrderEvents},
		{&models.Event{Time: now, Type: models.EventOrderServed, Data: &ServeOutcome{Customer: customer, Amount: 1, Paid: 8, Feedback: models.FeedbackLove, Score: 1}}, TopicOrderEvents},
		{&models.Event{Time: now, Type: models.EventFeedbackGiven, Data: &ServeOutcome{Customer: customer, Feedback: models.FeedbackLike, Score: 0.7}}, TopicFeedbackEvents},
		{&models.Event{Time: now, Type: models.EventIngredientsBought, Data: &purchaseOutcome{Order: models.PurchaseOrder{CoffeePacks: 1}, Cost: 120, Money: 880}}, TopicShopEvents},
		{&models.Event{Time: now, Type: models.EventAlertRaised, Data: "purchase skipped"}, TopicAlertEvents},
		{&models.Event{Time: now, Type: models.EventDayStarted, Data: &daySnapshot{Clock: "08:00"}}, TopicDaySummaryEvents},
		{&models.Event{Time: now, Type: models.EventDayEnded, Data: &daySnapshot{Clock: "17:00", Tally: DayTally{Served: 3}}}, TopicDaySummaryEvents},
	}

	for _, tt := range tests {
		msg, err := sim.serializeEvent(tt.event)
		require.NoError(t, err, tt.event.Type)
		assert.Equal(t, tt.topic, msg.Topic, tt.event.Type)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Message, &decoded))
		assert.Equal(t, tt.event.Type, decoded["eventType"])
		assert.Equal(t, float64(now.Unix()), decoded["timestamp"])
	}
}

func TestSerializeEventRejectsUnknownType(t *testing.T) {
	sim := newTestSimulator(testConfig())
	sim.State.StartNew()

	_, err := sim.serializeEvent(&models.Event{Time: time.Now(), Type: "Bogus"})
	assert.Error(t, err)
}

func TestRunDayProducesAFullEventStream(t *testing.T) {
	config := testConfig()
	config.StartDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	config.SpawnChance = 100
	config.DayEndMinute = 490 // a ten minute trading day keeps the test fast
	sim := newTestSimulator(config)
	output := newMemoryOutput()

	dayNumber, tally := sim.runDay(output, 0)

	assert.Equal(t, 1, dayNumber)
	assert.Equal(t, 2, sim.State.Day)
	assert.Zero(t, sim.State.Stock)
	assert.True(t, sim.EventQueue.IsEmpty())

	// one purchase, one day open, one day close at minimum
	assert.Len(t, output.messages[TopicShopEvents], 1)
	assert.Len(t, output.messages[TopicDaySummaryEvents], 2)
	assert.NotEmpty(t, output.messages[TopicCustomerEvents])

	// waiting customers are never culled, so every queued order is served
	// before the day closes out
	assert.Equal(t, tally.Queued, tally.Served)
}

func TestSpawnChecksTickOncePerWallSecond(t *testing.T) {
	config := testConfig()
	config.StartDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	config.SpawnChance = 100
	config.DayEndMinute = 490 // ten in-game minutes, two wall seconds
	sim := newTestSimulator(config)

	_, tally := sim.runDay(newMemoryOutput(), 0)

	// checks land at 08:05 and 08:10; the closing-time one arrives with
	// the day-over latch already set and is discarded, so even a certain
	// spawn chance admits exactly one customer
	assert.Equal(t, 1, tally.Spawned)
}

func TestRunDayIsSeedDeterministic(t *testing.T) {
	run := func() (int, DayTally) {
		config := testConfig()
		config.StartDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
		config.DayEndMinute = 510
		sim := newTestSimulator(config)
		return sim.runDay(newMemoryOutput(), 0)
	}

	day1, tally1 := run()
	day2, tally2 := run()

	assert.Equal(t, day1, day2)
	assert.Equal(t, tally1, tally2)
}

func TestFastForwardToggleSpeedsUpTheDay(t *testing.T) {
	config := testConfig()
	config.StartDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	config.DayEndMinute = 500
	config.FastForwardAtMinute = 490
	sim := newTestSimulator(config)

	_, tally := sim.runDay(newMemoryOutput(), 0)

	// nothing to assert about wall time here; the toggle path just has to
	// run the day to completion without stalling
	assert.GreaterOrEqual(t, tally.Spawned, 0)
	assert.Equal(t, 2, sim.State.Day)
}
