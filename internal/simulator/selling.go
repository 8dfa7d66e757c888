package simulator

import (
	"fmt"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/andriantama/brewsim/internal/rng"
)

// DayTally accumulates the trading day's results for the closing summary.
type DayTally struct {
	Spawned  int
	Queued   int
	Served   int
	Rejected int
	Love     int
	Like     int
	Dislike  int
	Revenue  int
}

// ServeOutcome describes one completed sale.
type ServeOutcome struct {
	Customer *models.Customer
	Amount   int
	Paid     int
	Feedback string
	Score    float64
}

// StepResult collects what happened to the customer population during one
// frame: who joined the queue, whose order was turned away for lack of
// stock, and who walked off screen.
type StepResult struct {
	Queued   []*models.Customer
	Placed   []*models.CustomerOrder
	Rejected []*models.Customer
	Left     []*models.Customer
}

// SellingPhase runs one trading day: the in-game clock, the customers on
// screen, the order queue, and the serving of its head. It owns no output
// concerns; the driver reads its results and emits events.
type SellingPhase struct {
	config *models.Config
	state  *models.GameState
	rng    *rng.Rng

	clockMinutes float64
	dayOver      bool
	fastForward  bool

	customers []*models.Customer
	byID      map[string]*models.Customer
	orders    []*models.CustomerOrder

	tally DayTally
}

func NewSellingPhase(config *models.Config, state *models.GameState, r *rng.Rng) *SellingPhase {
	return &SellingPhase{
		config:       config,
		state:        state,
		rng:          r,
		clockMinutes: config.DayStartMinute,
		byID:         make(map[string]*models.Customer),
	}
}

// ProgressTime advances the in-game clock. Once closing time is reached the
// clock clamps there and the day-over latch never resets, no matter how many
// more frames run while the remaining queue is served.
func (p *SellingPhase) ProgressTime(delta float64) {
	if p.dayOver {
		return
	}
	p.clockMinutes += delta * p.config.TimeSpeed * p.config.TimeMultiplier
	if p.clockMinutes >= p.config.DayEndMinute {
		p.clockMinutes = p.config.DayEndMinute
		p.dayOver = true
	}
}

// ClockMinutes returns the in-game clock in minutes since midnight.
func (p *SellingPhase) ClockMinutes() float64 {
	return p.clockMinutes
}

// ClockLabel renders the in-game clock as HH:MM.
func (p *SellingPhase) ClockLabel() string {
	total := int(p.clockMinutes)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (p *SellingPhase) DayOver() bool {
	return p.dayOver
}

func (p *SellingPhase) FastForward() bool {
	return p.fastForward
}

func (p *SellingPhase) SetFastForward(on bool) {
	p.fastForward = on
}

// SpeedFactor is the frame-delta multiplier while fast forward is active.
func (p *SellingPhase) SpeedFactor() float64 {
	if p.fastForward && p.config.FastForwardFactor > 0 {
		return p.config.FastForwardFactor
	}
	return 1
}

// AddCustomer admits a freshly spawned customer to the promenade.
func (p *SellingPhase) AddCustomer(c *models.Customer) {
	p.customers = append(p.customers, c)
	p.byID[c.ID] = c
	p.tally.Spawned++
}

// Customer resolves a stable customer ID to the live customer, if still on
// screen.
func (p *SellingPhase) Customer(id string) (*models.Customer, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// CustomerCount returns how many customers are currently on screen.
func (p *SellingPhase) CustomerCount() int {
	return len(p.customers)
}

// HasOrders reports whether any order is still waiting to be served.
func (p *SellingPhase) HasOrders() bool {
	return len(p.orders) > 0
}

// Tally returns the running totals for the day.
func (p *SellingPhase) Tally() DayTally {
	return p.tally
}

// Step advances every customer by one frame: walking customers move, ones
// reaching the cart decide exactly once whether to queue, and customers past
// the screen edge are removed. Waiting customers hold their place and are
// never culled, however long the queue gets.
func (p *SellingPhase) Step(delta float64) StepResult {
	var result StepResult

	for _, c := range p.customers {
		c.Step(delta)

		if c.State == models.CustomerStateWalking && !c.HasDecided() && p.atCart(c) {
			c.MarkDecided()
			if p.rng.Float() >= p.buyChance() {
				c.State = models.CustomerStateLeaving
				continue
			}
			order, err := p.placeOrder(c)
			if err != nil {
				// Sold out. The customer leaves without queueing and
				// gives no feedback.
				c.State = models.CustomerStateLeaving
				p.tally.Rejected++
				result.Rejected = append(result.Rejected, c)
				continue
			}
			c.State = models.CustomerStateWaiting
			p.tally.Queued++
			result.Queued = append(result.Queued, c)
			result.Placed = append(result.Placed, order)
		}
	}

	result.Left = p.cullOffscreen()
	return result
}

// Serve progresses the order at the head of the queue and returns the
// outcome once it completes. Orders whose customer has already left the
// world are dropped without payment; the second return is false when no sale
// completed this frame.
func (p *SellingPhase) Serve(delta float64) (*ServeOutcome, bool) {
	for len(p.orders) > 0 {
		head := p.orders[0]
		customer, ok := p.byID[head.CustomerID]
		if !ok || customer.State != models.CustomerStateWaiting {
			// Dead handle: the customer is gone, the order dies with it.
			p.orders = p.orders[1:]
			continue
		}

		head.Progress += delta * p.config.ServingSpeed
		if head.Progress < float64(head.Amount) {
			return nil, false
		}
		p.orders = p.orders[1:]

		paid := head.Amount * p.state.Price
		p.state.AddMoney(paid)

		score := models.SatisfactionScore(p.state.Recipe, customer.Variant.Preference)
		feedback := models.ClassifyFeedback(p.state.Recipe, customer.Variant.Preference)
		customer.Feedback = feedback
		p.state.UpdateFavorability(feedback)

		switch feedback {
		case models.FeedbackLove:
			p.tally.Love++
		case models.FeedbackLike:
			p.tally.Like++
		case models.FeedbackDislike:
			p.tally.Dislike++
		}
		p.tally.Served++
		p.tally.Revenue += paid

		customer.State = models.CustomerStateLeaving
		return &ServeOutcome{
			Customer: customer,
			Amount:   head.Amount,
			Paid:     paid,
			Feedback: feedback,
			Score:    score,
		}, true
	}
	return nil, false
}

// CloseDoors sends every still-walking customer home. Called once when the
// clock reaches closing time; waiting customers keep their place until
// served.
func (p *SellingPhase) CloseDoors() {
	for _, c := range p.customers {
		if c.State == models.CustomerStateWalking {
			c.MarkDecided()
			c.State = models.CustomerStateLeaving
		}
	}
}

// placeOrder decrements stock and appends the order to the queue. ErrNoStock
// leaves the state untouched.
func (p *SellingPhase) placeOrder(c *models.Customer) (*models.CustomerOrder, error) {
	const amount = 1
	if p.state.Stock < amount {
		return nil, models.ErrNoStock
	}
	p.state.Stock -= amount
	order := &models.CustomerOrder{CustomerID: c.ID, Amount: amount}
	p.orders = append(p.orders, order)
	return order, nil
}

// buyChance combines shop favorability with price sensitivity. At the
// reference price of 8 the price factor is neutral; it is clamped so a free
// coffee never guarantees a sale and an outrageous one never fully kills
// traffic.
func (p *SellingPhase) buyChance() float64 {
	priceFactor := 1 - (float64(p.state.Price)-8)/8
	if priceFactor < 0.2 {
		priceFactor = 0.2
	} else if priceFactor > 1.5 {
		priceFactor = 1.5
	}
	return p.state.Favorability * priceFactor
}

func (p *SellingPhase) atCart(c *models.Customer) bool {
	dx := c.Position.X - p.config.CartX
	if dx < 0 {
		dx = -dx
	}
	return dx <= p.config.CartRadius
}

// cullOffscreen removes customers that walked past either screen edge.
// Waiting customers are exempt regardless of position.
func (p *SellingPhase) cullOffscreen() []*models.Customer {
	var left []*models.Customer
	kept := p.customers[:0]
	for _, c := range p.customers {
		if c.State != models.CustomerStateWaiting && p.offscreen(c) {
			delete(p.byID, c.ID)
			left = append(left, c)
			continue
		}
		kept = append(kept, c)
	}
	p.customers = kept
	return left
}

func (p *SellingPhase) offscreen(c *models.Customer) bool {
	return c.Position.X < -2*spawnMargin || c.Position.X > p.config.ScreenWidth+2*spawnMargin
}
