package models

// CustomerOrder is a queued order awaiting service. Orders reference
// customers by stable ID rather than by pointer so that a customer removed
// from the world before being served leaves a dead handle, not a dangling
// reference; the selling phase validates liveness before calling back.
type CustomerOrder struct {
	CustomerID string  `json:"customer_id"`
	Amount     int     `json:"amount"`
	Progress   float64 `json:"progress"`
}
