package models

// EventMessage pairs a serialized event with the topic it is routed to.
type EventMessage struct {
	Topic   string
	Message []byte
}
