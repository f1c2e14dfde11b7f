package event

// Event is a fact recorded by an aggregate operation. Aggregates collect
// events in memory; a use-case handler pulls them after a successful save
// and hands them to the configured publisher.
type Event interface {
	EventName() string
}
