package linkrot

// EventType indicates the kind of crawl event.
type EventType int

// Event kinds emitted during a crawl.
const (
	// EventLink fires the moment a result is finalized.
	EventLink EventType = iota

	// EventPageStart fires when the engine begins extracting links from a
	// page's body.
	EventPageStart
)

// Event is a fire-and-forget notification emitted by the crawl engine.
type Event struct {
	Type EventType

	// Result is set for EventLink.
	Result *LinkResult

	// URL is set for EventPageStart.
	URL string
}

// EventFunc receives crawl events. EventLink calls are serialized by the
// engine's coordinator; EventPageStart may be called concurrently from
// worker goroutines. Implementations must not block.
type EventFunc func(Event)
