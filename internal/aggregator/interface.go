package aggregator

// Aggregator owns the bounded ordered collection of pending inputs.
type Aggregator interface {
	AddText(content string) (PendingInput, error)
	AddURL(raw string) (PendingInput, error)
	AddFiles(paths []string) ([]PendingInput, []Rejection, error)
	AddMedia(paths []string) ([]PendingInput, []Rejection, error)
	Remove(id string) bool
	Clear()
	Items() []PendingInput
	Count() int
	Remaining() int
	NearCapacity() bool
}
