package anymap

// Local tags boxes that must stay on the goroutine that created them.
type Local struct{}

// Sendable tags boxes whose ownership may be handed to another goroutine.
type Sendable struct{}

// Shareable tags boxes that may be read from several goroutines at once.
type Shareable struct{}

func (Local) String() string     { return "Local" }
func (Sendable) String() string  { return "Sendable" }
func (Shareable) String() string { return "Shareable" }

// Affinity is the set of goroutine affinity tiers a Box can carry.
// The tiers are nested: Shareable implies Sendable implies Local.
type Affinity interface {
	Local | Sendable | Shareable
	String() string
}

func affinityName[A Affinity]() string {
	var tag A
	return tag.String()
}

type affinityMarker struct{}

// Send can be embedded into a type to declare that values of the type may be
// transferred to another goroutine. Only types embedding Send can be put into
// a Box[Sendable].
//
//	type Message struct {
//	   anymap.Send
//	   Text string
//	}
type Send struct{}

func (Send) isSend(affinityMarker) {}

// Sync can be embedded into a type to declare that values of the type may be
// read concurrently from several goroutines. Sync implies Send.
type Sync struct {
	Send
}

func (Sync) isSync(affinityMarker) {}

// IsSend is satisfied by all types embedding Send or Sync.
type IsSend interface {
	isSend(affinityMarker)
}

// IsSync is satisfied by all types embedding Sync.
type IsSync interface {
	IsSend
	isSync(affinityMarker)
}

// SendValue wraps a value of a type that can not embed Send, e.g. a string or
// a slice. Wrapping a value asserts that it is safe to transfer.
type SendValue[T any] struct {
	Send
	Value T
}

// SyncValue wraps a value of a type that can not embed Sync.
// Wrapping a value asserts that it is safe to read concurrently.
type SyncValue[T any] struct {
	Sync
	Value T
}
