package rejected

import "github.com/malibuiconic/anymap"

// fileHandle is erasable but does not declare that it may leave its goroutine.
type fileHandle struct {
	fd int
}

var _ = anymap.Lift(fileHandle{fd: 3})

var _ = anymap.LiftSend(fileHandle{fd: 3})

// sendOnly may be transferred but not shared.
type sendOnly struct {
	anymap.Send
	fd int
}

var _ = anymap.LiftSend(sendOnly{fd: 4})

var _ = anymap.LiftSync(sendOnly{fd: 4})
