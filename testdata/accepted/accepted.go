package accepted

import "github.com/malibuiconic/anymap"

type fileHandle struct {
	anymap.Send
	fd int
}

type settings struct {
	anymap.Sync
	verbose bool
}

var _ = anymap.LiftSend(fileHandle{fd: 3}).Clone()

var _ = anymap.LiftSend(settings{verbose: true})

var _ = anymap.LiftSync(settings{verbose: true}).Clone()
