package anymap

// noCopy can be embedded to provide "go vet" linting
// when a Box is copied instead of passed by pointer
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
