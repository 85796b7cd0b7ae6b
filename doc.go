// Package anymap erases values of arbitrary types behind a uniform Box and
// recovers them later by their concrete type.
//
// A Box remembers the TypeId of its value and can produce a deep copy of
// itself without the caller naming the concrete type:
//
//	box := anymap.LiftSend(Message{Text: "hello"})
//	dup := box.Clone()
//	anymap.UnsafeMut[Message](dup).Text = "hello!"
//
// Downcasts are not checked. Callers are expected to know the concrete type,
// e.g. because they stored the Box in a slot keyed by TypeIdOf. Build with the
// anymapdebug tag to turn on type assertions in UnsafeRef, UnsafeMut and
// UnsafeInto.
package anymap
