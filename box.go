package anymap

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Box exclusively owns a value whose concrete type has been erased.
// The concrete type of a Box never changes after it was created.
//
// The type parameter A states on which goroutines the Box may be used:
// a Box[Local] must not leave its goroutine, a Box[Sendable] may be moved to
// another goroutine and a Box[Shareable] may additionally be read by many
// goroutines at once. A Box carries no lock, so UnsafeMut must never be called
// while any other reference into the same Box is alive.
type Box[A Affinity] struct {
	_ noCopy

	ty *Type

	// points to a heap allocated value of type ty
	ptr unsafe.Pointer
}

// Lift moves value into a new Box that is bound to the current goroutine.
func Lift[T any](value T) *Box[Local] {
	return erase[Local](value)
}

// LiftSend moves value into a new Box that may be sent to another goroutine.
// Only types embedding Send or Sync are accepted.
func LiftSend[T IsSend](value T) *Box[Sendable] {
	return erase[Sendable](value)
}

// LiftSync moves value into a new Box that may be shared between goroutines.
// Only types embedding Sync are accepted.
func LiftSync[T IsSync](value T) *Box[Shareable] {
	return erase[Shareable](value)
}

func erase[A Affinity, T any](value T) *Box[A] {
	return boxOf[A](typeOf[T](), unsafe.Pointer(&value))
}

func boxOf[A Affinity](ty *Type, ptr unsafe.Pointer) *Box[A] {
	return &Box[A]{ty: ty, ptr: ptr}
}

// TypeId returns the id of the concrete type of the boxed value.
func (b *Box[A]) TypeId() TypeId {
	return b.ty.Id
}

// ReflectType returns the reflect.Type of the boxed value.
func (b *Box[A]) ReflectType() reflect.Type {
	return b.ty.Type
}

// Clone returns a new Box holding a duplicate of the boxed value. The new
// Box has the same concrete type and the same affinity as b. The value is
// duplicated using its Clone method if it implements Cloner, and deep copied
// otherwise. Cloning a nil Box returns nil.
func (b *Box[A]) Clone() *Box[A] {
	if b == nil {
		return nil
	}

	return boxOf[A](b.ty, b.ty.clone(b.ptr))
}

// Local moves the value into a Box[Local]. b must not be used afterward.
func (b *Box[A]) Local() *Box[Local] {
	local := boxOf[Local](b.ty, b.ptr)
	b.release()
	return local
}

// DropSync moves the value of a shareable Box into a Box[Sendable].
// b must not be used afterward.
func DropSync(b *Box[Shareable]) *Box[Sendable] {
	sendable := boxOf[Sendable](b.ty, b.ptr)
	b.release()
	return sendable
}

func (b *Box[A]) String() string {
	if b == nil || b.ty == nil {
		return fmt.Sprintf("Box[%s](<empty>)", affinityName[A]())
	}

	return fmt.Sprintf("Box[%s](%s)", affinityName[A](), b.ty.Name)
}

func (b *Box[A]) release() {
	b.ty = nil
	b.ptr = nil
}
