package anymap

import (
	"reflect"
	"unsafe"

	clone "github.com/huandu/go-clone/generic"
)

// Cloner can be implemented by a type to provide its own duplicate operation.
// Clone must return a copy that shares no mutable state with the receiver.
//
//	func (o Order) Clone() Order {
//	    return Order{ID: o.ID, Items: slices.Clone(o.Items)}
//	}
//
// Clone may also be declared on the pointer receiver. Types that do not
// implement Cloner are deep copied using reflection.
type Cloner[T any] interface {
	Clone() T
}

func init() {
	// a Box reached through a field, slice or map must duplicate the value it
	// owns instead of sharing the storage with the original Box
	clone.SetCustomFunc(reflect.TypeFor[Box[Local]](), cloneBoxValue[Local])
	clone.SetCustomFunc(reflect.TypeFor[Box[Sendable]](), cloneBoxValue[Sendable])
	clone.SetCustomFunc(reflect.TypeFor[Box[Shareable]](), cloneBoxValue[Shareable])
}

func cloneBoxValue[A Affinity](_ *clone.Allocator, old, dup reflect.Value) {
	// the fields are unexported, read them as raw pointers
	ty := (*Type)(old.FieldByName("ty").UnsafePointer())
	if ty == nil {
		return
	}

	target := (*Box[A])(dup.Addr().UnsafePointer())
	target.ty = ty
	target.ptr = ty.clone(old.FieldByName("ptr").UnsafePointer())
}

func cloneValueOf[T any]() cloneValue {
	ty := reflect.TypeFor[T]()
	clonerType := reflect.TypeFor[Cloner[T]]()

	switch {
	case ty.Kind() == reflect.Interface:
		// the dynamic value decides, deep copy it

	case ty.Implements(clonerType):
		return func(ptr unsafe.Pointer) unsafe.Pointer {
			value := any(*(*T)(ptr)).(Cloner[T]).Clone()
			return unsafe.Pointer(&value)
		}

	case ty.Kind() != reflect.Pointer && reflect.PointerTo(ty).Implements(clonerType):
		return func(ptr unsafe.Pointer) unsafe.Pointer {
			value := any((*T)(ptr)).(Cloner[T]).Clone()
			return unsafe.Pointer(&value)
		}
	}

	return func(ptr unsafe.Pointer) unsafe.Pointer {
		value := clone.Clone(*(*T)(ptr))
		return unsafe.Pointer(&value)
	}
}
