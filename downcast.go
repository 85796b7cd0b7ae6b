package anymap

import (
	"reflect"

	"github.com/malibuiconic/anymap/internal/assert"
)

// UnsafeRef reinterprets the value in the Box as a T and returns a pointer to
// it. The pointer must only be used for reading.
//
// The caller must know that the concrete type of the Box is exactly T, e.g.
// because it looked the Box up using TypeIdOf[T]. This is not checked, using
// a different type results in undefined behavior.
func UnsafeRef[T any, A Affinity](b *Box[A]) *T {
	if debug {
		assert.SameType(b.erasedType(), reflect.TypeFor[T]())
	}

	return (*T)(b.ptr)
}

// UnsafeMut is like UnsafeRef, but grants write access to the value.
// No other reference into the Box may be alive while the returned pointer
// is in use.
func UnsafeMut[T any, A Affinity](b *Box[A]) *T {
	if debug {
		assert.SameType(b.erasedType(), reflect.TypeFor[T]())
	}

	return (*T)(b.ptr)
}

// UnsafeInto moves the value out of the Box and returns it as a T.
// The Box is consumed and must not be used afterward.
// The same precondition as for UnsafeRef applies.
func UnsafeInto[T any, A Affinity](b *Box[A]) T {
	if debug {
		assert.SameType(b.erasedType(), reflect.TypeFor[T]())
	}

	value := *(*T)(b.ptr)
	b.release()
	return value
}

// Is reports whether the concrete type of the boxed value is T.
// A checked downcast can be built by calling Is before UnsafeRef.
func Is[T any, A Affinity](b *Box[A]) bool {
	return b.ty.Id == TypeIdOf[T]()
}

func (b *Box[A]) erasedType() reflect.Type {
	if b.ty == nil {
		return nil
	}

	return b.ty.Type
}
