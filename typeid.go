package anymap

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"
)

// TypeId identifies a concrete Go type. Ids are dense, start at one and
// stay stable for the lifetime of the process. Two distinct types never share
// an id, even if they have the same memory layout.
type TypeId uint32

// NoTypeId is never assigned to a type.
const NoTypeId TypeId = 0

// cloneValue duplicates the T behind the pointer and returns a pointer to
// the fresh copy.
type cloneValue func(ptr unsafe.Pointer) unsafe.Pointer

// Type describes a concrete type that was erased at least once.
type Type struct {
	Id   TypeId
	Name string
	Type reflect.Type

	clone cloneValue
}

func (t *Type) String() string {
	return t.Name
}

// TypeIdOf returns the id of the type T.
func TypeIdOf[T any]() TypeId {
	return typeOf[T]().Id
}

// TypeOf returns the type description of T.
func TypeOf[T any]() *Type {
	return typeOf[T]()
}

var types atomic.Pointer[map[unsafe.Pointer]*Type]

func init() {
	// initialize the lookup table
	types.Store(&map[unsafe.Pointer]*Type{})
}

func typeOf[T any]() *Type {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*types.Load())[ptrToType]; ok {
		return cached
	}

	return ensureType(ptrToType, makeType[T])
}

func ensureType(ptrToType unsafe.Pointer, makeType func(id TypeId) *Type) *Type {
	for {
		previousTypes := types.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newType := makeType(TypeId(len(*previousTypes) + 1))

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if types.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New erased type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}

func makeType[T any](id TypeId) *Type {
	reflectType := reflect.TypeFor[T]()

	return &Type{
		Id:    id,
		Name:  reflectType.String(),
		Type:  reflectType,
		clone: cloneValueOf[T](),
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}
