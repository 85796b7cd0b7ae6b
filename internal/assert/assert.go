package assert

import (
	"fmt"
	"reflect"
)

func SameType(actual, expected reflect.Type) {
	if actual == nil {
		panic(fmt.Sprintf("expected value of type %s, box is empty", expected))
	}

	if actual != expected {
		panic(fmt.Sprintf("expected value of type %s, got %s", expected, actual))
	}
}
