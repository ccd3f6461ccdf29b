/*
File    : rlox/internal/callable/natives.go
Package : callable
*/
package callable

import (
	"time"

	"github.com/akashmaji946/rlox/internal/value"
)

// Clock returns the native `clock` function: zero arguments, returns the
// number of seconds since the Unix epoch as a Number. Seeded into every
// new global environment by internal/session.
func Clock() *value.NativeFunction {
	return &value.NativeFunction{
		Name: "clock",
		Arg:  0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
