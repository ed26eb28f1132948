package zin

import (
	"fmt"
	"strconv"
)

// Serialize renders a Value in its external text form.
//
// Booleans are capitalized, and all closures print the same regardless of
// their parameters or body.
func Serialize(v Value) string {
	switch v := v.(type) {
	case NumV:
		return strconv.Itoa(v.N)
	case BoolV:
		if v.B {
			return "True"
		}
		return "False"
	case ClosV:
		return "#<procedure>"
	default:
		panic(fmt.Sprintf("Serialize: unhandled value %T", v))
	}
}
