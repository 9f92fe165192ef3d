package linkedlist

import (
	"cmp"
	"fmt"
	"strings"
)

// Compare orders two extracted values. Numbers compare as float64 whatever
// their stored type, strings compare lexically, and any other pairing fails
// with ErrIncomparable.
func Compare(a any, b any) (int, error) {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y), nil
		}
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}
