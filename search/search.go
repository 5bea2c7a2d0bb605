package search

import (
	"fmt"

	"github.com/hupe1980/checked"
)

// CompareFunc compares a key against a table element.
// A return value of zero signals a match.
type CompareFunc[T any] func(key, elem T) int

// CompareArgFunc is a CompareFunc carrying an additional opaque argument.
type CompareArgFunc[T, A any] func(key, elem T, arg A) int

// Find scans the first *count elements of table front-to-back and returns a
// pointer to the first element cmp reports equal to key, or nil if none
// match. A miss is not an error. Find never mutates *count.
func Find[T any](key T, table []T, count *int, cmp CompareFunc[T]) (*T, error) {
	if err := validate(table, count, cmp != nil); err != nil {
		return nil, err
	}
	for i := 0; i < *count; i++ {
		if cmp(key, table[i]) == 0 {
			return &table[i], nil
		}
	}
	return nil, nil
}

// FindOrAppend behaves like Find when a match exists. On a miss it copies
// key into table[*count], increments *count, and returns a pointer to the
// newly appended element. The caller must have reserved capacity for at
// least one more element; otherwise ErrRange is returned and the table is
// untouched.
func FindOrAppend[T any](key T, table []T, count *int, cmp CompareFunc[T]) (*T, error) {
	if err := validate(table, count, cmp != nil); err != nil {
		return nil, err
	}
	if table == nil {
		// Empty table, nothing to compare and nowhere to append.
		return nil, nil
	}
	for i := 0; i < *count; i++ {
		if cmp(key, table[i]) == 0 {
			return &table[i], nil
		}
	}
	if err := roomForOne(table, *count); err != nil {
		return nil, err
	}
	i := *count
	table[i] = key
	*count = i + 1
	return &table[i], nil
}

// FindWithArg is Find with an explicit comparator argument threaded into
// every comparison.
func FindWithArg[T, A any](key T, table []T, count *int, cmp CompareArgFunc[T, A], arg A) (*T, error) {
	if err := validate(table, count, cmp != nil); err != nil {
		return nil, err
	}
	for i := 0; i < *count; i++ {
		if cmp(key, table[i], arg) == 0 {
			return &table[i], nil
		}
	}
	return nil, nil
}

// FindOrAppendWithArg is FindOrAppend with an explicit comparator argument
// threaded into every comparison.
func FindOrAppendWithArg[T, A any](key T, table []T, count *int, cmp CompareArgFunc[T, A], arg A) (*T, error) {
	if err := validate(table, count, cmp != nil); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	for i := 0; i < *count; i++ {
		if cmp(key, table[i], arg) == 0 {
			return &table[i], nil
		}
	}
	if err := roomForOne(table, *count); err != nil {
		return nil, err
	}
	i := *count
	table[i] = key
	*count = i + 1
	return &table[i], nil
}

// validate enforces the shared argument contract. A zero-count table needs
// neither elements nor a comparator; a live table needs both.
func validate[T any](table []T, count *int, haveCmp bool) error {
	if count == nil {
		return fmt.Errorf("%w: count reference is nil", checked.ErrInvalidArgument)
	}
	n := *count
	if n > 0 && (table == nil || !haveCmp) {
		return fmt.Errorf("%w: non-empty table requires table and comparator", checked.ErrInvalidArgument)
	}
	if n < 0 || n > len(table) {
		return fmt.Errorf("%w: count %d exceeds table capacity %d", checked.ErrRange, n, len(table))
	}
	return nil
}

// roomForOne checks the caller reserved capacity for the element about to
// be appended.
func roomForOne[T any](table []T, n int) error {
	if n >= len(table) {
		return fmt.Errorf("%w: no capacity reserved for one more element (count %d, capacity %d)", checked.ErrRange, n, len(table))
	}
	return nil
}
