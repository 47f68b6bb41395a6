// File: ranges.go
// Title: Range Algorithms
// Description: In-place sorting, binary search, partitioning and duplicate
//              removal over caller-owned slices of values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import (
	"fmt"
	"slices"
)

// Order selects the comparison used by SortRange
type Order int

const (
	// OrderAsc sorts byte-wise ascending
	OrderAsc Order = iota
	// OrderDesc sorts byte-wise descending
	OrderDesc
	// OrderAscFold sorts ascending with ASCII case folding
	OrderAscFold
	// OrderDescFold sorts descending with ASCII case folding
	OrderDescFold
)

var orderNames = map[Order]string{
	OrderAsc:      "asc",
	OrderDesc:     "desc",
	OrderAscFold:  "asc-fold",
	OrderDescFold: "desc-fold",
}

// String returns the string representation of the order
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Compare compares a and b under o
func (o Order) Compare(a, b Value) int {
	switch o {
	case OrderDesc:
		return Compare(b, a)
	case OrderAscFold:
		return CompareFold(a, b)
	case OrderDescFold:
		return CompareFold(b, a)
	default:
		return Compare(a, b)
	}
}

// SortRange sorts values in place under order. The sort is not stable.
func SortRange(order Order, values []Value) {
	if len(values) < 2 {
		return
	}
	slices.SortFunc(values, order.Compare)
}

// SearchRange finds key in values sorted with OrderAsc and returns a
// pointer to the matching element, or nil. The result is undefined for
// unsorted input.
func SearchRange(key Value, values []Value) *Value {
	return search(key, values, Compare)
}

// SearchRangeFold is SearchRange for values sorted with OrderAscFold
func SearchRangeFold(key Value, values []Value) *Value {
	return search(key, values, CompareFold)
}

func search(key Value, values []Value, cmp func(a, b Value) int) *Value {
	i, found := slices.BinarySearchFunc(values, key, cmp)
	if !found {
		return nil
	}
	return &values[i]
}

// PartitionRange reorders values so that every element satisfying pred
// precedes every element that does not, and returns the number of
// satisfying elements. The relative order is not preserved.
func PartitionRange(pred func(Value) bool, values []Value) int {
	n := 0
	for i := range values {
		if pred(values[i]) {
			values[n], values[i] = values[i], values[n]
			n++
		}
	}
	return n
}

// UniqueRange collapses runs of equal adjacent elements of an OrderAsc
// sorted slice to their first element and returns the number of distinct
// elements, which occupy values[:n] in order. The removed elements are
// moved to values[n:] so owned duplicates can still be freed.
func UniqueRange(values []Value) int {
	if len(values) < 2 {
		return len(values)
	}
	n := 1
	for i := 1; i < len(values); i++ {
		if !Equal(values[i], values[n-1]) {
			values[n], values[i] = values[i], values[n]
			n++
		}
	}
	return n
}
