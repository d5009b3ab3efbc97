// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatcmp

import "sort"

// Slice attaches the methods of sort.Interface to []Float,
// sorting in the order defined by Cmp.
type Slice []Float

func (s Slice) Len() int           { return len(s) }
func (s Slice) Less(i, j int) bool { return s[i].Cmp(s[j]) < 0 }
func (s Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sort sorts a slice of values in increasing order.
func Sort(s []Float) {
	sort.Sort(Slice(s))
}

// IsSorted reports whether s is sorted in increasing order.
func IsSorted(s []Float) bool {
	return sort.IsSorted(Slice(s))
}
