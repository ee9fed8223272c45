// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sorter sorts slices by loading them into a binary search tree and
// reading the tree back in order.
//
// Because the tree rejects duplicates, so does the sort: a slice holding two
// equal values cannot be sorted, and Sort reports bst.ErrDuplicateKey instead.
// Use sort.Slice or slices.Sort for data that may repeat.
package sorter

import (
	"github.com/google/bst"
)

// Sort sorts s in ascending order.  If s contains equal values, s is left
// unchanged and the returned error wraps bst.ErrDuplicateKey.
func Sort[T bst.Ordered](s []T) error {
	return SortFunc(s, bst.Less[T]())
}

// SortFunc sorts s in ascending order as determined by less.  If s contains
// equal values, s is left unchanged and the returned error wraps
// bst.ErrDuplicateKey.
func SortFunc[T any](s []T, less bst.LessFunc[T]) error {
	tr := bst.New(less)
	if err := tr.InsertAll(s...); err != nil {
		return err
	}
	tr.AppendValues(s[:0], bst.InOrder)
	return nil
}
