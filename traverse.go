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

package bst

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Order selects a depth-first traversal order.
type Order int

const (
	PreOrder  Order = iota // node, left, right
	InOrder                // left, node, right
	PostOrder              // left, right, node
)

// String returns the name of the order, e.g. "in-order".
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses "pre", "in" or "post", or any name returned by
// Order.String.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "pre", "preorder", "pre-order":
		return PreOrder, nil
	case "in", "inorder", "in-order":
		return InOrder, nil
	case "post", "postorder", "post-order":
		return PostOrder, nil
	}
	return 0, errors.Errorf("bst: unknown traversal order %q", s)
}

// walk calls fn for every value in the subtree rooted at n.
func (n *node[T]) walk(order Order, fn func(T)) {
	if n == nil {
		return
	}
	if order == PreOrder {
		fn(n.value)
	}
	n.left.walk(order, fn)
	if order == InOrder {
		fn(n.value)
	}
	n.right.walk(order, fn)
	if order == PostOrder {
		fn(n.value)
	}
}

// Walk calls fn for every value in the tree, in the given order.  In-order
// visits values in ascending order.
//
// fn must not modify the tree.
func (t *Tree[T]) Walk(order Order, fn func(value T)) {
	switch order {
	case PreOrder, InOrder, PostOrder:
	default:
		panic("invalid order")
	}
	t.root.walk(order, fn)
}

// AppendValues appends the values of the tree, in the given order, to dst
// and returns the extended slice.
func (t *Tree[T]) AppendValues(dst []T, order Order) []T {
	t.Walk(order, func(v T) {
		dst = append(dst, v)
	})
	return dst
}

// Values returns a snapshot of the values of the tree in the given order.
func (t *Tree[T]) Values(order Order) []T {
	return t.AppendValues(make([]T, 0, t.length), order)
}

// Join renders values with fmt.Sprint, separated by ", ".
func Join[T any](values []T) string {
	return strings.Join(lo.Map(values, func(v T, _ int) string {
		return fmt.Sprint(v)
	}), ", ")
}

// Format renders the values of the tree in the given order, separated by
// ", ".  An empty tree formats as "".
func (t *Tree[T]) Format(order Order) string {
	return Join(t.Values(order))
}

// String implements fmt.Stringer, formatting the tree in order.
func (t *Tree[T]) String() string {
	return t.Format(InOrder)
}
