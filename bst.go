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

// Package bst implements an in-memory, unbalanced binary search tree.
//
// bst implements a plain binary search tree for use as an ordered set.
// It is not meant for persistent storage solutions, and it does no
// rebalancing: inserting values in sorted order yields a tree whose height
// equals its length.  Callers that need guaranteed logarithmic operations
// should use a B-Tree or a red-black tree instead.
//
// Each node holds one value, an owning link to each of its (possibly nil)
// children, and a link back to its parent.  The parent link is only used to
// splice nodes out of the tree during deletion.
//
// The tree holds at most one of any set of equivalent values.  Unlike
// btree.ReplaceOrInsert, Insert does not replace: adding a value equal to one
// already stored fails with ErrDuplicateKey and leaves the tree unchanged.
//
// Values are ordered by a LessFunc, which must provide a strict total
// ordering.  Two values a and b are considered equal when neither
// less(a, b) nor less(b, a) holds.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrDuplicateKey is returned, wrapped, when inserting a value that is equal
// to one already stored in the tree.  Use errors.Is to test for it.
var ErrDuplicateKey = errors.New("bst: duplicate key")

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64 | ~string
}

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// node is a single value in the tree.
type node[T any] struct {
	value       T
	left, right *node[T]
	parent      *node[T]
}

// children returns how many of left and right are set.
func (n *node[T]) children() int {
	c := 0
	if n.left != nil {
		c++
	}
	if n.right != nil {
		c++
	}
	return c
}

// Tree is a generic binary search tree.
//
// The zero value is not usable; create trees with New, NewOrdered or NewItem.
type Tree[T any] struct {
	root   *node[T]
	length int
	less   LessFunc[T]
}

// New creates a new, empty tree ordered by less.
func New[T any](less LessFunc[T]) *Tree[T] {
	if less == nil {
		panic("bst: nil less function")
	}
	return &Tree[T]{less: less}
}

// NewOrdered creates a new tree for ordered types.
func NewOrdered[T Ordered]() *Tree[T] {
	return New[T](Less[T]())
}

// find returns the node holding a value equal to key, or nil.
// parent is the last node visited, which is where key would be attached.
func (t *Tree[T]) find(key T) (n, parent *node[T]) {
	n = t.root
	for n != nil {
		switch {
		case t.less(key, n.value):
			parent, n = n, n.left
		case t.less(n.value, key):
			parent, n = n, n.right
		default:
			return n, parent
		}
	}
	return nil, parent
}

// Insert adds value to the tree.  If an equal value is already present,
// the tree is left unchanged and an error wrapping ErrDuplicateKey is
// returned.
func (t *Tree[T]) Insert(value T) error {
	found, parent := t.find(value)
	if found != nil {
		return errors.Wrapf(ErrDuplicateKey, "insert %v", value)
	}
	n := &node[T]{value: value, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case t.less(value, parent.value):
		parent.left = n
	default:
		parent.right = n
	}
	t.length++
	return nil
}

// InsertAll inserts values in order, stopping at the first duplicate.
//
// Values before the duplicate remain in the tree and values after it are not
// inserted.  The returned error wraps ErrDuplicateKey and names the index of
// the offending value.
func (t *Tree[T]) InsertAll(values ...T) error {
	for i, v := range values {
		if err := t.Insert(v); err != nil {
			return errors.Wrapf(err, "insert all: value %d", i)
		}
	}
	return nil
}

// Get looks for the key value in the tree, returning the stored value.  It
// returns (zeroValue, false) if unable to find that value.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	n, _ := t.find(key)
	if n == nil {
		return
	}
	return n.value, true
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	n, _ := t.find(key)
	return n != nil
}

// Delete removes the value equal to key from the tree.  It returns false,
// and does nothing, if no such value exists.
func (t *Tree[T]) Delete(key T) bool {
	n, _ := t.find(key)
	if n == nil {
		return false
	}
	t.deleteNode(n)
	t.length--
	return true
}

// deleteNode unlinks n from the tree, or, when n has two children, moves its
// in-order successor's value into n and unlinks the successor instead.
func (t *Tree[T]) deleteNode(n *node[T]) {
	switch n.children() {
	case 0:
		t.replace(n, nil)
	case 1:
		child := n.left
		if child == nil {
			child = n.right
		}
		t.replace(n, child)
	default:
		succ := leftmost(n.right)
		n.value = succ.value
		// succ has no left child, so this terminates in case 0 or 1.
		t.deleteNode(succ)
	}
}

// replace puts child into n's slot in its parent (or the root) and detaches n.
func (t *Tree[T]) replace(n, child *node[T]) {
	parent := n.parent
	if child != nil {
		child.parent = parent
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
	// clear to allow GC
	n.left, n.right, n.parent = nil, nil, nil
}

// leftmost returns the smallest node in the subtree rooted at n.
func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the largest node in the subtree rooted at n.
func rightmost[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return leftmost(t.root).value, true
}

// Max returns the largest value in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return rightmost(t.root).value, true
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Clear removes all values from the tree.  The old nodes are left to the
// garbage collector.
func (t *Tree[T]) Clear() {
	t.root, t.length = nil, 0
}

// print is used for testing/debugging purposes.
func (n *node[T]) print(w io.Writer, level int) {
	if n == nil {
		return
	}
	n.right.print(w, level+1)
	fmt.Fprintf(w, "%sNODE:%v\n", strings.Repeat("  ", level), n.value)
	n.left.print(w, level+1)
}
