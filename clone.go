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

// clone copies the subtree rooted at n, attaching the copy to parent.
func (n *node[T]) clone(parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	n2 := &node[T]{value: n.value, parent: parent}
	n2.left = n.left.clone(n2)
	n2.right = n.right.clone(n2)
	return n2
}

// Clone returns a copy of the tree with the same shape.  Values are copied by
// assignment, so trees of pointers share the pointed-to values.  Writes to
// either tree are not seen by the other.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:   t.root.clone(nil),
		length: t.length,
		less:   t.less,
	}
}
