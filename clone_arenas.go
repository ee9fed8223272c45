//go:build goexperiment.arenas

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
	"arena"
)

func (n *node[T]) cloneWithArena(a *arena.Arena, parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	n2 := arena.New[node[T]](a)
	n2.value = n.value
	n2.parent = parent
	n2.left = n.left.cloneWithArena(a, n2)
	n2.right = n.right.cloneWithArena(a, n2)
	return n2
}

// CloneWithArena is like Clone, but allocates the tree and its nodes in a.
// The copy must not be used after a is freed.
func (t *Tree[T]) CloneWithArena(a *arena.Arena) *Tree[T] {
	t2 := arena.New[Tree[T]](a)
	t2.root = t.root.cloneWithArena(a, nil)
	t2.length = t.length
	t2.less = t.less
	return t2
}
