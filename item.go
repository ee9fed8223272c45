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

// Item is implemented by types that carry their own ordering.
type Item[T any] interface {
	// Less tests whether the current item is less than the given argument.
	//
	// This must provide a strict total ordering.
	// If !a.Less(b) && !b.Less(a), we treat this to mean a == b (i.e. we can only
	// hold one of either a or b in the tree).
	Less(than T) bool
}

// ItemLess returns a LessFunc that orders values by their Less method.
func ItemLess[T Item[T]]() LessFunc[T] {
	return func(a, b T) bool { return a.Less(b) }
}

// NewItem creates a new tree for types implementing Item.
func NewItem[T Item[T]]() *Tree[T] {
	return New[T](ItemLess[T]())
}
