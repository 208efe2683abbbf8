// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package run

import "iter"

// Run is a maximal contiguous span of indices [Start, End] which all share the
// same key.
type Run[K comparable] struct {
	Start uint64
	End   uint64
	Key   K
}

// Len returns the number of indices covered by this run.
func (r Run[K]) Len() uint64 {
	return r.End - r.Start + 1
}

// Grouper incrementally groups a stream of (index, key) pairs, whose indices
// are strictly increasing, into runs.  Two adjacent pairs end up in the same run
// only if their indices are consecutive and their keys are equal.  Grouping is
// greedy from left to right.
type Grouper[K comparable] struct {
	current Run[K]
	// Indicates whether current holds a (partial) run.
	open bool
}

// Push adds the next (index, key) pair.  If this closes off the run currently
// being accumulated, then that run is returned.
func (g *Grouper[K]) Push(index uint64, key K) (Run[K], bool) {
	if g.open && g.current.End+1 == index && g.current.Key == key {
		g.current.End = index
		return Run[K]{}, false
	}
	//
	closed, ok := g.current, g.open
	g.current, g.open = Run[K]{index, index, key}, true
	//
	return closed, ok
}

// Flush returns the run currently being accumulated (if any), and resets the
// grouper.
func (g *Grouper[K]) Flush() (Run[K], bool) {
	closed, ok := g.current, g.open
	g.current, g.open = Run[K]{}, false
	//
	return closed, ok
}

// Group splits a sequence of (index, key) pairs into runs.
func Group[K comparable](pairs iter.Seq2[uint64, K]) []Run[K] {
	var (
		grouper Grouper[K]
		runs    []Run[K]
	)
	//
	for index, key := range pairs {
		if r, ok := grouper.Push(index, key); ok {
			runs = append(runs, r)
		}
	}
	//
	if r, ok := grouper.Flush(); ok {
		runs = append(runs, r)
	}
	//
	return runs
}

// Enumerate returns the (index, key) pairs of a given array of keys, where the
// index of each key is its position in the array.
func Enumerate[K comparable](keys []K) iter.Seq2[uint64, K] {
	return func(yield func(uint64, K) bool) {
		for i, k := range keys {
			if !yield(uint64(i), k) {
				return
			}
		}
	}
}
