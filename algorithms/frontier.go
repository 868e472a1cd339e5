// SPDX-License-Identifier: MIT

package algorithms

// frontier is the traversal work-list: FIFO for BFS, LIFO for DFS.
type frontier[K comparable] struct {
	items []K
	lifo  bool
}

func (f *frontier[K]) push(k K) { f.items = append(f.items, k) }

func (f *frontier[K]) empty() bool { return len(f.items) == 0 }

// pop removes the front (FIFO) or back (LIFO) key. Caller checks empty first.
func (f *frontier[K]) pop() K {
	if f.lifo {
		last := len(f.items) - 1
		k := f.items[last]
		f.items = f.items[:last]
		return k
	}
	k := f.items[0]
	f.items = f.items[1:]
	return k
}
