package frontier

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/lvpath/grid"
)

// Item is one frontier entry.
type Item struct {
	Cell           grid.CPos
	EstimatedTotal int
	seq            uint64
}

// Frontier is a min-heap of Items. The zero value is not usable; call New.
type Frontier struct {
	heap *heap.Heap[Item]
	seq  uint64
}

// New returns an empty frontier.
func New() *Frontier {
	return &Frontier{heap: heap.New[Item](less)}
}

// less orders by estimate, then by insertion sequence.
func less(a, b Item) bool {
	if a.EstimatedTotal != b.EstimatedTotal {
		return a.EstimatedTotal < b.EstimatedTotal
	}
	return a.seq < b.seq
}

// Push adds cell with the given estimated total cost.
func (f *Frontier) Push(cell grid.CPos, estimatedTotal int) {
	f.heap.Push(Item{Cell: cell, EstimatedTotal: estimatedTotal, seq: f.seq})
	f.seq++
}

// PopMin removes and returns the lowest item. ok is false when empty.
func (f *Frontier) PopMin() (item Item, ok bool) {
	return f.heap.Pop()
}

// Peek returns the lowest item without removing it.
func (f *Frontier) Peek() (item Item, ok bool) {
	return f.heap.Peek()
}

// IsEmpty reports whether no items remain.
func (f *Frontier) IsEmpty() bool { return f.heap.Size() == 0 }

// Len returns the number of items, stale duplicates included.
func (f *Frontier) Len() int { return f.heap.Size() }
