package polyanya

// intervalHeap is a binary min-heap over arena indices, keyed by F with a
// G tie-break and finally by insertion sequence -- container/heap does
// not guarantee stability, so the tie-break is baked into Less instead of
// relied upon from insertion order, per the standard "do not rely on heap
// stability" rule for priority-queue based search.
type intervalHeap struct {
	idx   []int32
	arena *[]interval
}

func (h intervalHeap) Len() int { return len(h.idx) }

func (h intervalHeap) Less(i, j int) bool {
	a := (*h.arena)[h.idx[i]]
	b := (*h.arena)[h.idx[j]]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.seq < b.seq
}

func (h intervalHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *intervalHeap) Push(x interface{}) { h.idx = append(h.idx, x.(int32)) }

func (h *intervalHeap) Pop() interface{} {
	old := h.idx
	n := len(old)
	item := old[n-1]
	h.idx = old[:n-1]
	return item
}
