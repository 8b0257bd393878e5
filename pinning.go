package grid

// PinnedIndex is the result of resolving a PinRequest against a filtered
// view index: three ordered buckets whose concatenation is the final
// display order.
type PinnedIndex struct {
	// Top holds data-row indices pinned to the top, in request order.
	Top []int
	// Middle holds the remaining rows in original filtered order.
	Middle []int
	// Bottom holds data-row indices pinned to the bottom, in request order.
	Bottom []int
}

// ResolvePins partitions a filtered view index into pinned-top, scrollable
// middle, and pinned-bottom segments.
//
// Bucket contents follow the request order, restricted to IDs present in
// the filtered set; everything unpinned keeps its original filtered order.
// An ID named in both Top and Bottom resolves top-wins: the first bucket
// to claim a row keeps it. The multiset of indices is preserved exactly;
// no row is duplicated or dropped.
func ResolvePins(filtered []int, identity func(dataRow int) string, req PinRequest) PinnedIndex {
	if identity == nil || (len(req.Top) == 0 && len(req.Bottom) == 0) {
		return PinnedIndex{Middle: filtered}
	}

	byID := make(map[string]int, len(filtered))
	for _, row := range filtered {
		id := identity(row)
		if _, dup := byID[id]; !dup {
			byID[id] = row
		}
	}

	taken := make(map[int]bool, len(req.Top)+len(req.Bottom))
	pick := func(ids []string) []int {
		var out []int
		for _, id := range ids {
			row, ok := byID[id]
			if !ok || taken[row] {
				continue
			}
			taken[row] = true
			out = append(out, row)
		}
		return out
	}

	// Top claims first, so a row requested in both buckets pins to the top.
	top := pick(req.Top)
	bottom := pick(req.Bottom)

	middle := make([]int, 0, len(filtered)-len(top)-len(bottom))
	for _, row := range filtered {
		if !taken[row] {
			middle = append(middle, row)
		}
	}

	return PinnedIndex{Top: top, Middle: middle, Bottom: bottom}
}

// Order returns the concatenated display order: top ++ middle ++ bottom.
func (p PinnedIndex) Order() []int {
	out := make([]int, 0, p.Total())
	out = append(out, p.Top...)
	out = append(out, p.Middle...)
	out = append(out, p.Bottom...)
	return out
}

// TopCount returns the number of rows pinned to the top.
func (p PinnedIndex) TopCount() int { return len(p.Top) }

// BottomCount returns the number of rows pinned to the bottom.
func (p PinnedIndex) BottomCount() int { return len(p.Bottom) }

// ScrollableCount returns the number of rows in the scrollable middle.
func (p PinnedIndex) ScrollableCount() int { return len(p.Middle) }

// Total returns the number of rows across all three buckets.
func (p PinnedIndex) Total() int {
	return len(p.Top) + len(p.Middle) + len(p.Bottom)
}
