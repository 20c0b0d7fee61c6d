package tui

// layoutTree assigns a rect to every node in the tree, top-down.
// Stacks split their main axis among children; every child gets the
// full cross extent. Leaves with a size preference are clamped to their
// assigned rect component-wise, anchored at its origin.
func layoutTree(root *Node, available Rect) {
	if root == nil {
		return
	}
	layoutNode(root, available)
}

func layoutNode(n *Node, available Rect) {
	n.rect = available

	if n.isLeaf() {
		if pref, ok := n.preference(); ok {
			n.rect = clampRect(available, pref)
		}
		return
	}
	if len(n.children) == 0 {
		// An empty stack consumes its area and assigns nothing.
		return
	}

	extents := distribute(n.children, n.axis, mainExtent(available, n.axis))

	offset := 0
	for i, child := range n.children {
		var childArea Rect
		if n.axis == Horizontal {
			childArea = NewRect(available.X+offset, available.Y, extents[i], available.Height)
		} else {
			childArea = NewRect(available.X, available.Y+offset, available.Width, extents[i])
		}
		offset += extents[i]
		layoutNode(child, childArea)
	}
}

// distribute splits an available main-axis extent among children.
// Fixed children (those with a preference on the axis) get
// min(preference, available), shrunk proportionally when they collectively
// overflow; flexible children split what remains evenly, with the first
// remainder children taking one extra cell so the total is exact.
func distribute(children []*Node, axis Axis, available int) []int {
	extents := make([]int, len(children))
	if available <= 0 {
		return extents
	}

	var fixed []int // indices of fixed children
	fixedTotal := 0
	flexCount := 0
	for i, child := range children {
		if pref, ok := child.mainPref(axis); ok {
			if pref > available {
				pref = available
			}
			extents[i] = pref
			fixed = append(fixed, i)
			fixedTotal += pref
		} else {
			flexCount++
		}
	}

	if fixedTotal > available {
		shrinkFixed(extents, fixed, fixedTotal, available)
		return extents
	}

	if flexCount > 0 {
		remaining := available - fixedTotal
		share := remaining / flexCount
		extra := remaining % flexCount
		for i, child := range children {
			if _, ok := child.mainPref(axis); ok {
				continue
			}
			extents[i] = share
			if extra > 0 {
				extents[i]++
				extra--
			}
		}
	}
	return extents
}

// shrinkFixed scales overflowing fixed allotments down proportionally to
// their preference share, then hands the rounding shortfall back one
// cell at a time to the earliest fixed children so the sum lands exactly
// on available.
func shrinkFixed(extents []int, fixed []int, fixedTotal, available int) {
	sum := 0
	for _, i := range fixed {
		extents[i] = extents[i] * available / fixedTotal
		sum += extents[i]
	}
	for _, i := range fixed {
		if sum >= available {
			break
		}
		extents[i]++
		sum++
	}
}

// mainExtent returns the extent of r along the given axis.
func mainExtent(r Rect, axis Axis) int {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}

// clampRect shrinks area to a preferred size, component-wise, keeping
// the origin. A zero preference component leaves that axis at the full
// assigned extent.
func clampRect(area Rect, pref Size) Rect {
	w := area.Width
	if pref.Width > 0 && pref.Width < w {
		w = pref.Width
	}
	h := area.Height
	if pref.Height > 0 && pref.Height < h {
		h = pref.Height
	}
	return NewRect(area.X, area.Y, w, h)
}
