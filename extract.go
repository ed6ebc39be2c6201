package touchstick

import "github.com/hajimehoshi/ebiten/v2"

// ElementKind identifies which part of a stick widget a command draws.
type ElementKind uint8

const (
	ElementOutline ElementKind = iota
	ElementKnob
)

// String returns "outline" or "knob".
func (k ElementKind) String() string {
	if k == ElementKnob {
		return "knob"
	}
	return "outline"
}

// DrawCommand is one positioned, tinted image emitted by ExtractDrawList.
type DrawCommand struct {
	// StackIndex orders commands across sticks (and host UI nodes); lower
	// indices draw first.
	StackIndex int
	Element    ElementKind
	// Anchor and Offset are the Feedback values the command was built from.
	Anchor Vec2
	Offset Vec2
	// Position is the element center in screen space (Anchor + Offset).
	Position Vec2
	Size     Vec2
	Color    Color
	Image    *ebiten.Image

	order int // position before sorting, for stability
}

// DrawList is a reusable buffer of draw commands.
type DrawList struct {
	Commands []DrawCommand
	sortBuf  []DrawCommand
}

// Reset empties the list, keeping its capacity.
func (l *DrawList) Reset() {
	l.Commands = l.Commands[:0]
}

// ExtractDrawList appends the visible knob and outline commands of every
// stick to l and sorts the list by stacking order. Each stick's stack index
// is its position in r.Sticks() offset by base; the outline is drawn under
// the knob.
//
// A stick is skipped when its container is hidden or has zero size. An element
// is skipped when its placement is hidden, its tint alpha is zero, or its image
// is missing; missing images are reported through Registry.OnMissingAsset.
func ExtractDrawList[S comparable](r *Registry[S], l *DrawList, base int) {
	for i, s := range r.Sticks() {
		if !s.Container.Visible || !s.Container.HasArea() {
			continue
		}
		fb := s.Feedback()
		r.extractElement(l, s, &s.Outline, ElementOutline, fb.Anchor, fb.Outline, base+i)
		r.extractElement(l, s, &s.Knob, ElementKnob, fb.Anchor, fb.Knob, base+i)
	}
	l.Sort()
}

func (r *Registry[S]) extractElement(l *DrawList, s *Stick[S], el *Element, kind ElementKind, anchor Vec2, p Placement, stack int) {
	if !p.Visible || el.Color.A == 0 {
		return
	}
	if el.Image == nil {
		if r.debug {
			debugf("stick %v: %v image missing, not drawn", s.ID, kind)
		}
		if r.OnMissingAsset != nil {
			r.OnMissingAsset(s.ID, kind)
		}
		return
	}
	l.Commands = append(l.Commands, DrawCommand{
		StackIndex: stack,
		Element:    kind,
		Anchor:     anchor,
		Offset:     p.Offset,
		Position:   anchor.Add(p.Offset),
		Size:       el.Size,
		Color:      el.Color,
		Image:      el.Image,
	})
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for order ensures stability.
func commandLessOrEqual(a, b *DrawCommand) bool {
	if a.StackIndex != b.StackIndex {
		return a.StackIndex < b.StackIndex
	}
	return a.order <= b.order
}

// Sort orders the commands by StackIndex, keeping emission order within a
// stack index. Bottom-up merge sort: zero allocations after the sort buffer
// reaches its high-water mark.
func (l *DrawList) Sort() {
	n := len(l.Commands)
	if n <= 1 {
		return
	}
	for i := range l.Commands {
		l.Commands[i].order = i
	}
	if cap(l.sortBuf) < n {
		l.sortBuf = make([]DrawCommand, n)
	}
	l.sortBuf = l.sortBuf[:n]

	a := l.Commands
	b := l.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(l.Commands, l.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []DrawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
