// SPDX-License-Identifier: Unlicense OR MIT

package align

import (
	"gioui.org/layout"
)

// Group arranges children sequentially along an axis in a single pass:
// every child is forwarded to a Flex unchanged, and the group occupies
// the space the Flex reports. Anchor positions the run as a whole
// along the main axis when the context minimum leaves spare space.
//
// A Group does not isolate its children. A placement helper called
// inside a child still sees the group's remaining space, which can
// misplace content when groups nest; use Container for inner runs.
type Group struct {
	// Axis is the main axis of the run.
	Axis layout.Axis
	// Anchor positions the run along the main axis.
	Anchor layout.Alignment
	// Alignment is the cross axis alignment of children.
	Alignment layout.Alignment
	// Reversed lays the children out in reverse order, with Anchor
	// mirrored so the run stays pinned to the same edge.
	Reversed bool
}

// Layout the children along the group's axis.
func (g Group) Layout(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	a := g.Anchor
	if g.Reversed {
		children = reversed(children)
		switch a {
		case layout.Start:
			a = layout.End
		case layout.End:
			a = layout.Start
		}
	}
	return layout.Flex{
		Axis:      g.Axis,
		Spacing:   spacing(a),
		Alignment: g.Alignment,
	}.Layout(gtx, children...)
}

func reversed(children []layout.FlexChild) []layout.FlexChild {
	rev := make([]layout.FlexChild, len(children))
	for i, c := range children {
		rev[len(rev)-1-i] = c
	}
	return rev
}

// spacing leaves the spare main axis space on the side opposite the
// anchor.
func spacing(a layout.Alignment) layout.Spacing {
	switch a {
	case layout.End:
		return layout.SpaceStart
	case layout.Middle:
		return layout.SpaceSides
	default:
		return layout.SpaceEnd
	}
}

// Arrange lays out children as a run along axis, with the run as a
// whole anchored within the available space on the cross axis and the
// children aligned to the same side of the run.
func Arrange(gtx layout.Context, axis layout.Axis, anchor layout.Alignment, children ...layout.FlexChild) layout.Dimensions {
	return Place(gtx, runDirection(axis, anchor), func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: axis, Alignment: anchor}.Layout(gtx, children...)
	})
}

// runDirection is where a run anchored on its cross axis sits within
// the available space. The run is centered along its own axis.
func runDirection(axis layout.Axis, anchor layout.Alignment) layout.Direction {
	switch {
	case axis == layout.Horizontal && anchor == layout.Start:
		return layout.N
	case axis == layout.Horizontal && anchor == layout.End:
		return layout.S
	case axis == layout.Vertical && anchor == layout.Start:
		return layout.W
	case axis == layout.Vertical && anchor == layout.End:
		return layout.E
	default:
		return layout.Center
	}
}

// TopHorizontal arranges children in a horizontal run pinned to the
// top of the available space, centered horizontally.
func TopHorizontal(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	return Arrange(gtx, layout.Horizontal, layout.Start, children...)
}

// BottomHorizontal arranges children in a horizontal run pinned to the
// bottom of the available space, centered horizontally.
func BottomHorizontal(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	return Arrange(gtx, layout.Horizontal, layout.End, children...)
}

// CenterHorizontal arranges children in a horizontal run centered in
// the available space.
func CenterHorizontal(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	return Arrange(gtx, layout.Horizontal, layout.Middle, children...)
}

// LeftVertical arranges children in a vertical run pinned to the left
// edge of the available space, centered vertically.
func LeftVertical(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	return Arrange(gtx, layout.Vertical, layout.Start, children...)
}

// RightVertical arranges children in a vertical run pinned to the
// right edge of the available space, centered vertically.
func RightVertical(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	return Arrange(gtx, layout.Vertical, layout.End, children...)
}

// CenterVertical arranges children in a vertical run centered in the
// available space.
func CenterVertical(gtx layout.Context, children ...layout.FlexChild) layout.Dimensions {
	return Arrange(gtx, layout.Vertical, layout.Middle, children...)
}
