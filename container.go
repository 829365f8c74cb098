// SPDX-License-Identifier: Unlicense OR MIT

package align

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
)

// Container isolates nested alignment from the surrounding layout. Its
// content is laid out at its natural size into a macro, the measured
// box is anchored within the space available along the container's
// axis, and the macro is replayed there. The container reports exactly
// the measured size, so the outer layout advances as if the content
// were one opaque widget no matter how the content aligns itself
// internally.
//
// Reporting less than the context minimum is the point of the
// contract: a 30 pixel row centered in 100 pixels of width occupies
// 30, not 100. Content larger than the available space is pinned to
// the near edge and left to the host's clipping.
type Container struct {
	// Axis is the axis the measured box is anchored along. For a run
	// of widgets this is normally the run's own main axis.
	Axis layout.Axis
	// Anchor positions the measured box within the space available
	// along Axis.
	Anchor layout.Alignment
	// Padding is added around the content and included in the
	// measured size.
	Padding layout.Inset
	// MinSize and MaxSize bound the measured size. A zero MaxSize
	// axis is unbounded.
	MinSize, MaxSize image.Point
}

// Layout measures w without committing it, then paints it anchored
// within the available space. w is invoked exactly once; the recorded
// macro serves as both the measurement and the placement pass.
func (c Container) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	cs := gtx.Constraints
	macro := op.Record(gtx.Ops)
	gtx.Constraints.Min = image.Point{}
	dims := c.Padding.Layout(gtx, w)
	call := macro.Stop()
	size := c.bound(dims.Size)
	main := c.Axis.Convert(size).X
	space := c.Axis.Convert(cs.Max).X
	var off int
	switch c.Anchor {
	case layout.Middle:
		off = (space - main) / 2
	case layout.End:
		off = space - main
	}
	if off < 0 {
		off = 0
	}
	defer op.Offset(c.Axis.Convert(image.Pt(off, 0))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: size, Baseline: dims.Baseline}
}

func (c Container) bound(size image.Point) image.Point {
	if size.X < c.MinSize.X {
		size.X = c.MinSize.X
	}
	if size.Y < c.MinSize.Y {
		size.Y = c.MinSize.Y
	}
	if c.MaxSize.X > 0 && size.X > c.MaxSize.X {
		size.X = c.MaxSize.X
	}
	if c.MaxSize.Y > 0 && size.Y > c.MaxSize.Y {
		size.Y = c.MaxSize.Y
	}
	return size
}

// Row lays out w anchored within the available width, occupying only
// its measured size. w typically arranges several widgets with a
// horizontal Flex.
func Row(gtx layout.Context, anchor layout.Alignment, w layout.Widget) layout.Dimensions {
	return Container{Axis: layout.Horizontal, Anchor: anchor}.Layout(gtx, w)
}

// Column lays out w anchored within the available height, occupying
// only its measured size. w typically arranges several widgets with a
// vertical Flex.
func Column(gtx layout.Context, anchor layout.Alignment, w layout.Widget) layout.Dimensions {
	return Container{Axis: layout.Vertical, Anchor: anchor}.Layout(gtx, w)
}
