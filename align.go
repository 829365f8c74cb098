// SPDX-License-Identifier: Unlicense OR MIT

/*
Package align provides alignment helpers for Gio programs: placing a
single widget anchored within the available space, arranging runs of
widgets pinned to an edge or centered, and isolating nested alignment
inside containers that occupy no more space than their content.

Placement helpers answer "draw this at the bottom of whatever space I
have" without computing offsets by hand:

	align.Bottom(gtx, material.Button(th, &click, "OK").Layout)

Because the final size of immediate-mode content is only known after it
is laid out, every helper records the content into a macro first and
replays it at the anchored position afterwards. The recording is the
measurement pass; the replay is the placement pass. Content is laid out
exactly once.
*/
package align

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
)

// An Aligner returns the origin for content of the given size placed
// within space. Aligners must be pure functions of their arguments.
type Aligner func(size, space image.Point) image.Point

// Anchored returns the Aligner that anchors content according to d.
func Anchored(d layout.Direction) Aligner {
	return func(size, space image.Point) image.Point {
		return anchor(d, size, space)
	}
}

// anchor returns the origin of a size-sized rectangle anchored by d
// within a space-sized area. Content larger than the area is pinned to
// the near edge, never positioned outside it.
func anchor(d layout.Direction, size, space image.Point) image.Point {
	var p image.Point
	switch d {
	case layout.N, layout.S, layout.Center:
		p.X = (space.X - size.X) / 2
	case layout.NE, layout.SE, layout.E:
		p.X = space.X - size.X
	}
	switch d {
	case layout.W, layout.Center, layout.E:
		p.Y = (space.Y - size.Y) / 2
	case layout.SW, layout.S, layout.SE:
		p.Y = space.Y - size.Y
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

// Layout positions w within the space the context offers. The widget
// is laid out at its natural size, painted at the origin reported by
// a, and the occupied space is returned.
func (a Aligner) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	cs := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	dims := w(gtx)
	call := macro.Stop()
	space := occupied(cs, dims.Size)
	p := a(dims.Size, space)
	defer op.Offset(p).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return layout.Dimensions{
		Size:     space,
		Baseline: dims.Baseline + space.Y - dims.Size.Y - p.Y,
	}
}

// Place lays out w anchored by d within the space the context offers.
func Place(gtx layout.Context, d layout.Direction, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	cs := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	dims := w(gtx)
	call := macro.Stop()
	space := occupied(cs, dims.Size)
	p := anchor(d, dims.Size, space)
	defer op.Offset(p).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return layout.Dimensions{
		Size:     space,
		Baseline: dims.Baseline + space.Y - dims.Size.Y - p.Y,
	}
}

// occupied is the space content is anchored within: the context
// minimum, expanded to hold oversized content.
func occupied(cs layout.Constraints, size image.Point) image.Point {
	space := cs.Min
	if size.X > space.X {
		space.X = size.X
	}
	if size.Y > space.Y {
		space.Y = size.Y
	}
	return space
}

// Top places w at the top of the available space, horizontally
// centered.
func Top(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.N, w)
}

// Bottom places w at the bottom of the available space, horizontally
// centered.
func Bottom(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.S, w)
}

// Left places w at the left edge of the available space, vertically
// centered.
func Left(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.W, w)
}

// Right places w at the right edge of the available space, vertically
// centered.
func Right(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.E, w)
}

// Center places w at the center of the available space.
func Center(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.Center, w)
}

// TopLeft places w in the top left corner of the available space.
func TopLeft(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.NW, w)
}

// TopRight places w in the top right corner of the available space.
func TopRight(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.NE, w)
}

// BottomLeft places w in the bottom left corner of the available
// space.
func BottomLeft(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.SW, w)
}

// BottomRight places w in the bottom right corner of the available
// space.
func BottomRight(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return Place(gtx, layout.SE, w)
}
