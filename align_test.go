// SPDX-License-Identifier: Unlicense OR MIT

package align_test

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/gio-extras/align"
)

func TestAnchorOffsets(t *testing.T) {
	size := image.Pt(40, 20)
	space := image.Pt(100, 100)
	tests := []struct {
		d    layout.Direction
		want image.Point
	}{
		{layout.NW, image.Pt(0, 0)},
		{layout.N, image.Pt(30, 0)},
		{layout.NE, image.Pt(60, 0)},
		{layout.E, image.Pt(60, 40)},
		{layout.SE, image.Pt(60, 80)},
		{layout.S, image.Pt(30, 80)},
		{layout.SW, image.Pt(0, 80)},
		{layout.W, image.Pt(0, 40)},
		{layout.Center, image.Pt(30, 40)},
	}
	for _, tc := range tests {
		if got := align.Anchored(tc.d)(size, space); got != tc.want {
			t.Errorf("%v: anchored %v in %v at %v, want %v", tc.d, size, space, got, tc.want)
		}
	}
}

func TestAnchorClamp(t *testing.T) {
	space := image.Pt(100, 100)
	tests := []struct {
		d    layout.Direction
		size image.Point
		want image.Point
	}{
		// Oversized on both axes: pinned to the top left corner.
		{layout.Center, image.Pt(150, 120), image.Pt(0, 0)},
		{layout.SE, image.Pt(150, 120), image.Pt(0, 0)},
		// Oversized on one axis only: the other still anchors.
		{layout.S, image.Pt(150, 20), image.Pt(0, 80)},
		{layout.E, image.Pt(150, 20), image.Pt(0, 40)},
		{layout.SE, image.Pt(40, 120), image.Pt(60, 0)},
	}
	for _, tc := range tests {
		got := align.Anchored(tc.d)(tc.size, space)
		if got != tc.want {
			t.Errorf("%v: anchored %v in %v at %v, want %v", tc.d, tc.size, space, got, tc.want)
		}
		if got.X < 0 || got.Y < 0 {
			t.Errorf("%v: negative origin %v", tc.d, got)
		}
	}
}

func TestAnchorPure(t *testing.T) {
	a := align.Anchored(layout.Center)
	size := image.Pt(40, 20)
	space := image.Pt(100, 100)
	first := a(size, space)
	for i := 0; i < 10; i++ {
		if got := a(size, space); got != first {
			t.Fatalf("anchor not stable: got %v, want %v", got, first)
		}
	}
}

func TestPlaceOccupiesSpace(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	dims := align.Center(gtx, fixed{Size: image.Pt(40, 20)}.Layout)
	if want := image.Pt(100, 100); dims.Size != want {
		t.Errorf("got %v, want %v", dims.Size, want)
	}
}

func TestPlaceOversized(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	// Oversized content expands the occupied space rather than being
	// positioned off it.
	dims := align.Place(gtx, layout.SE, fixed{Size: image.Pt(150, 20)}.Layout)
	if want := image.Pt(150, 100); dims.Size != want {
		t.Errorf("got %v, want %v", dims.Size, want)
	}
}

func TestPlaceLooseConstraints(t *testing.T) {
	gtx := layout.Context{
		Ops: new(op.Ops),
		Constraints: layout.Constraints{
			Max: image.Pt(100, 100),
		},
	}
	// With no minimum there is no space to anchor within; the content
	// occupies only itself.
	dims := align.Bottom(gtx, fixed{Size: image.Pt(40, 20)}.Layout)
	if want := image.Pt(40, 20); dims.Size != want {
		t.Errorf("got %v, want %v", dims.Size, want)
	}
}

func TestAlignerLayout(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	var gotSize, gotSpace image.Point
	custom := align.Aligner(func(size, space image.Point) image.Point {
		gotSize, gotSpace = size, space
		return image.Pt(7, 9)
	})
	dims := custom.Layout(gtx, fixed{Size: image.Pt(40, 20)}.Layout)
	if want := image.Pt(40, 20); gotSize != want {
		t.Errorf("aligner saw size %v, want %v", gotSize, want)
	}
	if want := image.Pt(100, 100); gotSpace != want {
		t.Errorf("aligner saw space %v, want %v", gotSpace, want)
	}
	if want := image.Pt(100, 100); dims.Size != want {
		t.Errorf("got %v, want %v", dims.Size, want)
	}
}

type fixed struct {
	Size image.Point
}

func (f fixed) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{Size: f.Size}
}
