// SPDX-License-Identifier: Unlicense OR MIT

package main

// A demo of nested containers: each row and column occupies only its
// measured size, so the inner alignments cannot disturb the outer
// ones.

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/gio-extras/align"
)

func main() {
	go func() {
		w := app.NewWindow(
			app.Title("Containers"),
			app.Size(unit.Dp(400), unit.Dp(360)),
		)
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ui := NewUI(th)
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

type UI struct {
	theme *material.Theme
	name  widget.Editor
	age   widget.Float
	inc   widget.Clickable
	dec   widget.Clickable
	plus  *widget.Icon
	minus *widget.Icon
}

const maxAge = 120

func NewUI(th *material.Theme) *UI {
	ui := &UI{
		theme: th,
		name:  widget.Editor{SingleLine: true},
		plus:  mustIcon(icons.ContentAdd),
		minus: mustIcon(icons.ContentRemove),
	}
	ui.name.SetText("Arthur")
	ui.age.Value = 42.0 / maxAge
	return ui
}

func (ui *UI) Layout(gtx layout.Context) layout.Dimensions {
	if ui.inc.Clicked() && ui.age.Value < 1 {
		ui.age.Value += 1.0 / maxAge
	}
	if ui.dec.Clicked() && ui.age.Value > 0 {
		ui.age.Value -= 1.0 / maxAge
	}
	return align.Center(gtx, func(gtx layout.Context) layout.Dimensions {
		return align.Column(gtx, layout.Middle, ui.layoutForm)
	})
}

func (ui *UI) layoutForm(gtx layout.Context) layout.Dimensions {
	th := ui.theme
	age := int(ui.age.Value*maxAge + 0.5)
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(material.H5(th, "My Gio application").Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return align.Row(gtx, layout.Middle, ui.layoutNameRow)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(200)
			return material.Slider(th, &ui.age).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(material.Body1(th, fmt.Sprintf("Hello %q, age %d", ui.name.Text(), age)).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			sz := gtx.Dp(48)
			return colorBox(gtx, image.Pt(sz, sz), color.NRGBA{R: 0x3c, G: 0x98, B: 0x7e, A: 0xff})
		}),
	)
}

func (ui *UI) layoutNameRow(gtx layout.Context) layout.Dimensions {
	th := ui.theme
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(material.Body1(th, "Your name:").Layout),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return align.Column(gtx, layout.Middle, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.IconButton(th, &ui.inc, ui.plus, "Increment age").Layout),
					layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
					layout.Rigid(material.IconButton(th, &ui.dec, ui.minus, "Decrement age").Layout),
				)
			})
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			border := widget.Border{
				Color:        color.NRGBA{A: 0x6b},
				CornerRadius: unit.Dp(3),
				Width:        unit.Dp(1),
			}
			return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Dp(140)
					return material.Editor(th, &ui.name, "Your name").Layout(gtx)
				})
			})
		}),
	)
}

func colorBox(gtx layout.Context, size image.Point, col color.NRGBA) layout.Dimensions {
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}
