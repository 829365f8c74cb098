// SPDX-License-Identifier: Unlicense OR MIT

package main

// A demo of single widget placement and centered runs. Resize the
// window; the buttons stay centered and the captions stay pinned to
// their edges.

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/gio-extras/align"
)

func main() {
	go func() {
		w := app.NewWindow(
			app.Title("Alignments"),
			app.Size(unit.Dp(800), unit.Dp(220)),
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
	ui := &UI{theme: th}
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
	theme   *material.Theme
	buttons [10]widget.Clickable
	clicked int
}

func (ui *UI) Layout(gtx layout.Context) layout.Dimensions {
	th := ui.theme
	for i := range ui.buttons {
		if ui.buttons[i].Clicked() {
			ui.clicked = i + 1
		}
	}

	align.Top(gtx, material.H6(th, "Gio alignments").Layout)
	align.Left(gtx, material.Caption(th, "Try resizing the window").Layout)
	align.Right(gtx, material.Caption(th, "The buttons stay centered").Layout)

	children := make([]layout.FlexChild, 0, 2*len(ui.buttons)-1)
	for i := range ui.buttons {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
		}
		btn := material.Button(th, &ui.buttons[i], fmt.Sprintf("Button %d", i+1))
		children = append(children, layout.Rigid(btn.Layout))
	}
	align.CenterHorizontal(gtx, children...)

	status := "Click a button!"
	if ui.clicked > 0 {
		status = fmt.Sprintf("You clicked button %d!", ui.clicked)
	}
	return align.Bottom(gtx, material.Body1(th, status).Layout)
}
