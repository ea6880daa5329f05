package main

import (
	"github.com/Faultbox/midgard-ui/internal/skin"
	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// builtinSkin is used when no skin file is configured. Bulk setters run
// first; per-state overrides follow so they survive.
func builtinSkin() *skin.Skin {
	sk := skin.New("builtin")

	panel := style.NewControlStyle()
	panel.SetBackColor(style.ARGB(240, 20, 20, 30))
	sk.Add("panel", panel)

	button := style.NewControlStyle()
	button.SetBackColor(style.RGB(38, 38, 51))
	button.SetTextAlign(style.AlignMiddleCenter)
	button.SetTextPadding(geom.Uniform(4))
	button.Hot().BackColor = style.RGB(64, 64, 90)
	button.Pressed().BackColor = style.RGB(26, 77, 128)
	button.Focused().BackColor = style.RGB(45, 45, 70)
	button.Disabled().BackColor = style.RGB(30, 30, 30)
	button.Disabled().TextColor = style.RGB(128, 128, 150)
	sk.Add("button", button)

	checkbox := button.Copy()
	checkbox.SetTextAlign(style.AlignMiddleLeft)
	for _, st := range []style.ControlState{
		style.Checked, style.CheckedHot, style.CheckedPressed, style.CheckedFocused,
	} {
		checkbox.At(st).BackColor = style.RGB(51, 153, 230)
	}
	sk.Add("checkbox", checkbox)

	item := style.NewControlStyle()
	item.SetBackColor(style.ColorTransparent)
	item.SetTextAlign(style.AlignMiddleLeft)
	item.Hot().BackColor = style.RGB(64, 64, 90)
	item.Selected().BackColor = style.RGB(51, 153, 230).WithAlpha(128)
	item.SelectedHot().BackColor = style.RGB(51, 153, 230)
	sk.Add("listitem", item)

	return sk
}
