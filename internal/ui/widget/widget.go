// Package widget routes input to widgets: hit-testing, hot/pressed/focus
// tracking, mouse notifications and ControlState resolution.
package widget

import (
	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// Widget is what the dispatcher needs to know about a control.
//
// The dispatcher tracks widgets by identity, comparing them with ==, so
// implementations must be pointer types. ID is only used for logging and
// need not be unique.
type Widget interface {
	ID() string
	Bounds() geom.Rectangle
	Enabled() bool
	Focusable() bool
	Checked() bool
	Selected() bool
}

// Base is a plain Widget implementation that concrete controls can embed.
type Base struct {
	Name      string
	Rect      geom.Rectangle
	Disabled  bool
	CanFocus  bool
	IsChecked bool
	IsSelect  bool

	// Style is the control's private style table, usually a Copy of a skin
	// entry.
	Style *style.ControlStyle
}

func (b *Base) ID() string             { return b.Name }
func (b *Base) Bounds() geom.Rectangle { return b.Rect }
func (b *Base) Enabled() bool          { return !b.Disabled }
func (b *Base) Focusable() bool        { return b.CanFocus }
func (b *Base) Checked() bool          { return b.IsChecked }
func (b *Base) Selected() bool         { return b.IsSelect }
