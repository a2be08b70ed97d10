package scratchfx

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is a debug overlay Renderable that displays the current FPS and
// TPS, refreshed about twice a second. Register it in a Scene like any other
// object; it draws on top of whatever rendered before it.
type FPSWidget struct {
	Base
	img  *ebiten.Image
	last time.Time
}

// NewFPSWidget creates the widget with its top-left corner at (top, left).
func NewFPSWidget(top, left float64) *FPSWidget {
	return &FPSWidget{
		Base: Base{Top: top, Left: left},
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		img: ebiten.NewImage(100, 32),
	}
}

// Render refreshes the readout every ~0.5 seconds and draws it.
func (w *FPSWidget) Render(c Canvas) {
	if now := time.Now(); now.Sub(w.last) >= 500*time.Millisecond {
		w.last = now
		w.img.Clear()
		// Semi-transparent background for readability
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	c.DrawImage(w.img, w.Left, w.Top)
}
