package scratchfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing contract the animation core renders against. Surface
// is the Ebitengine-backed implementation; tests substitute a recording fake.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// Clear erases the whole drawable area to transparent.
	Clear()
	// Fill floods the whole drawable area with a color.
	Fill(c Color)
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, r float64, c Color)
	// EraseCircle punches a transparent circular hole centered at (x, y).
	EraseCircle(x, y, r float64)
	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img *ebiten.Image, x, y float64)
	// Pixels returns the RGBA pixel buffer (4 bytes per pixel, row-major).
	// The returned slice is reused; it is only valid until the next call.
	Pixels() []byte
}

// brushSize is the side length of the cached erase brush image. The brush is
// scaled to the requested radius at draw time.
const brushSize = 64

// Surface owns one drawing target. The backing image is resolved lazily
// through the resolver on first access, never at construction, because the
// image may not exist yet when the Surface is created (e.g. before the game
// window is up). After the first successful resolution the image is memoized.
type Surface struct {
	resolve func() *ebiten.Image
	img     *ebiten.Image
	brush   *ebiten.Image
	pixBuf  []byte
}

// NewSurface creates a Surface whose backing image is obtained from resolve
// on first use. A nil result from resolve leaves the Surface unresolved; it
// retries on the next access.
func NewSurface(resolve func() *ebiten.Image) *Surface {
	return &Surface{resolve: resolve}
}

// NewImageSurface creates a Surface over an already-existing image.
func NewImageSurface(img *ebiten.Image) *Surface {
	return &Surface{resolve: func() *ebiten.Image { return img }}
}

// Image returns the backing image, resolving and memoizing it on first call.
// Returns nil while the resolver cannot produce an image yet.
func (s *Surface) Image() *ebiten.Image {
	if s.img == nil && s.resolve != nil {
		s.img = s.resolve()
	}
	return s.img
}

// Size returns the backing image dimensions, or (0, 0) while unresolved.
func (s *Surface) Size() (int, int) {
	img := s.Image()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear erases the whole surface to transparent. No-op while unresolved.
func (s *Surface) Clear() {
	if img := s.Image(); img != nil {
		img.Clear()
	}
}

// Fill floods the surface with c. No-op while unresolved.
func (s *Surface) Fill(c Color) {
	if img := s.Image(); img != nil {
		img.Fill(c.nrgba())
	}
}

// FillCircle draws a filled, anti-aliased circle centered at (x, y).
func (s *Surface) FillCircle(x, y, r float64, c Color) {
	img := s.Image()
	if img == nil {
		return
	}
	vector.DrawFilledCircle(img, float32(x), float32(y), float32(r), c.nrgba(), true)
}

// EraseCircle punches a transparent hole of radius r centered at (x, y) using
// a destination-out blend, the same compositing the scratch brush uses in a
// browser canvas.
func (s *Surface) EraseCircle(x, y, r float64) {
	img := s.Image()
	if img == nil || r <= 0 {
		return
	}
	if s.brush == nil {
		s.brush = ebiten.NewImage(brushSize, brushSize)
		vector.DrawFilledCircle(s.brush, brushSize/2, brushSize/2, brushSize/2,
			color.White, true)
	}
	scale := 2 * r / brushSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-r, y-r)
	op.Blend = ebiten.BlendDestinationOut
	img.DrawImage(s.brush, op)
}

// DrawImage draws src with its top-left corner at (x, y).
func (s *Surface) DrawImage(src *ebiten.Image, x, y float64) {
	img := s.Image()
	if img == nil || src == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	img.DrawImage(src, op)
}

// Pixels reads back the surface's RGBA pixels into a reused buffer.
// Returns nil while unresolved.
func (s *Surface) Pixels() []byte {
	img := s.Image()
	if img == nil {
		return nil
	}
	w, h := s.Size()
	if need := 4 * w * h; len(s.pixBuf) != need {
		s.pixBuf = make([]byte, need)
	}
	img.ReadPixels(s.pixBuf)
	return s.pixBuf
}
