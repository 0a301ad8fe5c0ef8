//go:build ebiten

package render

import (
	"image"
	"image/color"

	"fractal-tree/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ImageSurface draws onto an offscreen ebiten image.
type ImageSurface struct {
	Context
	img  *ebiten.Image
	size core.Size
	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16
}

// NewImageSurface allocates a w x h surface.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{Context: NewContext()}
	s.SetSize(w, h)
	return s
}

// Image returns the backing image, or nil while the surface is empty.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Size returns the surface dimensions.
func (s *ImageSurface) Size() core.Size { return s.size }

// SetSize reallocates the backing image. An empty size releases it.
func (s *ImageSurface) SetSize(w, h int) {
	if s.size.W == w && s.size.H == h && s.img != nil {
		return
	}
	s.size = core.Size{W: w, H: h}
	if s.img != nil {
		s.img.Dispose()
		s.img = nil
	}
	if !s.size.Empty() {
		s.img = ebiten.NewImage(w, h)
	}
}

// Clear makes every pixel transparent.
func (s *ImageSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// StrokeLine draws an antialiased line through the current transform.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1 float64) {
	if s.img == nil {
		return
	}
	st := s.Current()
	ax, ay := st.Matrix.Apply(x0, y0)
	bx, by := st.Matrix.Apply(x1, y1)
	w := st.Width
	if w < 1 {
		w = 1
	}
	vector.StrokeLine(s.img, float32(ax), float32(ay), float32(bx), float32(by), float32(w), st.Stroke, true)
}

// FillRect fills the transformed rectangle as a quad.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	st := s.Current()
	s.path = vector.Path{}
	for i, p := range [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		px, py := st.Matrix.Apply(p[0], p[1])
		if i == 0 {
			s.path.MoveTo(float32(px), float32(py))
		} else {
			s.path.LineTo(float32(px), float32(py))
		}
	}
	s.path.Close()

	s.vs, s.is = s.path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	r, g, b, a := st.Fill.R, st.Fill.G, st.Fill.B, st.Fill.A
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 1, 1
		s.vs[i].ColorR = float32(r) / 255
		s.vs[i].ColorG = float32(g) / 255
		s.vs[i].ColorB = float32(b) / 255
		s.vs[i].ColorA = float32(a) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

var _ core.Surface = (*ImageSurface)(nil)
