package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/rigelrozanski/nibsheet/guide"
	"golang.org/x/image/vector"
)

// rasterPdf fulfills guide.Renderer by painting onto an RGBA image.
// Every line is filled as a quadrilateral of the current pen width.
type rasterPdf struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64 // pixels per mm
	pen   color.RGBA
	width float64
}

var _ guide.Renderer = &rasterPdf{}

func newRasterPdf(widthMM, heightMM, dpmm float64) *rasterPdf {
	w := int(math.Ceil(widthMM * dpmm))
	h := int(math.Ceil(heightMM * dpmm))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &rasterPdf{
		img:   img,
		z:     vector.NewRasterizer(0, 0),
		scale: dpmm,
		pen:   color.RGBA{0, 0, 0, 0xff},
		width: 0.2,
	}
}

func (r *rasterPdf) SetDrawColor(red, green, blue int) {
	r.pen = color.RGBA{uint8(red), uint8(green), uint8(blue), 0xff}
}

func (r *rasterPdf) SetLineWidth(width float64) {
	r.width = width
}

func (r *rasterPdf) Line(x1, y1, x2, y2 float64) {
	ax, ay := x1*r.scale, y1*r.scale
	bx, by := x2*r.scale, y2*r.scale
	length := math.Hypot(bx-ax, by-ay)
	if length == 0 {
		return
	}
	// never thinner than one pixel, or hairlines vanish
	half := math.Max(r.width*r.scale, 1) / 2
	nx, ny := -(by-ay)/length*half, (bx-ax)/length*half

	xs := [4]float64{ax + nx, bx + nx, bx - nx, ax - nx}
	ys := [4]float64{ay + ny, by + ny, by - ny, ay - ny}

	// rasterise only the pixels the quad can touch
	minX, maxX := math.Min(xs[0], xs[3]), math.Max(xs[0], xs[3])
	minY, maxY := math.Min(ys[0], ys[3]), math.Max(ys[0], ys[3])
	for i := 1; i < 3; i++ {
		minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
		minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
	}
	bbox := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(r.img.Bounds())
	if bbox.Empty() {
		return
	}
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	r.z.Reset(bbox.Dx(), bbox.Dy())
	r.z.MoveTo(float32(xs[0]-ox), float32(ys[0]-oy))
	for i := 1; i < 4; i++ {
		r.z.LineTo(float32(xs[i]-ox), float32(ys[i]-oy))
	}
	r.z.ClosePath()
	dst := r.img.SubImage(bbox).(*image.RGBA)
	r.z.Draw(dst, bbox, image.NewUniform(r.pen), image.Point{})
}

// renderPreview paints the model at dpmm pixels per millimeter.
func renderPreview(m *guide.PageModel, dpmm float64) (*image.RGBA, int, error) {
	if !(dpmm > 0) || math.IsInf(dpmm, 1) {
		return nil, 0, fmt.Errorf("resolution must be positive, is %g", dpmm)
	}
	strokes, err := guide.Render(m)
	if err != nil {
		return nil, 0, err
	}
	w, h := m.Page.Size()
	r := newRasterPdf(w, h, dpmm)
	guide.Draw(r, strokes)
	return r.img, len(strokes), nil
}

func writePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return f.Close()
}
