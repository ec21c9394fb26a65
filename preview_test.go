package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterLineStaysInItsBox(t *testing.T) {
	r := newRasterPdf(40, 30, 1)
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	r.SetDrawColor(255, 0, 0)
	r.SetLineWidth(2)
	r.Line(10, 20, 30, 20) // pixel rows 19 and 20
	for _, y := range []int{19, 20} {
		c := r.img.RGBAAt(20, y)
		assert.Greater(t, c.R, uint8(250))
		assert.Less(t, c.G, uint8(5))
	}
	assert.Equal(t, white, r.img.RGBAAt(20, 18))
	assert.Equal(t, white, r.img.RGBAAt(20, 21))
	assert.Equal(t, white, r.img.RGBAAt(9, 20))
	assert.Equal(t, white, r.img.RGBAAt(30, 20))
	assert.Equal(t, white, r.img.RGBAAt(1, 1))
	//
	// a line far from the origin is painted where it is drawn
	r.SetDrawColor(0, 0, 255)
	r.SetLineWidth(1)
	r.Line(35, 2, 35, 12)
	assert.NotEqual(t, white, r.img.RGBAAt(35, 7))
	assert.Equal(t, white, r.img.RGBAAt(0, 5))
	assert.Equal(t, white, r.img.RGBAAt(35, 14))
}

func TestRasterLineOffPage(t *testing.T) {
	r := newRasterPdf(10, 10, 1)
	r.SetLineWidth(1)
	r.Line(20, 20, 30, 20)
	r.Line(5, 5, 5, 5)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, r.img.RGBAAt(x, y))
		}
	}
}
