package main

import (
	"image"
	"image/color"
)

// squareMask returns a size x size image filled with col.
func squareMask(size int, col color.Color) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			rgba.Set(x, y, col)
		}
	}
	return rgba
}

// triangleMask returns an upward-pointing filled triangle with its base on
// the bottom row.
func triangleMask(size int, col color.Color) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	for y := 0; y < size; y++ {
		progress := 1.0
		if size > 1 {
			progress = float64(y) / float64(size-1)
		}
		rowWidth := progress * float64(size)
		left := cx - rowWidth/2
		right := cx + rowWidth/2
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			if fx >= left && fx <= right {
				rgba.Set(x, y, col)
			}
		}
	}
	return rgba
}

// diamondMask returns a filled diamond touching the middle of each edge.
func diamondMask(size int, col color.Color) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if abs(dx)+abs(dy) <= c {
				rgba.Set(x, y, col)
			}
		}
	}
	return rgba
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
