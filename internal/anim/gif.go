// Package anim assembles rendered frames into animated GIFs and
// post-processes existing ones.
package anim

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// Paletted quantizes a rendered frame for GIF encoding.
func Paletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(out, bounds, img, bounds.Min)
	return out
}

// Encode writes frames as a looping GIF. delay is per frame in
// hundredths of a second.
func Encode(frames []image.Image, delay int, path string) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if delay < 1 {
		delay = 1
	}

	out := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		out.Image = append(out.Image, Paletted(frame))
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, &out)
}

// DoubleSpeed rewrites a GIF with every frame delay halved, floored at
// one hundredth of a second so no frame delay collapses to zero.
func DoubleSpeed(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := gif.DecodeAll(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	for i, d := range g.Delay {
		half := d / 2
		if half < 1 {
			half = 1
		}
		g.Delay[i] = half
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return gif.EncodeAll(out, g)
}
