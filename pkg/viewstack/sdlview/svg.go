package sdlview

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders an SVG document into a size x size image.
func RasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

func iconKey(name string, size int) string {
	return fmt.Sprintf("%s@%d", name, size)
}

// textureFromRGBA uploads img through a surface with the same byte order.
func textureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		copy(pixels[y*pitch:y*pitch+w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}
