// chrdump reads the CHR-ROM of an iNES image and renders its 8x8 tiles
// as a PNG sprite sheet. It exists purely as a debugging aid for
// cartridge loading: it decodes the loaded CHR bytes directly, without
// going through the mapper. It is not part of the NES's own rendering
// pipeline, which this core does not implement.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/taraka/nesgo/cartridge"
)

var (
	cart  = flag.String("cart", "", "Path to an iNES ROM image to read CHR-ROM from")
	out   = flag.String("out", "chr.png", "Output PNG path")
	scale = flag.Int("scale", 2, "Integer upscale factor for the output image")
)

const (
	tileSize   = 8
	tileBytes  = 16 // two 8-byte bitplanes per tile
	sheetWidth = 16 // tiles per row
)

// nesPalette is a 4-entry grayscale stand-in for the real NES palette,
// which lives in the PPU this core doesn't implement; it's enough to make
// tile structure visible.
var nesPalette = [4]color.RGBA{
	{0, 0, 0, 0xFF},
	{0x60, 0x60, 0x60, 0xFF},
	{0xB0, 0xB0, 0xB0, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

func main() {
	flag.Parse()
	if *cart == "" {
		log.Fatalf("usage: %s -cart <path-to.nes> [-out chr.png] [-scale N]", os.Args[0])
	}

	f, err := os.Open(*cart)
	if err != nil {
		log.Fatalf("can't open %s: %v", *cart, err)
	}
	defer f.Close()

	c, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("can't load %s: %v", *cart, err)
	}
	if len(c.CHR) == 0 {
		log.Fatalf("%s has no CHR-ROM (CHR RAM cartridges aren't dumpable this way)", *cart)
	}

	sheet := renderSheet(c.CHR)

	if *scale > 1 {
		bounds := sheet.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()**scale, bounds.Dy()**scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), sheet, bounds, xdraw.Over, nil)
		sheet = scaled
	}

	wf, err := os.Create(*out)
	if err != nil {
		log.Fatalf("can't create %s: %v", *out, err)
	}
	defer wf.Close()
	if err := png.Encode(wf, sheet); err != nil {
		log.Fatalf("can't encode png: %v", err)
	}
}

// renderSheet decodes every 16-byte, 2-bits-per-pixel tile in chr into a
// flat grid image, sheetWidth tiles wide.
func renderSheet(chr []uint8) *image.RGBA {
	tiles := len(chr) / tileBytes
	rows := (tiles + sheetWidth - 1) / sheetWidth
	img := image.NewRGBA(image.Rect(0, 0, sheetWidth*tileSize, rows*tileSize))

	for t := 0; t < tiles; t++ {
		ox := (t % sheetWidth) * tileSize
		oy := (t / sheetWidth) * tileSize
		drawTile(img, chr[t*tileBytes:(t+1)*tileBytes], ox, oy)
	}
	return img
}

func drawTile(img draw.Image, tile []uint8, ox, oy int) {
	for y := 0; y < tileSize; y++ {
		lo := tile[y]
		hi := tile[y+tileSize]
		for x := 0; x < tileSize; x++ {
			bit := uint(7 - x)
			idx := ((hi>>bit)&1)<<1 | (lo>>bit)&1
			img.Set(ox+x, oy+y, nesPalette[idx])
		}
	}
}
