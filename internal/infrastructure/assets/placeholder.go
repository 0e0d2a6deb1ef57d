package assets

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ensurePlaceholders generates simple branded placeholder images for any
// configured default asset missing on disk, so a fresh deployment renders
// complete documents without shipping binary assets.
func (s *Store) ensurePlaceholders() {
	if s.defaultLogo != "" {
		if _, err := os.Stat(s.defaultLogo); os.IsNotExist(err) {
			if err := writeLogoPlaceholder(s.defaultLogo); err != nil {
				log.Printf("WARNING: could not generate placeholder logo: %v", err)
			} else {
				log.Printf("generated placeholder logo at %s", s.defaultLogo)
			}
		}
	}
	if s.defaultSignature != "" {
		if _, err := os.Stat(s.defaultSignature); os.IsNotExist(err) {
			if err := writeSignaturePlaceholder(s.defaultSignature); err != nil {
				log.Printf("WARNING: could not generate placeholder signature: %v", err)
			} else {
				log.Printf("generated placeholder signature at %s", s.defaultSignature)
			}
		}
	}
}

func writeLogoPlaceholder(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 240, 120))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{52, 152, 219, 255}), image.Point{}, draw.Src)
	inner := image.Rect(4, 4, 236, 116)
	draw.Draw(img, inner, image.NewUniform(color.RGBA{236, 240, 241, 255}), image.Point{}, draw.Src)
	drawCenteredText(img, "NEXTRIDE", 55, color.RGBA{44, 62, 80, 255})
	drawCenteredText(img, "LOGISTICS", 75, color.RGBA{44, 62, 80, 255})
	return writePNG(path, img)
}

func writeSignaturePlaceholder(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 360, 120))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	// signature baseline
	line := image.Rect(40, 80, 320, 82)
	draw.Draw(img, line, image.NewUniform(color.RGBA{44, 62, 80, 255}), image.Point{}, draw.Src)
	drawCenteredText(img, "Authorized", 100, color.RGBA{128, 128, 128, 255})
	return writePNG(path, img)
}

// drawCenteredText renders one line horizontally centered at the given
// baseline using the built-in bitmap face.
func drawCenteredText(img *image.RGBA, text string, baselineY int, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	w := d.MeasureString(text)
	x := (fixed.I(img.Bounds().Dx()) - w) / 2
	d.Dot = fixed.Point26_6{X: x, Y: fixed.I(baselineY)}
	d.DrawString(text)
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
