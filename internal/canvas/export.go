package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Sink receives a finished raster, e.g. to write it to disk.
type Sink func(img image.Image) error

// Export hands the drawn image to sink.
func (r *Raster) Export(sink Sink) error {
	return sink(r.img)
}

// PNGWriter encodes the image as PNG to w.
func PNGWriter(w io.Writer) Sink {
	return func(img image.Image) error {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	}
}

// PNGFile writes the image to path as PNG.
func PNGFile(path string) Sink {
	return func(img image.Image) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if err := PNGWriter(f)(img); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
}
