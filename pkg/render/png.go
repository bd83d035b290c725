package render

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

func EncodePNG(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// SavePNG writes img to path, replacing an existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}

	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
