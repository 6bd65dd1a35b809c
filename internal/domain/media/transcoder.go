package media

import (
	"bytes"
	"image"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

type Options struct {
	Quality   int // 1-100, default 80
	MaxWidth  int // 0 = no bound
	MaxHeight int // 0 = no bound
}

type Result struct {
	Data             []byte  `json:"-"`
	OriginalSize     int     `json:"original_size"`
	CompressedSize   int     `json:"compressed_size"`
	ReductionPercent float64 `json:"reduction_percent"`
	Format           string  `json:"format"`
}

// Transcode re-encodes an image buffer at the requested quality, scaling it
// down (never up) to fit the optional bounds. It never fails: if the buffer
// cannot be decoded or re-encoded, the original bytes come back untouched
// with Format "unknown".
//
// WebP sources decode via x/image; the compressed target is JPEG since no
// pure-Go webp encoder exists. On JPEG encode failure the source format is
// retried as a fallback.
func Transcode(data []byte, opts Options) Result {
	quality := opts.Quality
	if quality < 1 || quality > 100 {
		quality = 80
	}

	img, srcFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return passthrough(data)
	}

	if opts.MaxWidth > 0 || opts.MaxHeight > 0 {
		bounds := img.Bounds()
		w, h := opts.MaxWidth, opts.MaxHeight
		if w <= 0 {
			w = bounds.Dx()
		}
		if h <= 0 {
			h = bounds.Dy()
		}
		// Fit only scales down, preserving aspect ratio.
		img = imaging.Fit(img, w, h, imaging.Lanczos)
	}

	format := "jpeg"
	out, err := encode(img, imaging.JPEG, quality)
	if err != nil {
		f, ferr := imaging.FormatFromExtension("." + srcFormat)
		if ferr != nil {
			return passthrough(data)
		}
		out, err = encode(img, f, quality)
		if err != nil {
			return passthrough(data)
		}
		format = srcFormat
	}

	return Result{
		Data:             out,
		OriginalSize:     len(data),
		CompressedSize:   len(out),
		ReductionPercent: reduction(len(data), len(out)),
		Format:           format,
	}
}

func encode(img image.Image, format imaging.Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func passthrough(data []byte) Result {
	return Result{
		Data:             data,
		OriginalSize:     len(data),
		CompressedSize:   len(data),
		ReductionPercent: 0,
		Format:           "unknown",
	}
}

// reduction reports the size change as a percentage, rounded to 2 decimals.
// A pathological encode that grows the file yields a negative value; this is
// informational and deliberately not clamped.
func reduction(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	pct := float64(original-compressed) / float64(original) * 100
	return math.Round(pct*100) / 100
}
