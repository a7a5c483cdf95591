package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	// decoders for image.Decode
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// makePreview downsizes an encoded image so that its longer side is at most
// maxSide and returns it as a JPEG data URI.
func makePreview(data []byte, maxSide, quality int) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPreviewEncodingFailed, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return "", fmt.Errorf("%w: empty image", ErrPreviewEncodingFailed)
	}

	dw, dh := w, h
	if w > maxSide || h > maxSide {
		if w >= h {
			dw, dh = maxSide, max(1, h*maxSide/w)
		} else {
			dw, dh = max(1, w*maxSide/h), maxSide
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPreviewEncodingFailed, err)
	}

	return dataURI("image/jpeg", buf.Bytes()), nil
}

func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
