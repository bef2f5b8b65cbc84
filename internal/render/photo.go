package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	// Raster formats accepted from the upload surface.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// photoPNG decodes the stored photo and re-encodes it as PNG, normalizing
// whatever raster format was uploaded.
func photoPNG(p *resume.Photo) ([]byte, error) {
	if p == nil || len(p.Data) == 0 {
		return nil, fmt.Errorf("no photo data")
	}

	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode photo png: %w", err)
	}
	return buf.Bytes(), nil
}

// photoDataURI returns the photo as an inline PNG data URI for HTML embedding.
func photoDataURI(p *resume.Photo) (string, error) {
	data, err := photoPNG(p)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
