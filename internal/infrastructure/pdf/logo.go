package pdf

import (
	"bytes"
	"encoding/base64"

	"github.com/jung-kurt/gofpdf"
)

// defaultLogoBase64 is a small PNG placeholder shown when the billing
// settings carry no uploaded logo.
const defaultLogoBase64 = "iVBORw0KGgoAAAANSUhEUgAAAGAAAAAgCAIAAABiouoDAAAAvklEQVR42u3aOQqAQAyFYXsPYe0JvK23tFewUmZJZhHm+UNKEd6HzJI4Let21bHPsbofqKze7+9X0wcZxtV5AHVKMrTOG6h5ntF1AkANUwnohIGaZNPQiQJVJpTRSQEV51TSyQAVpBXTyQO5MuvpmICMySV1rEDZ/Ko6DqC0gqqOD8hrJKDjBrIbaeiUAFmMZHQKgbRXZb4g1iB2Mc5BnKS5i/3oLsZtnn4QHUV60kw1mIsxWVWYrDKb5+8Od53/m0xCxWAQJwAAAABJRU5ErkJggg=="

// placeLogo decodes and embeds a base64 PNG at (x, y) scaled to the given
// width. A payload that is not valid base64 is skipped so the document
// renders without a logo; a payload that decodes but is not a parsable
// image latches a buffer error and fails the whole template.
func (d *document) placeLogo(encoded string, x, y, w float64) {
	if encoded == "" {
		encoded = defaultLogoBase64
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: sniffImageType(raw), ReadDpi: false}
	d.pdf.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(raw))
	d.pdf.ImageOptions("company-logo", x, y, w, 0, false, opts, 0, "")
}

func sniffImageType(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xD8 {
		return "JPG"
	}
	return "PNG"
}
