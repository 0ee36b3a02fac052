package qrcode

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"

	"tambua/pkg/dataurl"
)

// Scale is the pixel size of one module in generated PNGs.
const Scale = 8

// Payload is the text encoded into a document QR code, the indented JSON of v.
func Payload(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PNG encodes text at error correction level H.
func PNG(text string) ([]byte, error) {
	c, err := qr.Encode(text, qr.H)
	if err != nil {
		return nil, err
	}
	c.Scale = Scale
	return c.PNG(), nil
}

func DataURL(text string) (string, error) {
	b, err := PNG(text)
	if err != nil {
		return "", err
	}
	return dataurl.Encode("image/png", b), nil
}

// Terminal writes text as a half-block QR code, the form used by the qr command.
func Terminal(w io.Writer, text string) {
	qrterminal.GenerateHalfBlock(text, qrterminal.H, w)
}
