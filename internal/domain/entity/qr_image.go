package entity

import "encoding/base64"

const pngDataURLPrefix = "data:image/png;base64,"

// QRImage is a rendered QR code.
type QRImage struct {
	PNG []byte
	// Payload is the text encoded in the image.
	Payload string
	Width   int
}

// DataURL renders the image as a data:image/png;base64 URL.
func (q *QRImage) DataURL() string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(q.PNG)
}
