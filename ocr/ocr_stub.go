//go:build !ocr

// Package ocr turns captured images into positioned text fragments using the
// Tesseract engine via gosseract.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All recognition functions return ErrNotEnabled. To enable recognition,
// rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "github.com/snapgrid/snapgrid/model"

// Client is a stub recognition client; every operation fails with
// ErrNotEnabled.
type Client struct{}

// New returns ErrNotEnabled.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// SetPageSegMode returns ErrNotEnabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrNotEnabled
}

// Recognize returns ErrNotEnabled.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// Fragments returns ErrNotEnabled.
func (c *Client) Fragments(imageData []byte) ([]model.Fragment, error) {
	return nil, ErrNotEnabled
}
