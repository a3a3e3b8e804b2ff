//go:build ocr

// Package ocr turns captured images into positioned text fragments using the
// Tesseract engine via gosseract. It requires Tesseract to be installed on
// the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/snapgrid/snapgrid/model"
)

// Client wraps Tesseract for recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a recognition client tuned for engineering captures. The
// dictionary correction passes are disabled: part numbers and unit strings
// like "DM74LS244N" or "10nF" are not English words, and Tesseract would
// otherwise "correct" them. Close the client when done.
func New() (*Client, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("set language: %w", err)
	}

	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")
	_ = client.SetVariable("language_model_penalty_non_dict_word", "0")
	_ = client.SetVariable("language_model_penalty_non_freq_dict_word", "0")

	return &Client{client: client}, nil
}

// Close releases recognition resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the recognition language(s). Multiple languages are "+"
// separated (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets how Tesseract segments the page.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

// Recognize performs plain-text recognition on image data.
func (c *Client) Recognize(imageData []byte) (string, error) {
	if _, _, err := ValidateImage(imageData); err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Fragments performs recognition and returns word-level fragments with
// bounding boxes, ready for layout reconstruction. Confidence is rescaled
// from Tesseract's 0-100 range to [0,1]. Empty words are dropped.
func (c *Client) Fragments(imageData []byte) ([]model.Fragment, error) {
	if _, _, err := ValidateImage(imageData); err != nil {
		return nil, err
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("get bounding boxes: %w", err)
	}

	var fragments []model.Fragment
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		f, err := model.NewFragmentFromRect(
			float64(box.Box.Min.X),
			float64(box.Box.Min.Y),
			float64(box.Box.Dx()),
			float64(box.Box.Dy()),
			text,
			box.Confidence/100,
		)
		if err != nil {
			continue
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}
