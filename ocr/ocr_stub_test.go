//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when recognition is disabled")
	}
}

func TestStubOperationsFail(t *testing.T) {
	c := &Client{}

	if err := c.SetLanguage("eng"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("SetLanguage error = %v", err)
	}
	if err := c.SetPageSegMode(PSMSparseText); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("SetPageSegMode error = %v", err)
	}
	if _, err := c.Recognize(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Recognize error = %v", err)
	}
	if _, err := c.Fragments(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Fragments error = %v", err)
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client: %v", err)
	}
}
