// Package imagestore turns uploaded photo payloads into stored references.
package imagestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/tradesbook-ie/tradesbook/internal/application/photo/usecases"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
)

const (
	// DefaultMaxBytes bounds a decoded photo.
	DefaultMaxBytes = 8 << 20
	minImageBytes   = 32
)

// DataURLStore validates the payload by content and keeps it inline as a
// base64 data URL. A submitted data URL is kept byte for byte, so its declared
// type must match the sniffed one. Bare base64 is wrapped with the sniffed type.
type DataURLStore struct {
	maxBytes int
}

func NewDataURLStore(maxBytes int) *DataURLStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &DataURLStore{maxBytes: maxBytes}
}

func (s *DataURLStore) Store(ctx context.Context, ref usecases.ImageRef, payload string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	payload = strings.TrimSpace(payload)
	declared, raw, err := decodePayload(payload)
	if err != nil {
		return "", fmt.Errorf("%w: tv %d %s: %v", photo.ErrInvalidImage, ref.TVIndex, ref.PhotoType, err)
	}
	if len(raw) < minImageBytes {
		return "", fmt.Errorf("%w: payload too small", photo.ErrInvalidImage)
	}
	if len(raw) > s.maxBytes {
		return "", fmt.Errorf("%w: payload exceeds %d bytes", photo.ErrInvalidImage, s.maxBytes)
	}

	mt := mimetype.Detect(raw)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", photo.ErrInvalidImage, mt.String())
	}
	if declared == "" {
		return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
	}
	if !mt.Is(declared) {
		return "", fmt.Errorf("%w: declared %s but content is %s", photo.ErrInvalidImage, declared, mt.String())
	}
	return payload, nil
}

// decodePayload accepts "data:<type>;base64,<data>" or bare base64 and
// returns the declared media type, empty for bare base64.
func decodePayload(payload string) (string, []byte, error) {
	if payload == "" {
		return "", nil, fmt.Errorf("empty payload")
	}
	declared := ""
	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		meta, data, found := strings.Cut(rest, ",")
		if !found {
			return "", nil, fmt.Errorf("malformed data URL")
		}
		if !strings.HasSuffix(meta, ";base64") {
			return "", nil, fmt.Errorf("data URL is not base64 encoded")
		}
		declared, _, _ = strings.Cut(meta, ";")
		if declared == "" {
			return "", nil, fmt.Errorf("data URL has no media type")
		}
		payload = data
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if raw, err2 := base64.RawStdEncoding.DecodeString(payload); err2 == nil {
			return declared, raw, nil
		}
		return "", nil, fmt.Errorf("invalid base64: %w", err)
	}
	return declared, raw, nil
}

var _ usecases.ImageStore = (*DataURLStore)(nil)
