package installer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Constraints describe the requested camera mode. The zero value asks for any
// camera in any mode.
type Constraints struct {
	Width      int
	Height     int
	FacingMode string
}

var (
	// DefaultConstraints asks for the rear camera at 1080p.
	DefaultConstraints = Constraints{Width: 1920, Height: 1080, FacingMode: "environment"}
	// MinimalConstraints is used for the single retry after ErrConstraintsUnsupported.
	MinimalConstraints = Constraints{}
)

// Errors a Camera implementation returns from Open, possibly wrapped.
var (
	ErrPermissionDenied       = errors.New("camera permission denied")
	ErrNoCamera               = errors.New("no camera found")
	ErrConstraintsUnsupported = errors.New("camera constraints unsupported")
)

// Camera opens the device. It is implemented by the platform layer.
type Camera interface {
	Open(ctx context.Context, constraints Constraints) (Stream, error)
}

// Stream is an open camera. Close stops every track and must be safe to call once.
type Stream interface {
	Snapshot(ctx context.Context) ([]byte, error)
	Close() error
}

// CameraError wraps an acquisition failure with the message shown to the installer.
type CameraError struct {
	Err error
}

func (e *CameraError) Error() string {
	return fmt.Sprintf("camera unavailable: %v", e.Err)
}

func (e *CameraError) Unwrap() error {
	return e.Err
}

// Message is the user-facing text for the failure.
func (e *CameraError) Message() string {
	return UserMessage(e.Err)
}

// UserMessage maps a camera failure to a human-readable cause.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "Camera access was denied. Allow camera access for this app and try again."
	case errors.Is(err, ErrNoCamera):
		return "No camera was found on this device."
	case errors.Is(err, ErrConstraintsUnsupported):
		return "The camera does not support the required settings."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The camera request was cancelled."
	default:
		return "The camera could not be started. Please try again."
	}
}

// Acquire opens the camera with want, retrying exactly once with
// MinimalConstraints when the device rejects want. The caller owns the
// returned stream and must Close it.
func Acquire(ctx context.Context, cam Camera, want Constraints) (Stream, error) {
	stream, err := open(ctx, cam, want)
	if errors.Is(err, ErrConstraintsUnsupported) && want != MinimalConstraints {
		stream, err = open(ctx, cam, MinimalConstraints)
	}
	if err != nil {
		return nil, &CameraError{Err: err}
	}
	return stream, nil
}

func open(ctx context.Context, cam Camera, c Constraints) (Stream, error) {
	stream, err := cam.Open(ctx, c)
	if err != nil {
		if stream != nil {
			_ = stream.Close()
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		_ = stream.Close()
		return nil, err
	}
	return stream, nil
}

// TakePhoto acquires the camera, grabs one frame and releases the stream. The
// frame is returned as a data URL ready for CapturePhoto.
func TakePhoto(ctx context.Context, cam Camera, want Constraints) (image string, err error) {
	stream, err := Acquire(ctx, cam, want)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release camera: %w", cerr)
		}
	}()

	frame, err := stream.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return EncodeDataURL(frame)
}

// EncodeDataURL wraps raw image bytes in a base64 data URL.
func EncodeDataURL(frame []byte) (string, error) {
	if len(frame) == 0 {
		return "", errors.New("empty image")
	}
	mime := http.DetectContentType(frame)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("unsupported image type %s", mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(frame), nil
}
