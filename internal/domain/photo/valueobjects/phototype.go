package valueobjects

import "fmt"

type PhotoType string

const (
	TypeBefore PhotoType = "before"
	TypeAfter  PhotoType = "after"
)

func (t PhotoType) String() string {
	return string(t)
}

func (t PhotoType) IsValid() bool {
	return t == TypeBefore || t == TypeAfter
}

func NewPhotoType(s string) (PhotoType, error) {
	t := PhotoType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid photo type: %s", s)
	}
	return t, nil
}

// Source records how a photo reached the server.
type Source string

const (
	SourceCamera Source = "camera"
	SourceUpload Source = "upload"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	return s == SourceCamera || s == SourceUpload
}

func NewSource(s string) (Source, error) {
	src := Source(s)
	if !src.IsValid() {
		return "", fmt.Errorf("invalid photo source: %s", s)
	}
	return src, nil
}

// AllowedFor reports whether src may be used for a photo of type t.
// After photos must come from the live camera.
func (s Source) AllowedFor(t PhotoType) bool {
	if t == TypeAfter {
		return s == SourceCamera
	}
	return s.IsValid()
}
