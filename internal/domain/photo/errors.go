package photo

import "errors"

var (
	// ErrAfterPhotoNotFromCamera rejects gallery uploads for after photos.
	ErrAfterPhotoNotFromCamera = errors.New("after photos must be taken with the camera")
	ErrTVIndexOutOfRange       = errors.New("tv index is out of range for this booking")
	ErrNotReadyToComplete      = errors.New("not every TV has the required photos yet")
	// ErrInvalidImage is returned by image stores for payloads that are not a decodable image.
	ErrInvalidImage            = errors.New("photo is not a supported image")
)
