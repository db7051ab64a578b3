package photo

import "github.com/tradesbook-ie/tradesbook/internal/application/photo/usecases"

type CapturePhotoRequest struct {
	TVIndex   *int   `json:"tv_index" binding:"required,min=0"`
	PhotoType string `json:"photo_type" binding:"required,oneof=before after"`
	Source    string `json:"source" binding:"required,oneof=camera upload"`
	Image     string `json:"image" binding:"required"`
}

type SubmittedPhotoRequest struct {
	TVIndex           *int   `json:"tv_index" binding:"required,min=0"`
	BeforePhotoURL    string `json:"before_photo_url"`
	BeforePhotoSource string `json:"before_photo_source" binding:"omitempty,oneof=camera upload"`
	AfterPhotoURL     string `json:"after_photo_url"`
	AfterPhotoSource  string `json:"after_photo_source" binding:"omitempty,oneof=camera upload"`
}

type SubmitPhotosRequest struct {
	BookingID uint                    `json:"booking_id" binding:"required"`
	Photos    []SubmittedPhotoRequest `json:"photos" binding:"required,min=1,dive"`
}

func (r SubmitPhotosRequest) toPhotos() []usecases.SubmittedPhoto {
	out := make([]usecases.SubmittedPhoto, 0, len(r.Photos))
	for _, p := range r.Photos {
		out = append(out, usecases.SubmittedPhoto{
			TVIndex:           *p.TVIndex,
			BeforePhotoURL:    p.BeforePhotoURL,
			BeforePhotoSource: p.BeforePhotoSource,
			AfterPhotoURL:     p.AfterPhotoURL,
			AfterPhotoSource:  p.AfterPhotoSource,
		})
	}
	return out
}
