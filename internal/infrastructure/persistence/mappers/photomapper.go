package mappers

import (
	"fmt"

	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
)

// PhotoMapper converts progress rows and capture sessions.
type PhotoMapper interface {
	ProgressToModel(p *photo.Progress) *models.PhotoProgressModel
	ProgressToDomain(model *models.PhotoProgressModel) (*photo.Progress, error)
	SessionToModel(s *photo.Session) *models.PhotoSessionModel
	SessionToDomain(model *models.PhotoSessionModel) (*photo.Session, error)
}

type PhotoMapperImpl struct{}

func NewPhotoMapper() PhotoMapper {
	return &PhotoMapperImpl{}
}

func (m *PhotoMapperImpl) ProgressToModel(p *photo.Progress) *models.PhotoProgressModel {
	return &models.PhotoProgressModel{
		ID:                p.ID(),
		BookingID:         p.BookingID(),
		InstallerID:       p.InstallerID(),
		TVIndex:           p.TVIndex(),
		BeforePhotoURL:    p.BeforeURL(),
		AfterPhotoURL:     p.AfterURL(),
		BeforePhotoSource: p.BeforeSource().String(),
		AfterPhotoSource:  p.AfterSource().String(),
		IsCompleted:       p.IsCompleted(),
		CreatedAt:         p.CreatedAt().UnixMilli(),
		UpdatedAt:         p.UpdatedAt().UnixMilli(),
	}
}

func (m *PhotoMapperImpl) ProgressToDomain(model *models.PhotoProgressModel) (*photo.Progress, error) {
	return photo.ReconstructProgress(
		model.ID,
		model.BookingID,
		model.InstallerID,
		model.TVIndex,
		model.BeforePhotoURL,
		model.AfterPhotoURL,
		vo.Source(model.BeforePhotoSource),
		vo.Source(model.AfterPhotoSource),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *PhotoMapperImpl) SessionToModel(s *photo.Session) *models.PhotoSessionModel {
	cursor := s.Cursor()
	return &models.PhotoSessionModel{
		ID:              s.ID(),
		BookingID:       s.BookingID(),
		InstallerID:     s.InstallerID(),
		TVCount:         s.TVCount(),
		WorkflowStage:   s.Stage().String(),
		CursorTVIndex:   cursor.TVIndex,
		CursorPhotoType: cursor.PhotoType.String(),
		UpdatedAt:       s.UpdatedAt().UnixMilli(),
	}
}

func (m *PhotoMapperImpl) SessionToDomain(model *models.PhotoSessionModel) (*photo.Session, error) {
	stage, err := vo.NewWorkflowStage(model.WorkflowStage)
	if err != nil {
		return nil, fmt.Errorf("photo session %d: %w", model.ID, err)
	}
	return photo.ReconstructSession(
		model.ID,
		model.BookingID,
		model.InstallerID,
		model.TVCount,
		stage,
		photo.Cursor{TVIndex: model.CursorTVIndex, PhotoType: vo.PhotoType(model.CursorPhotoType)},
		millisToTime(model.UpdatedAt),
	)
}
