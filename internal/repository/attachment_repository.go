package repository

import (
	"classroom_backend/internal/model"

	"gorm.io/gorm"
)

type AttachmentRepository struct {
	DB *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{DB: db}
}

func (r *AttachmentRepository) Create(attachment *model.Attachment) error {
	return r.DB.Create(attachment).Error
}

func (r *AttachmentRepository) FindByID(id string) (*model.Attachment, error) {
	var a model.Attachment
	err := r.DB.First(&a, "id = ?", id).Error
	return &a, err
}

func (r *AttachmentRepository) ListBySubject(subjectType model.SubjectType, subjectID uint) ([]model.Attachment, error) {
	var as []model.Attachment
	err := r.DB.
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at asc").
		Find(&as).Error
	return as, err
}

func (r *AttachmentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Attachment{}, "id = ?", id).Error
}
