package repository

import (
	"classroom_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var c model.Comment
	err := r.DB.Preload("Author").First(&c, id).Error
	return &c, err
}

func (r *CommentRepository) ListBySubject(subjectType model.SubjectType, subjectID uint) ([]model.Comment, error) {
	var cs []model.Comment
	err := r.DB.Preload("Author").
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at asc").
		Find(&cs).Error
	return cs, err
}

func (r *CommentRepository) Save(comment *model.Comment) error {
	return r.DB.Save(comment).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
