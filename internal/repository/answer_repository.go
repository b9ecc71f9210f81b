package repository

import (
	"classroom_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) FindByID(id uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Preload("Task").Preload("Task.Post").First(&a, id).Error
	return &a, err
}

func (r *AnswerRepository) FindByStudentAndTask(studentID, taskID uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Preload("Task").Preload("Task.Post").
		Where("student_id = ? AND task_id = ?", studentID, taskID).
		First(&a).Error
	return &a, err
}

func (r *AnswerRepository) Save(answer *model.Answer) error {
	return r.DB.Save(answer).Error
}

func (r *AnswerRepository) ListByTask(taskID uint) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Preload("Student").Where("task_id = ?", taskID).Order("created_at asc").Find(&as).Error
	return as, err
}

func (r *AnswerRepository) CreateOption(link *model.AnswerOption) error {
	return r.DB.Create(link).Error
}

func (r *AnswerRepository) FindOptionByID(id uint) (*model.AnswerOption, error) {
	var l model.AnswerOption
	err := r.DB.Preload("Answer").Preload("Answer.Task").Preload("Answer.Task.Post").
		First(&l, id).Error
	return &l, err
}

func (r *AnswerRepository) SaveOption(link *model.AnswerOption) error {
	return r.DB.Save(link).Error
}

func (r *AnswerRepository) DeleteOption(id uint) error {
	return r.DB.Delete(&model.AnswerOption{}, id).Error
}

func (r *AnswerRepository) ListOptionsByAnswer(answerID uint) ([]model.AnswerOption, error) {
	var ls []model.AnswerOption
	err := r.DB.Preload("Option").Where("answer_id = ?", answerID).Find(&ls).Error
	return ls, err
}

// CountOptionsByAnswer backs the single-answer duplicate guard.
func (r *AnswerRepository) CountOptionsByAnswer(answerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerOption{}).Where("answer_id = ?", answerID).Count(&count).Error
	return count, err
}
