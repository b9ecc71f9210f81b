package repository

import (
	"classroom_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var p model.Post
	err := r.DB.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *PostRepository) ListByAuthor(authorID uint) ([]model.Post, error) {
	var ps []model.Post
	err := r.DB.Where("author_id = ?", authorID).Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *PostRepository) Delete(id string) error {
	return r.DB.Delete(&model.Post{}, "id = ?", id).Error
}

// SaveReconciling persists an edited post. The previous question_type is
// read under a row lock inside the transaction, so two concurrent edits
// cannot both act on the same stale value. When the change invalidates
// recorded answers, every answer-option link under the post is purged and
// every answer reopened in the same transaction; any failure rolls the
// whole edit back, old question_type included.
func (r *PostRepository) SaveReconciling(post *model.Post) (reconciled bool, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var old model.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&old, "id = ?", post.ID).Error; err != nil {
			return err
		}

		if !model.QuestionTypeChangeInvalidatesAnswers(old.QuestionType, post.QuestionType) {
			return tx.Save(post).Error
		}
		reconciled = true

		// Every task row referencing this post, across all courses.
		taskIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.CoursePost{}).
			Select("id").
			Where("post_id = ?", post.ID)

		err := tx.Exec(
			"DELETE ao FROM answer_options ao "+
				"JOIN answers a ON a.id = ao.answer_id "+
				"JOIN course_posts cp ON cp.id = a.task_id "+
				"WHERE cp.post_id = ?", post.ID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&model.Answer{}).
			Where("task_id IN (?)", taskIDs).
			Updates(map[string]interface{}{
				"score":  nil,
				"status": model.TaskReturned,
			}).Error
		if err != nil {
			return err
		}

		return tx.Save(post).Error
	})
	return reconciled, err
}

func (r *PostRepository) CreateOption(option *model.QuestionOption) error {
	return r.DB.Create(option).Error
}

func (r *PostRepository) FindOptionByID(id uint) (*model.QuestionOption, error) {
	var o model.QuestionOption
	err := r.DB.Preload("Post").First(&o, id).Error
	return &o, err
}

func (r *PostRepository) ListOptions(postID string) ([]model.QuestionOption, error) {
	var os []model.QuestionOption
	err := r.DB.Where("post_id = ?", postID).Order("created_at asc").Find(&os).Error
	return os, err
}

func (r *PostRepository) SaveOption(option *model.QuestionOption) error {
	return r.DB.Save(option).Error
}

func (r *PostRepository) DeleteOption(id uint) error {
	return r.DB.Delete(&model.QuestionOption{}, id).Error
}
