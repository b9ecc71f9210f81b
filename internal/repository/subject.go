package repository

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// Subject is the resolved target of a polymorphic (subject_type,
// subject_id) reference. Exactly one field is non-nil.
type Subject struct {
	CoursePost *model.CoursePost
	Answer     *model.Answer
}

// CourseID returns the course the subject belongs to, so permission
// checks can run against it.
func (s *Subject) CourseID() string {
	switch {
	case s.CoursePost != nil:
		return s.CoursePost.CourseID
	case s.Answer != nil && s.Answer.Task != nil:
		return s.Answer.Task.CourseID
	}
	return ""
}

type subjectLookup func(db *gorm.DB, id uint) (*Subject, error)

// Dispatch table instead of inheritance: each tag maps to its own typed
// repository lookup.
var subjectLookups = map[model.SubjectType]subjectLookup{
	model.SubjectCoursePost: func(db *gorm.DB, id uint) (*Subject, error) {
		var cp model.CoursePost
		if err := db.Preload("Post").Preload("Course").First(&cp, id).Error; err != nil {
			return nil, err
		}
		return &Subject{CoursePost: &cp}, nil
	},
	model.SubjectStudentAnswer: func(db *gorm.DB, id uint) (*Subject, error) {
		var a model.Answer
		if err := db.Preload("Task").Preload("Task.Post").First(&a, id).Error; err != nil {
			return nil, err
		}
		return &Subject{Answer: &a}, nil
	},
}

type SubjectResolver struct {
	DB *gorm.DB
}

func NewSubjectResolver(db *gorm.DB) *SubjectResolver {
	return &SubjectResolver{DB: db}
}

// Resolve maps a tag/id pair to its typed row. Unknown tags and missing
// rows both come back as ErrSubjectNotFound.
func (r *SubjectResolver) Resolve(subjectType model.SubjectType, subjectID uint) (*Subject, error) {
	lookup, ok := subjectLookups[subjectType]
	if !ok {
		return nil, util.ErrSubjectNotFound
	}

	subject, err := lookup(r.DB, subjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return subject, nil
}
