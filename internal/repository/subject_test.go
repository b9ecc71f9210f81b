package repository

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectResolverUnknownTag(t *testing.T) {
	r := NewSubjectResolver(nil)

	_, err := r.Resolve("course", 1)
	assert.ErrorIs(t, err, util.ErrSubjectNotFound)
}

func TestSubjectCourseID(t *testing.T) {
	post := &Subject{CoursePost: &model.CoursePost{CourseID: "abc123"}}
	assert.Equal(t, "abc123", post.CourseID())

	answer := &Subject{Answer: &model.Answer{Task: &model.CoursePost{CourseID: "def456"}}}
	assert.Equal(t, "def456", answer.CourseID())

	detached := &Subject{Answer: &model.Answer{}}
	assert.Equal(t, "", detached.CourseID())
}
