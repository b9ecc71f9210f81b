package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func boolp(v bool) *bool    { return &v }
func uintp(v uint) *uint    { return &v }

func teacherUser() *User {
	return &User{BaseModel: BaseModel{ID: 1}, Role: Teacher}
}

func studentUser() *User {
	return &User{BaseModel: BaseModel{ID: 2}, Role: Student}
}

func TestPostValidate(t *testing.T) {
	deadline := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name      string
		post      Post
		author    *User
		wantField string
	}{
		{
			name: "material with no extras is fine",
			post: Post{Name: "intro", PostType: PostMaterial},
		},
		{
			name:      "material cannot carry max_score",
			post:      Post{Name: "intro", PostType: PostMaterial, MaxScore: intp(10)},
			wantField: "post_type",
		},
		{
			name:      "material cannot carry a deadline",
			post:      Post{Name: "intro", PostType: PostMaterial, Deadline: &deadline},
			wantField: "post_type",
		},
		{
			name:      "material cannot carry can_comment",
			post:      Post{Name: "intro", PostType: PostMaterial, CanComment: true},
			wantField: "post_type",
		},
		{
			name: "exercise requires max_score",
			post: Post{Name: "hw", PostType: PostExercise, MaxScore: intp(5)},
		},
		{
			name:      "exercise without max_score",
			post:      Post{Name: "hw", PostType: PostExercise},
			wantField: "max_score",
		},
		{
			name:      "exercise cannot set question_type",
			post:      Post{Name: "hw", PostType: PostExercise, MaxScore: intp(5), QuestionType: QuestionText},
			wantField: "question_type",
		},
		{
			name: "question requires both max_score and question_type",
			post: Post{Name: "q", PostType: PostQuestion, MaxScore: intp(3), QuestionType: QuestionOneChoice},
		},
		{
			name:      "question without question_type",
			post:      Post{Name: "q", PostType: PostQuestion, MaxScore: intp(3)},
			wantField: "question_type",
		},
		{
			name:      "question without max_score",
			post:      Post{Name: "q", PostType: PostQuestion, QuestionType: QuestionText},
			wantField: "max_score",
		},
		{
			name:      "negative max_score",
			post:      Post{Name: "q", PostType: PostQuestion, MaxScore: intp(-1), QuestionType: QuestionText},
			wantField: "max_score",
		},
		{
			name:      "unknown post type",
			post:      Post{Name: "x", PostType: "essay"},
			wantField: "post_type",
		},
		{
			name:      "unknown question type",
			post:      Post{Name: "q", PostType: PostQuestion, MaxScore: intp(1), QuestionType: "maybe"},
			wantField: "question_type",
		},
		{
			name: "quiz may carry question_type",
			post: Post{Name: "survey", PostType: PostQuiz, QuestionType: QuestionMultiChoice},
		},
		{
			name:   "student may create a bare student_post",
			post:   Post{Name: "my note", PostType: PostStudentPost},
			author: studentUser(),
		},
		{
			name:      "student cannot create a material",
			post:      Post{Name: "notes", PostType: PostMaterial},
			author:    studentUser(),
			wantField: "post_type",
		},
		{
			name:      "student cannot set description",
			post:      Post{Name: "my note", PostType: PostStudentPost, Description: strp("desc")},
			author:    studentUser(),
			wantField: "description",
		},
		{
			name:      "student cannot publish",
			post:      Post{Name: "my note", PostType: PostStudentPost, IsPublished: true},
			author:    studentUser(),
			wantField: "is_published",
		},
		{
			name:      "student cannot set theme",
			post:      Post{Name: "my note", PostType: PostStudentPost, ThemeID: uintp(4)},
			author:    studentUser(),
			wantField: "theme",
		},
		{
			name:   "teacher may publish any shape",
			post:   Post{Name: "q", PostType: PostQuestion, MaxScore: intp(3), QuestionType: QuestionText, IsPublished: true},
			author: teacherUser(),
		},
		{
			name: "nil author skips role checks",
			post: Post{Name: "q", PostType: PostMaterial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate(tt.author)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var v *InvariantViolation
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.wantField, v.Field)
		})
	}
}

func TestQuestionTypeChangeInvalidatesAnswers(t *testing.T) {
	tests := []struct {
		old, new QuestionType
		want     bool
	}{
		{QuestionText, QuestionText, false},
		{QuestionOneChoice, QuestionOneChoice, false},
		{QuestionMultiChoice, QuestionMultiChoice, false},
		{QuestionUnset, QuestionUnset, false},

		// The one compatible widening.
		{QuestionOneChoice, QuestionMultiChoice, false},

		// Narrowing and cross-kind changes invalidate.
		{QuestionMultiChoice, QuestionOneChoice, true},
		{QuestionText, QuestionOneChoice, true},
		{QuestionText, QuestionMultiChoice, true},
		{QuestionOneChoice, QuestionText, true},
		{QuestionMultiChoice, QuestionText, true},

		// First assignment and clearing both invalidate.
		{QuestionUnset, QuestionText, true},
		{QuestionUnset, QuestionOneChoice, true},
		{QuestionText, QuestionUnset, true},
	}

	for _, tt := range tests {
		got := QuestionTypeChangeInvalidatesAnswers(tt.old, tt.new)
		assert.Equalf(t, tt.want, got, "%q -> %q", tt.old, tt.new)
	}
}

func TestPostIsGradable(t *testing.T) {
	assert.True(t, (&Post{PostType: PostQuestion}).IsGradable())
	assert.True(t, (&Post{PostType: PostExercise}).IsGradable())
	assert.False(t, (&Post{PostType: PostMaterial}).IsGradable())
	assert.False(t, (&Post{PostType: PostStudentPost}).IsGradable())
	assert.False(t, (&Post{PostType: PostQuiz}).IsGradable())
}
