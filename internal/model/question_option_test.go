package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionOptionValidate(t *testing.T) {
	question := &Post{PostType: PostQuestion, MaxScore: intp(5), QuestionType: QuestionOneChoice}
	quiz := &Post{PostType: PostQuiz}

	t.Run("nil post", func(t *testing.T) {
		o := &QuestionOption{Title: "a"}
		assert.True(t, IsViolation(o.Validate(nil)))
	})

	t.Run("only question and quiz posts take options", func(t *testing.T) {
		o := &QuestionOption{Title: "a", IsRight: boolp(true)}
		assert.True(t, IsViolation(o.Validate(&Post{PostType: PostMaterial})))
		assert.True(t, IsViolation(o.Validate(&Post{PostType: PostExercise, MaxScore: intp(5)})))
		assert.True(t, IsViolation(o.Validate(&Post{PostType: PostStudentPost})))
	})

	t.Run("question options require is_right", func(t *testing.T) {
		missing := &QuestionOption{Title: "a"}
		err := missing.Validate(question)
		require.Error(t, err)
		var v *InvariantViolation
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "is_right", v.Field)

		assert.NoError(t, (&QuestionOption{Title: "a", IsRight: boolp(true)}).Validate(question))
		assert.NoError(t, (&QuestionOption{Title: "b", IsRight: boolp(false)}).Validate(question))
	})

	t.Run("quiz options must not set is_right", func(t *testing.T) {
		assert.NoError(t, (&QuestionOption{Title: "a"}).Validate(quiz))

		err := (&QuestionOption{Title: "a", IsRight: boolp(false)}).Validate(quiz)
		require.Error(t, err)
		var v *InvariantViolation
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "is_right", v.Field)
	})
}
