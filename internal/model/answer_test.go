package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValidateTarget(t *testing.T) {
	a := &Answer{StudentID: 1, TaskID: 1}

	assert.Error(t, a.ValidateTarget(nil))
	assert.Error(t, a.ValidateTarget(&Post{PostType: PostMaterial}))
	assert.Error(t, a.ValidateTarget(&Post{PostType: PostStudentPost}))
	assert.NoError(t, a.ValidateTarget(&Post{PostType: PostQuestion}))
	assert.NoError(t, a.ValidateTarget(&Post{PostType: PostExercise}))
}

func TestAnswerLifecycle(t *testing.T) {
	now := time.Now()
	a := &Answer{StudentID: 1, TaskID: 1, Status: TaskNotStarted}

	a.Progress()
	assert.Equal(t, TaskInProgress, a.Status)

	require.NoError(t, a.Submit(now))
	assert.Equal(t, TaskSubmitted, a.Status)
	assert.Equal(t, uint(1), a.Attempts)
	require.NotNil(t, a.SubmittedAt)

	// Resubmitting before grading counts another attempt.
	require.NoError(t, a.Submit(now.Add(time.Minute)))
	assert.Equal(t, uint(2), a.Attempts)

	require.NoError(t, a.Grade(8, now.Add(2*time.Minute)))
	assert.Equal(t, TaskGraded, a.Status)
	require.NotNil(t, a.Score)
	assert.Equal(t, 8, *a.Score)
	require.NotNil(t, a.GradedAt)

	// Graded answers stay closed until the teacher returns them.
	err := a.Submit(now.Add(3 * time.Minute))
	assert.ErrorIs(t, err, ErrAnswerAlreadyGraded)
	assert.Equal(t, uint(2), a.Attempts)

	a.Reopen()
	assert.Equal(t, TaskReturned, a.Status)
	assert.Nil(t, a.Score)

	require.NoError(t, a.Submit(now.Add(4*time.Minute)))
	assert.Equal(t, uint(3), a.Attempts)
}

func TestAnswerGradeRejectsNegativeScore(t *testing.T) {
	a := &Answer{Status: TaskSubmitted}

	err := a.Grade(-1, time.Now())
	assert.ErrorIs(t, err, ErrInvalidScore)
	assert.Nil(t, a.Score)
	assert.Equal(t, TaskSubmitted, a.Status)

	// Zero is a valid grade.
	require.NoError(t, a.Grade(0, time.Now()))
	require.NotNil(t, a.Score)
	assert.Equal(t, 0, *a.Score)
}

func TestAnswerRegrade(t *testing.T) {
	a := &Answer{Status: TaskGraded, Score: intp(3)}

	require.NoError(t, a.Grade(7, time.Now()))
	assert.Equal(t, 7, *a.Score)
	assert.Equal(t, TaskGraded, a.Status)
}

func questionPost(qt QuestionType) *Post {
	return &Post{PostType: PostQuestion, MaxScore: intp(10), QuestionType: qt}
}

func TestAnswerOptionValidateShape(t *testing.T) {
	post := questionPost(QuestionOneChoice)

	// Exactly one of option/text must be set.
	neither := &AnswerOption{AnswerID: 1}
	assert.True(t, IsViolation(neither.Validate(post, true, 0)))

	both := &AnswerOption{AnswerID: 1, OptionID: uintp(1), Text: strp("x")}
	assert.True(t, IsViolation(both.Validate(post, true, 0)))

	ok := &AnswerOption{AnswerID: 1, OptionID: uintp(1)}
	assert.NoError(t, ok.Validate(post, true, 0))
}

func TestAnswerOptionValidatePostKind(t *testing.T) {
	link := &AnswerOption{AnswerID: 1, OptionID: uintp(1)}

	assert.True(t, IsViolation(link.Validate(nil, true, 0)))
	assert.True(t, IsViolation(link.Validate(&Post{PostType: PostExercise}, true, 0)))
	assert.True(t, IsViolation(link.Validate(&Post{PostType: PostMaterial}, true, 0)))
}

func TestAnswerOptionValidateTypeCompatibility(t *testing.T) {
	selective := &AnswerOption{AnswerID: 1, OptionID: uintp(1)}
	textual := &AnswerOption{AnswerID: 1, Text: strp("my answer")}

	// Option references are rejected on text questions.
	assert.True(t, IsViolation(selective.Validate(questionPost(QuestionText), true, 0)))
	assert.NoError(t, selective.Validate(questionPost(QuestionOneChoice), true, 0))
	assert.NoError(t, selective.Validate(questionPost(QuestionMultiChoice), true, 0))

	// Text is rejected on choice questions.
	assert.True(t, IsViolation(textual.Validate(questionPost(QuestionOneChoice), true, 0)))
	assert.True(t, IsViolation(textual.Validate(questionPost(QuestionMultiChoice), true, 0)))
	assert.NoError(t, textual.Validate(questionPost(QuestionText), true, 0))
}

func TestAnswerOptionDuplicateGuard(t *testing.T) {
	selective := &AnswerOption{AnswerID: 1, OptionID: uintp(2)}
	textual := &AnswerOption{AnswerID: 1, Text: strp("second thoughts")}

	// Creating a second row on single-answer questions is rejected.
	assert.ErrorIs(t, selective.Validate(questionPost(QuestionOneChoice), true, 1), ErrDuplicateAnswer)
	assert.ErrorIs(t, textual.Validate(questionPost(QuestionText), true, 1), ErrDuplicateAnswer)

	// multi_choice allows any number of rows.
	assert.NoError(t, selective.Validate(questionPost(QuestionMultiChoice), true, 3))

	// The guard only fires on creation: editing an existing selection on a
	// single-answer question passes.
	assert.NoError(t, selective.Validate(questionPost(QuestionOneChoice), false, 1))
	assert.NoError(t, textual.Validate(questionPost(QuestionText), false, 1))

	// First row on a single-answer question passes.
	assert.NoError(t, selective.Validate(questionPost(QuestionOneChoice), true, 0))
}

// A question-shape edit from one_choice to text walks through the full
// consequence chain: selections become invalid and the answer reopens.
func TestQuestionTypeEditConsequences(t *testing.T) {
	post := questionPost(QuestionOneChoice)

	selection := &AnswerOption{AnswerID: 1, OptionID: uintp(1)}
	require.NoError(t, selection.Validate(post, true, 0))

	answer := &Answer{StudentID: 1, TaskID: 1}
	require.NoError(t, answer.Submit(time.Now()))

	// Widening to multi_choice keeps the selection and the answer intact.
	require.False(t, QuestionTypeChangeInvalidatesAnswers(post.QuestionType, QuestionMultiChoice))
	post.QuestionType = QuestionMultiChoice
	assert.NoError(t, selection.Validate(post, false, 0))
	assert.Equal(t, TaskSubmitted, answer.Status)

	require.NoError(t, answer.Grade(9, time.Now()))

	require.True(t, QuestionTypeChangeInvalidatesAnswers(post.QuestionType, QuestionText))
	post.QuestionType = QuestionText

	// The old selection no longer fits the new shape.
	assert.True(t, IsViolation(selection.Validate(post, false, 0)))

	answer.Reopen()
	assert.Nil(t, answer.Score)
	assert.Equal(t, TaskReturned, answer.Status)

	// The student can answer again in the new shape.
	fresh := &AnswerOption{AnswerID: 1, Text: strp("free text now")}
	assert.NoError(t, fresh.Validate(post, true, 0))
	require.NoError(t, answer.Submit(time.Now()))
	assert.Equal(t, TaskSubmitted, answer.Status)
}
