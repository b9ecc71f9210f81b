package model

import "time"

// Answer is a student's response record to a task (a post linked into a
// course). One row per (student, task), enforced by the unique index.
type Answer struct {
	BaseModel
	StudentID   uint        `gorm:"uniqueIndex:idx_student_task;not null" json:"studentId"`
	Student     *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	TaskID      uint        `gorm:"uniqueIndex:idx_student_task;not null" json:"taskId"`
	Task        *CoursePost `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
	Score       *int        `json:"score,omitempty"`
	SubmittedAt *time.Time  `json:"submittedAt,omitempty"`
	GradedAt    *time.Time  `json:"gradedAt,omitempty"`
	Attempts    uint        `gorm:"default:0" json:"attempts"`
	Status      TaskStatus  `gorm:"size:20;default:'not_started'" json:"status"`
}

func (Answer) TableName() string {
	return "answers"
}

// ValidateTarget rejects answers aimed at posts students cannot answer.
// Checked on creation regardless of who the caller is.
func (a *Answer) ValidateTarget(post *Post) error {
	if post == nil {
		return violation("task", "answer must reference a task with a post")
	}
	if !post.IsGradable() {
		return violation("task", "students can't give an answer on a "+string(post.PostType)+" post")
	}
	return nil
}

// Progress marks the answer as being worked on. No other side effects.
func (a *Answer) Progress() {
	a.Status = TaskInProgress
}

// Submit counts an attempt and hands the answer in. A graded answer can
// no longer be resubmitted; the teacher returns it first.
func (a *Answer) Submit(now time.Time) error {
	if a.Status == TaskGraded {
		return ErrAnswerAlreadyGraded
	}
	a.Attempts++
	a.SubmittedAt = &now
	a.Status = TaskSubmitted
	return nil
}

// Grade records the score. Re-grading is allowed from any status.
func (a *Answer) Grade(score int, now time.Time) error {
	if score < 0 {
		return ErrInvalidScore
	}
	a.Score = &score
	a.GradedAt = &now
	a.Status = TaskGraded
	return nil
}

// Reopen invalidates the recorded result and signals the student to
// resubmit. Used when an incompatible question-shape edit purges the
// answer's selections.
func (a *Answer) Reopen() {
	a.Score = nil
	a.Status = TaskReturned
}

// AnswerOption is the selection a student made within an answer: either
// a reference to a question option or free text, never both.
type AnswerOption struct {
	BaseModel
	AnswerID uint            `gorm:"uniqueIndex:idx_answer_option;not null" json:"answerId"`
	Answer   *Answer         `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"answer,omitempty"`
	OptionID *uint           `gorm:"uniqueIndex:idx_answer_option" json:"optionId,omitempty"`
	Option   *QuestionOption `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"option,omitempty"`
	Text     *string         `gorm:"type:text" json:"text,omitempty"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}

// Validate enforces the selection shape against the post's question type.
//
// The duplicate guard applies only when creating a new row (isNew) for
// one_choice and text questions; editing an existing selection is always
// allowed. siblings is the number of AnswerOption rows already stored for
// the same answer.
func (l *AnswerOption) Validate(post *Post, isNew bool, siblings int64) error {
	if (l.OptionID == nil) == (l.Text == nil) {
		return violation("option", "either option or text must be set, but not both")
	}
	if post == nil {
		return violation("answer", "selection must reference a post through its answer")
	}
	if !post.IsQuestion() {
		return violation("answer", "selections are only available for question posts, not "+string(post.PostType))
	}
	if l.OptionID != nil && post.QuestionType == QuestionText {
		return violation("option", "a selective answer is not available for text questions")
	}
	if l.Text != nil && post.QuestionType != QuestionText {
		return violation("text", "a text answer is not available for "+string(post.QuestionType)+" questions")
	}

	if isNew && siblings > 0 &&
		(post.QuestionType == QuestionOneChoice || post.QuestionType == QuestionText) {
		return ErrDuplicateAnswer
	}

	return nil
}
