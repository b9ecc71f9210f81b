package model

// QuestionOption is an answer choice attached to a question or quiz post.
// For questions is_right must be set; for quizzes (surveys) there is no
// right-answer concept and is_right must stay null.
type QuestionOption struct {
	BaseModel
	PostID  string `gorm:"index;type:varchar(16);not null" json:"postId"`
	Post    *Post  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	Title   string `gorm:"type:text;not null" json:"title"`
	IsRight *bool  `json:"isRight,omitempty"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

// Validate runs synchronously before every create and update.
func (o *QuestionOption) Validate(post *Post) error {
	if post == nil {
		return violation("post", "question options cannot attach to a null post")
	}
	if !post.IsQuestion() && !post.IsQuiz() {
		return violation("post", "question options can only be added to question or quiz posts")
	}
	if post.IsQuestion() && o.IsRight == nil {
		return violation("is_right", "options of a question post must have is_right set")
	}
	if post.IsQuiz() && o.IsRight != nil {
		return violation("is_right", "options of a quiz post must not have is_right set")
	}
	return nil
}
