package model

import "time"

// Post is a unit of course content. Which fields may be set depends on
// the post type; Validate enforces the combinations before any write.
type Post struct {
	SymbolModel
	Name         string       `gorm:"size:100;not null" json:"name"`
	Description  *string      `gorm:"type:text" json:"description,omitempty"`
	PostType     PostType     `gorm:"size:20;not null" json:"postType"`
	ThemeID      *uint        `gorm:"index" json:"themeId,omitempty"`
	AuthorID     *uint        `gorm:"index" json:"authorId,omitempty"`
	Author       *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsPublished  bool         `gorm:"default:false" json:"isPublished"`
	MaxScore     *int         `json:"maxScore,omitempty"`
	Deadline     *time.Time   `json:"deadline,omitempty"`
	QuestionType QuestionType `gorm:"size:20" json:"questionType,omitempty"`
	CanChange    bool         `gorm:"default:false" json:"canChange"`
	CanComment   bool         `gorm:"default:false" json:"canComment"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) IsMaterial() bool    { return p.PostType == PostMaterial }
func (p *Post) IsExercise() bool    { return p.PostType == PostExercise }
func (p *Post) IsQuestion() bool    { return p.PostType == PostQuestion }
func (p *Post) IsStudentPost() bool { return p.PostType == PostStudentPost }
func (p *Post) IsQuiz() bool        { return p.PostType == PostQuiz }

// IsGradable reports whether students can answer this post when it is
// linked into a course.
func (p *Post) IsGradable() bool {
	return p.IsQuestion() || p.IsExercise()
}

// Validate enforces the per-type field presence rules. The author is
// passed in so the student restrictions can be checked without a store
// round trip; nil means unknown author and skips the role checks.
func (p *Post) Validate(author *User) error {
	if !p.PostType.Valid() {
		return violation("post_type", "unknown post type")
	}
	if !p.QuestionType.Valid() {
		return violation("question_type", "unknown question type")
	}
	if p.MaxScore != nil && *p.MaxScore < 0 {
		return violation("max_score", "max_score must be non-negative")
	}

	switch {
	case p.IsMaterial():
		if p.MaxScore != nil || p.Deadline != nil || p.QuestionType != QuestionUnset ||
			p.CanChange || p.CanComment {
			return violation("post_type",
				"material posts cannot have max_score, deadline, question_type, can_change or can_comment set")
		}

	case p.IsExercise():
		if p.MaxScore == nil {
			return violation("max_score", "exercise posts must have max_score set")
		}
		if p.QuestionType != QuestionUnset {
			return violation("question_type", "exercise posts cannot have question_type set")
		}

	case p.IsQuestion():
		if p.MaxScore == nil {
			return violation("max_score", "question posts must have max_score set")
		}
		if p.QuestionType == QuestionUnset {
			return violation("question_type", "question posts must have question_type set")
		}
	}

	if author != nil && author.IsStudent() {
		if !p.IsStudentPost() {
			return violation("post_type", "students can only create student_post type posts")
		}
		if p.Description != nil {
			return violation("description", "students cannot set description")
		}
		if p.ThemeID != nil {
			return violation("theme", "students cannot set theme")
		}
		if p.IsPublished {
			return violation("is_published", "students cannot publish posts")
		}
		if p.MaxScore != nil {
			return violation("max_score", "students cannot set max_score")
		}
		if p.Deadline != nil {
			return violation("deadline", "students cannot set deadline")
		}
		if p.QuestionType != QuestionUnset {
			return violation("question_type", "students cannot set question_type")
		}
		if p.CanChange {
			return violation("can_change", "students cannot set can_change")
		}
		if p.CanComment {
			return violation("can_comment", "students cannot set can_comment")
		}
	}

	return nil
}

// QuestionTypeChangeInvalidatesAnswers classifies a question_type edit.
// Keeping the type, or widening one_choice to multi_choice, leaves every
// recorded selection meaningful. Any other change (including the first
// assignment) makes old selections and scores meaningless, so the caller
// must purge option links and reopen the answers in the same transaction
// that persists the new type.
func QuestionTypeChangeInvalidatesAnswers(old, new QuestionType) bool {
	if old == new {
		return false
	}
	if old == QuestionOneChoice && new == QuestionMultiChoice {
		return false
	}
	return true
}
