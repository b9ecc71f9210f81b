package model

import "net/url"

// MaxAttachmentSize caps uploaded attachment files at 2 GiB.
const MaxAttachmentSize = 2 << 30

// Attachment is a link or uploaded file pinned to a course post or a
// student answer through the polymorphic (subject_type, subject_id) pair.
type Attachment struct {
	SymbolModel
	Link           string         `gorm:"size:250;not null" json:"link"`
	ObjectName     string         `gorm:"size:255" json:"-"`
	AttachmentType AttachmentType `gorm:"size:20;not null" json:"attachmentType"`
	SubjectID      uint           `gorm:"index:idx_attach_subject;not null" json:"subjectId"`
	SubjectType    SubjectType    `gorm:"index:idx_attach_subject;size:20;not null" json:"subjectType"`
	LoaderID       uint           `gorm:"index;not null" json:"loaderId"`
	Loader         *User          `gorm:"foreignKey:LoaderID" json:"loader,omitempty"`
}

func (Attachment) TableName() string {
	return "attachments"
}

func (a *Attachment) Validate() error {
	switch a.AttachmentType {
	case AttachmentLink:
		u, err := url.ParseRequestURI(a.Link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return violation("link", "incorrect URL")
		}
	case AttachmentFile, AttachmentImage, AttachmentVideo:
		if a.ObjectName == "" {
			return violation("file", "file not specified")
		}
	default:
		return violation("attachment_type", "unknown attachment type")
	}

	switch a.SubjectType {
	case SubjectCoursePost, SubjectStudentAnswer:
	default:
		return violation("subject_type", "unknown subject type")
	}

	return nil
}

// Comment is a remark on a course post or a student answer.
type Comment struct {
	BaseModel
	Content     string      `gorm:"type:text;not null" json:"content"`
	AuthorID    uint        `gorm:"index;not null" json:"authorId"`
	Author      *User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	SubjectID   uint        `gorm:"index:idx_comment_subject;not null" json:"subjectId"`
	SubjectType SubjectType `gorm:"index:idx_comment_subject;size:20;not null" json:"subjectType"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) CanEdit(user *User) bool {
	return user.ID == c.AuthorID
}

func (c *Comment) CanDelete(user *User) bool {
	return user.ID == c.AuthorID || user.IsAdmin()
}
