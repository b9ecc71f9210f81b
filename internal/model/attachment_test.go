package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentValidate(t *testing.T) {
	t.Run("link attachments need a parseable URL", func(t *testing.T) {
		ok := &Attachment{AttachmentType: AttachmentLink, Link: "https://example.com/slides.pdf", SubjectType: SubjectCoursePost}
		assert.NoError(t, ok.Validate())

		bad := &Attachment{AttachmentType: AttachmentLink, Link: "not a url", SubjectType: SubjectCoursePost}
		assert.True(t, IsViolation(bad.Validate()))

		schemeless := &Attachment{AttachmentType: AttachmentLink, Link: "example.com/x", SubjectType: SubjectCoursePost}
		assert.True(t, IsViolation(schemeless.Validate()))
	})

	t.Run("file attachments need an object name", func(t *testing.T) {
		ok := &Attachment{AttachmentType: AttachmentFile, Link: "/bucket/abc.pdf", ObjectName: "abc.pdf", SubjectType: SubjectStudentAnswer}
		assert.NoError(t, ok.Validate())

		missing := &Attachment{AttachmentType: AttachmentImage, Link: "/bucket/x.png", SubjectType: SubjectCoursePost}
		assert.True(t, IsViolation(missing.Validate()))
	})

	t.Run("unknown kinds and subjects are rejected", func(t *testing.T) {
		kind := &Attachment{AttachmentType: "torrent", Link: "https://example.com", SubjectType: SubjectCoursePost}
		assert.True(t, IsViolation(kind.Validate()))

		subject := &Attachment{AttachmentType: AttachmentLink, Link: "https://example.com", SubjectType: "course"}
		assert.True(t, IsViolation(subject.Validate()))
	})
}

func TestCommentPermissions(t *testing.T) {
	author := studentUser()
	other := teacherUser()
	admin := adminUser()

	c := &Comment{AuthorID: author.ID, Content: "nice work"}

	assert.True(t, c.CanEdit(author))
	assert.False(t, c.CanEdit(other))
	assert.False(t, c.CanEdit(admin))

	assert.True(t, c.CanDelete(author))
	assert.False(t, c.CanDelete(other))
	assert.True(t, c.CanDelete(admin))
}
