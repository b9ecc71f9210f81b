package model

import "time"

type Course struct {
	SymbolModel
	Title            string           `gorm:"size:100;not null" json:"title"`
	Description      *string          `gorm:"type:text" json:"description,omitempty"`
	Section          *string          `gorm:"size:50" json:"section,omitempty"`
	RoomNumber       *string          `gorm:"size:20" json:"roomNumber,omitempty"`
	Theme            *string          `gorm:"size:25" json:"theme,omitempty"`
	InvCode          string           `gorm:"size:8;index" json:"invCode"`
	ConfigPermission ConfigPermission `gorm:"default:3" json:"configPermission"`
	DeletePermission DeletePermission `gorm:"default:0" json:"deletePermission"`
	CreatorID        uint             `gorm:"index;not null" json:"creatorId"`
	Creator          *User            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Image            string           `gorm:"size:255" json:"image"`
	IsArchive        bool             `gorm:"default:false" json:"isArchive"`
}

func (Course) TableName() string {
	return "courses"
}

// Membership is what the policy functions need to know about the caller's
// relation to a course; the repository resolves it, the policy stays pure.
type Membership struct {
	IsCreator bool
	IsTeacher bool // accepted teacher invite on this course
	IsStudent bool // accepted student invite on this course
}

func (m Membership) OnCourse() bool {
	return m.IsCreator || m.IsTeacher || m.IsStudent
}

// CanUserDelete applies the course delete_permission policy. Admins may
// always delete.
func (c *Course) CanUserDelete(user *User, m Membership) bool {
	if user.IsAdmin() {
		return true
	}

	switch c.DeletePermission {
	case DeleteCreatorOnly:
		return m.IsCreator
	case DeleteAllTeachers:
		return user.IsTeacher() && m.IsTeacher
	default:
		return false
	}
}

// CanUserComment applies the course config_permission policy for comments.
func (c *Course) CanUserComment(user *User, m Membership) bool {
	if user.IsAdmin() {
		return true
	}

	switch c.ConfigPermission {
	case ConfigAll, ConfigStudentsOnlyComments:
		return true
	case ConfigTeachersOnlyPublish:
		return user.IsTeacher() && m.IsTeacher
	default:
		return false
	}
}

// CanUserPublish applies the course config_permission policy for publishing.
func (c *Course) CanUserPublish(user *User, m Membership) bool {
	if user.IsAdmin() {
		return true
	}

	switch c.ConfigPermission {
	case ConfigAll:
		return true
	case ConfigStudentsOnlyComments, ConfigTeachersOnlyPublish:
		return user.IsTeacher() && m.IsTeacher
	default:
		return false
	}
}

// Invite carries the shared accept/reject lifecycle of the two course
// invitation link types.
type Invite struct {
	InvitedAt  time.Time    `gorm:"autoCreateTime" json:"invitedAt"`
	AcceptedAt *time.Time   `json:"acceptedAt,omitempty"`
	Status     InviteStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (i *Invite) Accept(now time.Time) {
	i.AcceptedAt = &now
	i.Status = InviteAccepted
}

func (i *Invite) Reject() {
	i.Status = InviteRejected
}

// CourseTeacher links a teacher to a course through an invitation.
type CourseTeacher struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TeacherID uint   `gorm:"uniqueIndex:idx_teacher_course;not null" json:"teacherId"`
	Teacher   *User  `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	CourseID  string `gorm:"uniqueIndex:idx_teacher_course;type:varchar(16);not null" json:"courseId"`
	Invite
}

func (CourseTeacher) TableName() string {
	return "course_teachers"
}

// CourseStudent links a student to a course through an invitation.
type CourseStudent struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID uint   `gorm:"uniqueIndex:idx_student_course;not null" json:"studentId"`
	Student   *User  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CourseID  string `gorm:"uniqueIndex:idx_student_course;type:varchar(16);not null" json:"courseId"`
	Invite
}

func (CourseStudent) TableName() string {
	return "course_students"
}

// CourseTheme is a named section grouping posts within a course.
type CourseTheme struct {
	BaseModel
	Name     string `gorm:"size:50;uniqueIndex:idx_theme_course;not null" json:"name"`
	CourseID string `gorm:"uniqueIndex:idx_theme_course;type:varchar(16);not null" json:"courseId"`
}

func (CourseTheme) TableName() string {
	return "course_themes"
}

// CoursePost ties a post into a course. Answers target these rows: the
// same post linked into two courses is two independent gradable tasks.
type CoursePost struct {
	BaseModel
	PostID   string  `gorm:"uniqueIndex:idx_post_course;type:varchar(16);not null" json:"postId"`
	Post     *Post   `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CourseID string  `gorm:"uniqueIndex:idx_post_course;type:varchar(16);not null" json:"courseId"`
	Course   *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (CoursePost) TableName() string {
	return "course_posts"
}
