package model

type PostType string

const (
	PostMaterial    PostType = "material"
	PostExercise    PostType = "exercise"
	PostQuestion    PostType = "question"
	PostStudentPost PostType = "student_post"
	PostQuiz        PostType = "quiz"
)

func (t PostType) Valid() bool {
	switch t {
	case PostMaterial, PostExercise, PostQuestion, PostStudentPost, PostQuiz:
		return true
	}
	return false
}

// QuestionType is empty until a question post is given its answer shape.
type QuestionType string

const (
	QuestionUnset       QuestionType = ""
	QuestionText        QuestionType = "text"
	QuestionOneChoice   QuestionType = "one_choice"
	QuestionMultiChoice QuestionType = "multi_choice"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionUnset, QuestionText, QuestionOneChoice, QuestionMultiChoice:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskSubmitted  TaskStatus = "submitted"
	TaskGraded     TaskStatus = "graded"
	TaskReturned   TaskStatus = "returned"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRejected InviteStatus = "rejected"
)

type AttachmentType string

const (
	AttachmentFile  AttachmentType = "file"
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
	AttachmentLink  AttachmentType = "link"
)

// SubjectType tags the polymorphic target of comments and attachments.
type SubjectType string

const (
	SubjectCoursePost    SubjectType = "course_post"
	SubjectStudentAnswer SubjectType = "student_answer"
)

// ConfigPermission controls who may comment and publish on a course.
type ConfigPermission uint8

const (
	ConfigStudentsOnlyComments ConfigPermission = 1
	ConfigTeachersOnlyPublish  ConfigPermission = 2
	ConfigAll                  ConfigPermission = 3
)

// DeletePermission controls who may delete a course.
type DeletePermission uint8

const (
	DeleteCreatorOnly DeletePermission = 0
	DeleteAllTeachers DeletePermission = 1
	DeleteNobody      DeletePermission = 2
)
