package service

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	UserRepo     *repository.UserRepository
	Mail         *MailService
	Notification *NotificationService
}

func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository, mailSvc *MailService, notificationSvc *NotificationService) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		UserRepo:     userRepo,
		Mail:         mailSvc,
		Notification: notificationSvc,
	}
}

type CourseRequest struct {
	Title            string                  `json:"title" binding:"required"`
	Description      *string                 `json:"description"`
	Section          *string                 `json:"section"`
	RoomNumber       *string                 `json:"roomNumber"`
	Theme            *string                 `json:"theme"`
	ConfigPermission *model.ConfigPermission `json:"configPermission"`
	DeletePermission *model.DeletePermission `json:"deletePermission"`
}

// CreateCourse is reserved for teachers and admins. The invite code is
// generated when absent, the id collision-checked on insert.
func (s *CourseService) CreateCourse(creator *model.User, req CourseRequest) (*model.Course, error) {
	if creator.IsStudent() {
		return nil, model.ErrPermissionDenied
	}

	course := &model.Course{
		Title:            req.Title,
		Description:      req.Description,
		Section:          req.Section,
		RoomNumber:       req.RoomNumber,
		Theme:            req.Theme,
		InvCode:          model.NewInviteCode(),
		ConfigPermission: model.ConfigAll,
		DeletePermission: model.DeleteCreatorOnly,
		CreatorID:        creator.ID,
	}
	if req.ConfigPermission != nil {
		course.ConfigPermission = *req.ConfigPermission
	}
	if req.DeletePermission != nil {
		course.DeletePermission = *req.DeletePermission
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetCourse(user *model.User, id string) (*model.Course, model.Membership, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.Membership{}, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, model.Membership{}, err
	}

	membership, err := s.CourseRepo.MembershipFor(user, course)
	if err != nil {
		return nil, model.Membership{}, err
	}
	if !user.IsAdmin() && !membership.OnCourse() {
		return nil, model.Membership{}, model.ErrPermissionDenied
	}
	return course, membership, nil
}

// ListMine returns courses the user belongs to; createdOnly narrows the
// list to courses the user created.
func (s *CourseService) ListMine(user *model.User, createdOnly bool) ([]model.Course, error) {
	if createdOnly {
		return s.CourseRepo.ListOwn(user.ID)
	}
	return s.CourseRepo.ListForUser(user.ID)
}

func (s *CourseService) UpdateCourse(actor *model.User, id string, req CourseRequest) (*model.Course, error) {
	course, membership, err := s.GetCourse(actor, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !membership.IsCreator {
		return nil, model.ErrPermissionDenied
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Section = req.Section
	course.RoomNumber = req.RoomNumber
	course.Theme = req.Theme
	if req.ConfigPermission != nil {
		course.ConfigPermission = *req.ConfigPermission
	}
	if req.DeletePermission != nil {
		course.DeletePermission = *req.DeletePermission
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ArchiveCourse(actor *model.User, id string) error {
	course, membership, err := s.GetCourse(actor, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !membership.IsCreator {
		return model.ErrPermissionDenied
	}

	course.IsArchive = true
	return s.CourseRepo.Update(course)
}

// DeleteCourse applies the course delete_permission policy.
func (s *CourseService) DeleteCourse(actor *model.User, id string) error {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	membership, err := s.CourseRepo.MembershipFor(actor, course)
	if err != nil {
		return err
	}
	if !course.CanUserDelete(actor, membership) {
		return model.ErrPermissionDenied
	}
	return s.CourseRepo.Delete(id)
}

// InviteTeacher creates a pending invitation and notifies the teacher.
func (s *CourseService) InviteTeacher(ctx context.Context, actor *model.User, courseID string, teacherEmail string) (*model.CourseTeacher, error) {
	course, membership, err := s.GetCourse(actor, courseID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !membership.IsCreator && !membership.IsTeacher {
		return nil, model.ErrPermissionDenied
	}

	teacher, err := s.UserRepo.FindByEmail(teacherEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !teacher.IsTeacher() {
		return nil, model.ErrPermissionDenied
	}

	inv := &model.CourseTeacher{
		TeacherID: teacher.ID,
		CourseID:  course.ID,
		Invite:    model.Invite{Status: model.InvitePending},
	}
	if err := s.CourseRepo.CreateTeacherInvite(inv); err != nil {
		return nil, err
	}

	s.notifyInvite(ctx, teacher, course)
	return inv, nil
}

// InviteStudent creates a pending invitation and notifies the student.
func (s *CourseService) InviteStudent(ctx context.Context, actor *model.User, courseID string, studentEmail string) (*model.CourseStudent, error) {
	course, membership, err := s.GetCourse(actor, courseID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !membership.IsCreator && !membership.IsTeacher {
		return nil, model.ErrPermissionDenied
	}

	student, err := s.UserRepo.FindByEmail(studentEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, model.ErrPermissionDenied
	}

	inv := &model.CourseStudent{
		StudentID: student.ID,
		CourseID:  course.ID,
		Invite:    model.Invite{Status: model.InvitePending},
	}
	if err := s.CourseRepo.CreateStudentInvite(inv); err != nil {
		return nil, err
	}

	s.notifyInvite(ctx, student, course)
	return inv, nil
}

func (s *CourseService) notifyInvite(ctx context.Context, user *model.User, course *model.Course) {
	// Best effort: the invitation row is the source of truth.
	_ = s.Mail.SendCourseInvite(ctx, user, course)
	_ = s.Notification.Broadcast("Course invitation",
		"You have been invited to the course "+course.Title, nil, []uint{user.ID})
}

// RespondTeacherInvite accepts or rejects the caller's own invitation.
func (s *CourseService) RespondTeacherInvite(actor *model.User, inviteID uint, accept bool) (*model.CourseTeacher, error) {
	inv, err := s.CourseRepo.FindTeacherInvite(inviteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInviteNotFound
	}
	if err != nil {
		return nil, err
	}
	if inv.TeacherID != actor.ID {
		return nil, model.ErrPermissionDenied
	}

	if accept {
		inv.Accept(time.Now())
	} else {
		inv.Reject()
	}
	if err := s.CourseRepo.SaveTeacherInvite(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// RespondStudentInvite accepts or rejects the caller's own invitation.
func (s *CourseService) RespondStudentInvite(actor *model.User, inviteID uint, accept bool) (*model.CourseStudent, error) {
	inv, err := s.CourseRepo.FindStudentInvite(inviteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInviteNotFound
	}
	if err != nil {
		return nil, err
	}
	if inv.StudentID != actor.ID {
		return nil, model.ErrPermissionDenied
	}

	if accept {
		inv.Accept(time.Now())
	} else {
		inv.Reject()
	}
	if err := s.CourseRepo.SaveStudentInvite(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// EnrollByCode joins a student to a course via its invite code; joining
// by code skips the pending state.
func (s *CourseService) EnrollByCode(student *model.User, code string) (*model.Course, error) {
	if !student.IsStudent() {
		return nil, model.ErrPermissionDenied
	}

	course, err := s.CourseRepo.FindByInvCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInvalidInviteCode
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.CourseRepo.FindStudentInviteByPair(student.ID, course.ID); err == nil {
		return nil, util.ErrAlreadyOnCourse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inv := &model.CourseStudent{
		StudentID: student.ID,
		CourseID:  course.ID,
	}
	inv.Accept(time.Now())
	if err := s.CourseRepo.CreateStudentInvite(inv); err != nil {
		return nil, err
	}
	return course, nil
}

type ThemeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *CourseService) AddTheme(actor *model.User, courseID string, req ThemeRequest) (*model.CourseTheme, error) {
	course, membership, err := s.GetCourse(actor, courseID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !membership.IsCreator && !membership.IsTeacher {
		return nil, model.ErrPermissionDenied
	}

	theme := &model.CourseTheme{
		Name:     req.Name,
		CourseID: course.ID,
	}
	if err := s.CourseRepo.CreateTheme(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *CourseService) ListThemes(actor *model.User, courseID string) ([]model.CourseTheme, error) {
	if _, _, err := s.GetCourse(actor, courseID); err != nil {
		return nil, err
	}
	return s.CourseRepo.ListThemes(courseID)
}

func (s *CourseService) ListMembers(actor *model.User, courseID string) ([]model.CourseTeacher, []model.CourseStudent, error) {
	if _, _, err := s.GetCourse(actor, courseID); err != nil {
		return nil, nil, err
	}

	teachers, err := s.CourseRepo.ListTeacherInvites(courseID)
	if err != nil {
		return nil, nil, err
	}
	students, err := s.CourseRepo.ListStudentInvites(courseID)
	if err != nil {
		return nil, nil, err
	}
	return teachers, students, nil
}
