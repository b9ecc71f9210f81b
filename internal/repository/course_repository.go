package repository

import (
	"classroom_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var c model.Course
	err := r.DB.First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CourseRepository) FindByInvCode(code string) (*model.Course, error) {
	var c model.Course
	err := r.DB.Where("inv_code = ? AND is_archive = false", code).First(&c).Error
	return &c, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", id).Error
}

func (r *CourseRepository) ListOwn(creatorID uint) ([]model.Course, error) {
	var cs []model.Course
	err := r.DB.Where("creator_id = ?", creatorID).Order("created_at desc").Find(&cs).Error
	return cs, err
}

// ListForUser returns courses the user created or joined through an
// accepted invite.
func (r *CourseRepository) ListForUser(userID uint) ([]model.Course, error) {
	var cs []model.Course
	err := r.DB.
		Distinct("courses.*").
		Joins("LEFT JOIN course_teachers ct ON ct.course_id = courses.id AND ct.teacher_id = ? AND ct.status = ?", userID, model.InviteAccepted).
		Joins("LEFT JOIN course_students cs ON cs.course_id = courses.id AND cs.student_id = ? AND cs.status = ?", userID, model.InviteAccepted).
		Where("courses.creator_id = ? OR ct.id IS NOT NULL OR cs.id IS NOT NULL", userID).
		Order("courses.created_at desc").
		Find(&cs).Error
	return cs, err
}

// MembershipFor resolves the caller's relation to a course so the policy
// functions can stay pure.
func (r *CourseRepository) MembershipFor(user *model.User, course *model.Course) (model.Membership, error) {
	m := model.Membership{IsCreator: course.CreatorID == user.ID}

	var count int64
	err := r.DB.Model(&model.CourseTeacher{}).
		Where("course_id = ? AND teacher_id = ? AND status = ?", course.ID, user.ID, model.InviteAccepted).
		Count(&count).Error
	if err != nil {
		return m, err
	}
	m.IsTeacher = count > 0

	err = r.DB.Model(&model.CourseStudent{}).
		Where("course_id = ? AND student_id = ? AND status = ?", course.ID, user.ID, model.InviteAccepted).
		Count(&count).Error
	if err != nil {
		return m, err
	}
	m.IsStudent = count > 0

	return m, nil
}

func (r *CourseRepository) CreateTeacherInvite(inv *model.CourseTeacher) error {
	return r.DB.Create(inv).Error
}

func (r *CourseRepository) CreateStudentInvite(inv *model.CourseStudent) error {
	return r.DB.Create(inv).Error
}

func (r *CourseRepository) FindTeacherInvite(id uint) (*model.CourseTeacher, error) {
	var inv model.CourseTeacher
	err := r.DB.First(&inv, id).Error
	return &inv, err
}

func (r *CourseRepository) FindStudentInvite(id uint) (*model.CourseStudent, error) {
	var inv model.CourseStudent
	err := r.DB.First(&inv, id).Error
	return &inv, err
}

func (r *CourseRepository) FindStudentInviteByPair(studentID uint, courseID string) (*model.CourseStudent, error) {
	var inv model.CourseStudent
	err := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&inv).Error
	return &inv, err
}

func (r *CourseRepository) SaveTeacherInvite(inv *model.CourseTeacher) error {
	return r.DB.Save(inv).Error
}

func (r *CourseRepository) SaveStudentInvite(inv *model.CourseStudent) error {
	return r.DB.Save(inv).Error
}

func (r *CourseRepository) ListStudentInvites(courseID string) ([]model.CourseStudent, error) {
	var invs []model.CourseStudent
	err := r.DB.Preload("Student").Where("course_id = ?", courseID).Find(&invs).Error
	return invs, err
}

func (r *CourseRepository) ListTeacherInvites(courseID string) ([]model.CourseTeacher, error) {
	var invs []model.CourseTeacher
	err := r.DB.Preload("Teacher").Where("course_id = ?", courseID).Find(&invs).Error
	return invs, err
}

func (r *CourseRepository) CreateTheme(theme *model.CourseTheme) error {
	return r.DB.Create(theme).Error
}

func (r *CourseRepository) ListThemes(courseID string) ([]model.CourseTheme, error) {
	var ts []model.CourseTheme
	err := r.DB.Where("course_id = ?", courseID).Order("created_at asc").Find(&ts).Error
	return ts, err
}

func (r *CourseRepository) CreateCoursePost(link *model.CoursePost) error {
	return r.DB.Create(link).Error
}

func (r *CourseRepository) FindTaskByID(id uint) (*model.CoursePost, error) {
	var t model.CoursePost
	err := r.DB.Preload("Post").Preload("Course").First(&t, id).Error
	return &t, err
}

func (r *CourseRepository) ListTasks(courseID string) ([]model.CoursePost, error) {
	var ts []model.CoursePost
	err := r.DB.Preload("Post").Where("course_id = ?", courseID).Order("created_at desc").Find(&ts).Error
	return ts, err
}
