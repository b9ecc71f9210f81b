package service

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type AnswerService struct {
	AnswerRepo *repository.AnswerRepository
	CourseRepo *repository.CourseRepository
}

func NewAnswerService(answerRepo *repository.AnswerRepository, courseRepo *repository.CourseRepository) *AnswerService {
	return &AnswerService{
		AnswerRepo: answerRepo,
		CourseRepo: courseRepo,
	}
}

// GetOrCreate returns the student's answer row for a task, creating it in
// not_started when this is the first interaction. Only students get
// answer rows, and only on question/exercise tasks — re-checked here no
// matter what the request layer already verified.
func (s *AnswerService) GetOrCreate(student *model.User, taskID uint) (*model.Answer, error) {
	if !student.IsStudent() {
		return nil, model.ErrPermissionDenied
	}

	task, err := s.CourseRepo.FindTaskByID(taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	answer := &model.Answer{
		StudentID: student.ID,
		TaskID:    task.ID,
		Status:    model.TaskNotStarted,
	}
	if err := answer.ValidateTarget(task.Post); err != nil {
		return nil, err
	}

	if err := s.AnswerRepo.Create(answer); err != nil {
		// The (student, task) unique index is the serialization point:
		// a concurrent first interaction loses the insert and reads the
		// winner's row.
		existing, findErr := s.AnswerRepo.FindByStudentAndTask(student.ID, task.ID)
		if findErr != nil {
			return nil, err
		}
		return existing, nil
	}
	answer.Task = task
	return answer, nil
}

func (s *AnswerService) getOwned(student *model.User, answerID uint) (*model.Answer, error) {
	answer, err := s.AnswerRepo.FindByID(answerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	if err != nil {
		return nil, err
	}
	if answer.StudentID != student.ID {
		return nil, model.ErrPermissionDenied
	}
	return answer, nil
}

func (s *AnswerService) Progress(student *model.User, answerID uint) (*model.Answer, error) {
	answer, err := s.getOwned(student, answerID)
	if err != nil {
		return nil, err
	}

	answer.Progress()
	if err := s.AnswerRepo.Save(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) Submit(student *model.User, answerID uint) (*model.Answer, error) {
	answer, err := s.getOwned(student, answerID)
	if err != nil {
		return nil, err
	}

	if err := answer.Submit(time.Now()); err != nil {
		return nil, err
	}
	if err := s.AnswerRepo.Save(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// Grade records a score. Graders must be teachers on the answer's course
// (or admins). Re-grading is allowed.
func (s *AnswerService) Grade(grader *model.User, answerID uint, score int) (*model.Answer, error) {
	answer, err := s.AnswerRepo.FindByID(answerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkGrader(grader, answer); err != nil {
		return nil, err
	}

	if err := answer.Grade(score, time.Now()); err != nil {
		return nil, err
	}
	if err := s.AnswerRepo.Save(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) checkGrader(grader *model.User, answer *model.Answer) error {
	if grader.IsAdmin() {
		return nil
	}
	if !grader.IsTeacher() || answer.Task == nil {
		return model.ErrPermissionDenied
	}

	course, err := s.CourseRepo.FindByID(answer.Task.CourseID)
	if err != nil {
		return model.ErrPermissionDenied
	}
	membership, err := s.CourseRepo.MembershipFor(grader, course)
	if err != nil {
		return err
	}
	if !membership.IsCreator && !membership.IsTeacher {
		return model.ErrPermissionDenied
	}
	return nil
}

// ListByTask returns every answer on a task, for the grading view.
func (s *AnswerService) ListByTask(grader *model.User, taskID uint) ([]model.Answer, error) {
	task, err := s.CourseRepo.FindTaskByID(taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	probe := &model.Answer{Task: task}
	if err := s.checkGrader(grader, probe); err != nil {
		return nil, err
	}
	return s.AnswerRepo.ListByTask(taskID)
}

type SelectionRequest struct {
	OptionID *uint   `json:"optionId"`
	Text     *string `json:"text"`
}

// AddSelection creates a new answer-option link. The single-answer guard
// fires here and only here: for one_choice and text questions a second
// row is rejected, while updating the existing row stays allowed.
func (s *AnswerService) AddSelection(student *model.User, answerID uint, req SelectionRequest) (*model.AnswerOption, error) {
	answer, err := s.getOwned(student, answerID)
	if err != nil {
		return nil, err
	}
	if answer.Task == nil || answer.Task.Post == nil {
		return nil, util.ErrTaskNotFound
	}
	post := answer.Task.Post

	link := &model.AnswerOption{
		AnswerID: answer.ID,
		OptionID: req.OptionID,
		Text:     req.Text,
	}

	siblings, err := s.AnswerRepo.CountOptionsByAnswer(answer.ID)
	if err != nil {
		return nil, err
	}
	if err := link.Validate(post, true, siblings); err != nil {
		return nil, err
	}
	if err := s.checkOptionOwnership(post, req.OptionID); err != nil {
		return nil, err
	}

	if err := s.AnswerRepo.CreateOption(link); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateSelection edits an existing link. The duplicate guard is
// deliberately not re-applied on update.
func (s *AnswerService) UpdateSelection(student *model.User, linkID uint, req SelectionRequest) (*model.AnswerOption, error) {
	link, err := s.AnswerRepo.FindOptionByID(linkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	if err != nil {
		return nil, err
	}
	if link.Answer == nil || link.Answer.StudentID != student.ID {
		return nil, model.ErrPermissionDenied
	}
	if link.Answer.Task == nil || link.Answer.Task.Post == nil {
		return nil, util.ErrTaskNotFound
	}
	post := link.Answer.Task.Post

	link.OptionID = req.OptionID
	link.Text = req.Text
	if err := link.Validate(post, false, 0); err != nil {
		return nil, err
	}
	if err := s.checkOptionOwnership(post, req.OptionID); err != nil {
		return nil, err
	}

	if err := s.AnswerRepo.SaveOption(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *AnswerService) ListSelections(student *model.User, answerID uint) ([]model.AnswerOption, error) {
	if _, err := s.getOwned(student, answerID); err != nil {
		return nil, err
	}
	return s.AnswerRepo.ListOptionsByAnswer(answerID)
}

func (s *AnswerService) RemoveSelection(student *model.User, linkID uint) error {
	link, err := s.AnswerRepo.FindOptionByID(linkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrAnswerNotFound
	}
	if err != nil {
		return err
	}
	if link.Answer == nil || link.Answer.StudentID != student.ID {
		return model.ErrPermissionDenied
	}
	return s.AnswerRepo.DeleteOption(linkID)
}

// checkOptionOwnership rejects selections pointing at another post's
// option.
func (s *AnswerService) checkOptionOwnership(post *model.Post, optionID *uint) error {
	if optionID == nil {
		return nil
	}
	var count int64
	err := s.AnswerRepo.DB.Model(&model.QuestionOption{}).
		Where("id = ? AND post_id = ?", *optionID, post.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &model.InvariantViolation{Field: "option", Reason: "option does not belong to the answered question"}
	}
	return nil
}
