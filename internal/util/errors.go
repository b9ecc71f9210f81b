package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotVerified     = errors.New("user is not verified")
	ErrCourseNotFound      = errors.New("course not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrAnswerNotFound      = errors.New("answer not found")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInvalidInviteCode   = errors.New("invalid invite code")
	ErrAlreadyOnCourse     = errors.New("user is already on the course")
	ErrVerificationExpired = errors.New("verification token is invalid or expired")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrFileTooLarge        = errors.New("file size exceeds the allowed maximum")
)
