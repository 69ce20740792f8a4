package store

import "errors"

var (
	// ErrUnauthenticated indicates a missing, expired, or revoked session token.
	ErrUnauthenticated = errors.New("session is missing, expired, or revoked")

	// ErrCourseNotFound indicates the referenced course does not exist.
	ErrCourseNotFound = errors.New("course not found")

	// ErrAlreadyEnrolled indicates the student already holds an active enrollment in the course.
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")

	// ErrCourseFull indicates the course has no remaining capacity.
	ErrCourseFull = errors.New("course is full")

	// ErrNotEnrolled indicates there is no active enrollment to drop.
	ErrNotEnrolled = errors.New("student is not enrolled in this course")

	// ErrEnrollmentNotFound indicates the referenced enrollment does not exist.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrNotAuthorized indicates an ownership violation: the acting teacher
	// does not teach the course the enrollment belongs to.
	ErrNotAuthorized = errors.New("teacher does not own this course")

	// ErrInvalidGrade indicates a grade outside the integer range [0,100].
	ErrInvalidGrade = errors.New("grade must be an integer between 0 and 100")
)
