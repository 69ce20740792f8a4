package store

import (
	"gradebook/models"

	"gorm.io/gorm"
)

// GradeStore reads and writes the grade on an enrollment row. Grades
// are independent of enrollment status: a dropped student keeps their
// recorded grade.
type GradeStore struct {
	db *gorm.DB
}

func NewGradeStore(db *gorm.DB) *GradeStore {
	return &GradeStore{db: db}
}

// Set replaces the enrollment's grade. Only the teacher of the
// enrollment's course may grade it; no history is retained.
func (g *GradeStore) Set(enrollmentID uint, grade int, teacherID uint) error {
	if grade < 0 || grade > 100 {
		return ErrInvalidGrade
	}

	var enrollment models.Enrollment
	if err := g.db.First(&enrollment, enrollmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrEnrollmentNotFound
		}
		return err
	}

	var course models.Course
	if err := g.db.First(&course, enrollment.CourseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrCourseNotFound
		}
		return err
	}
	if course.TeacherID != teacherID {
		return ErrNotAuthorized
	}

	enrollment.Grade = &grade
	return g.db.Save(&enrollment).Error
}

// Get returns the grade, or nil if the enrollment is ungraded.
func (g *GradeStore) Get(enrollmentID uint) (*int, error) {
	var enrollment models.Enrollment
	if err := g.db.First(&enrollment, enrollmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment.Grade, nil
}
