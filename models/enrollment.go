package models

import "gorm.io/gorm"

const (
	EnrollmentActive  = "ACTIVE"
	EnrollmentDropped = "DROPPED"
)

// Enrollment is the single row per (course, student) pair. A drop flips
// Status to DROPPED and keeps the grade; re-enrolling reactivates the row
// and clears the grade. The composite unique index backs up the
// one-active-enrollment rule at the schema level.
type Enrollment struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"uniqueIndex:idx_course_student;not null"`
	StudentID uint   `json:"student_id" gorm:"uniqueIndex:idx_course_student;not null"`
	Status    string `json:"status" gorm:"default:'ACTIVE'"`
	Grade     *int   `json:"grade"` // 0..100, nil until graded

	Course  Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Student User   `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
