package models

import "gorm.io/gorm"

// Course represents a scheduled, capacity-limited course section
type Course struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique;not null"`
	Name      string `json:"name" gorm:"not null"`
	TeacherID uint   `json:"teacher_id" gorm:"index;not null"`
	Time      string `json:"time" gorm:"default:''"` // display schedule, e.g. "Mon/Wed 10:00"
	Capacity  int    `json:"capacity" gorm:"not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`

	Teacher User `json:"-" gorm:"foreignKey:TeacherID"`
}
