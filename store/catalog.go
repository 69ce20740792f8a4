package store

import (
	"gradebook/models"

	"gorm.io/gorm"
)

// Catalog is the read-only course directory. Course creation and
// capacity edits are administrative (handled by seeding) and have no
// operations here.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

func (ct *Catalog) Get(courseID uint) (*models.Course, error) {
	var course models.Course
	err := ct.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// ListAll returns every course in stable id order.
func (ct *Catalog) ListAll() ([]models.Course, error) {
	var courses []models.Course
	if err := ct.db.Where("is_deleted = ?", false).Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (ct *Catalog) ListByTeacher(teacherID uint) ([]models.Course, error) {
	var courses []models.Course
	if err := ct.db.Where("teacher_id = ? AND is_deleted = ?", teacherID, false).
		Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
