package store

import (
	"sync"

	"gradebook/models"

	"gorm.io/gorm"
)

// Ledger is the enrollment state machine. Admission to a course is
// serialized by a per-course mutex so the capacity check and the row
// insert form one atomic step; enrollments into different courses never
// contend with each other.
type Ledger struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{
		db:    db,
		locks: make(map[uint]*sync.Mutex),
	}
}

func (l *Ledger) courseLock(courseID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[courseID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[courseID] = lock
	}
	return lock
}

// Enroll admits a student to a course, or fails with ErrCourseNotFound,
// ErrAlreadyEnrolled, or ErrCourseFull. Admission order under
// contention is first-committed-wins. A previously dropped enrollment
// is reactivated with its grade cleared.
func (l *Ledger) Enroll(courseID, studentID uint) (uint, error) {
	lock := l.courseLock(courseID)
	lock.Lock()
	defer lock.Unlock()

	var enrollmentID uint
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrCourseNotFound
			}
			return err
		}

		var existing models.Enrollment
		err := tx.Where("course_id = ? AND student_id = ?", courseID, studentID).First(&existing).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == nil && existing.Status == models.EnrollmentActive {
			return ErrAlreadyEnrolled
		}

		var active int64
		if err := tx.Model(&models.Enrollment{}).
			Where("course_id = ? AND status = ?", courseID, models.EnrollmentActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(course.Capacity) {
			return ErrCourseFull
		}

		if existing.ID != 0 {
			// returning student: reactivate and start unscored
			existing.Status = models.EnrollmentActive
			existing.Grade = nil
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			enrollmentID = existing.ID
			return nil
		}

		enrollment := models.Enrollment{
			CourseID:  courseID,
			StudentID: studentID,
			Status:    models.EnrollmentActive,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		enrollmentID = enrollment.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return enrollmentID, nil
}

// Drop transitions an active enrollment to DROPPED. Dropping a missing
// or already-dropped enrollment fails with ErrNotEnrolled rather than
// silently succeeding. The freed seat is committed before Drop returns,
// so a subsequent Enroll observes it.
func (l *Ledger) Drop(courseID, studentID uint) error {
	lock := l.courseLock(courseID)
	lock.Lock()
	defer lock.Unlock()

	return l.db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		err := tx.Where("course_id = ? AND student_id = ? AND status = ?",
			courseID, studentID, models.EnrollmentActive).First(&enrollment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotEnrolled
			}
			return err
		}

		enrollment.Status = models.EnrollmentDropped
		return tx.Save(&enrollment).Error
	})
}

// ListForStudent returns every enrollment row (active and dropped) for
// the student, oldest first.
func (l *Ledger) ListForStudent(studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := l.db.Where("student_id = ?", studentID).Order("id asc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListForCourse returns the course's enrollments, active only unless
// includeDropped is set.
func (l *Ledger) ListForCourse(courseID uint, includeDropped bool) ([]models.Enrollment, error) {
	q := l.db.Where("course_id = ?", courseID)
	if !includeDropped {
		q = q.Where("status = ?", models.EnrollmentActive)
	}

	var enrollments []models.Enrollment
	if err := q.Order("id asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ActiveCount is always computed from the rows, never cached, so it
// cannot drift from the ledger.
func (l *Ledger) ActiveCount(courseID uint) (int, error) {
	var count int64
	err := l.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND status = ?", courseID, models.EnrollmentActive).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
