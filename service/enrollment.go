package service

import (
	"errors"
	"log"
	"time"

	"gradebook/models"
	"gradebook/store"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials indicates an unknown username or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongRole indicates an authenticated caller lacking the role an
	// operation requires (a teacher enrolling, a student grading).
	ErrWrongRole = errors.New("operation not permitted for this role")
)

// UserSummary is the sanitized identity returned to clients.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// CourseSummary is a catalog row with live enrollment stats.
type CourseSummary struct {
	Course        models.Course `json:"course"`
	EnrolledCount int           `json:"enrolled_count"`
	IsFull        bool          `json:"is_full"`
}

// StudentCourseRow is one of the caller's own enrollments joined with
// its course.
type StudentCourseRow struct {
	Course     models.Course     `json:"course"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// RosterEntry is one student on a teacher's course roster.
type RosterEntry struct {
	EnrollmentID uint   `json:"enrollment_id"`
	StudentID    uint   `json:"student_id"`
	StudentName  string `json:"student_name"`
	Status       string `json:"status"`
	Grade        *int   `json:"grade"`
}

// TeacherCourseRow is one taught course with its roster.
type TeacherCourseRow struct {
	Course models.Course `json:"course"`
	Roster []RosterEntry `json:"roster"`
}

// MyCourses is the role-shaped result of ListMyCourses: exactly one of
// the two slices is populated, matching Role.
type MyCourses struct {
	Role    string             `json:"role"`
	Student []StudentCourseRow `json:"student,omitempty"`
	Teacher []TeacherCourseRow `json:"teacher,omitempty"`
}

// Enrollment is the orchestrator. It owns no state; every operation
// resolves the session first, checks the role, then delegates to the
// stores. It is the only place cross-store authorization lives, so the
// ledger and grade store stay free of identity concerns.
type Enrollment struct {
	db       *gorm.DB
	sessions *store.SessionStore
	catalog  *store.Catalog
	ledger   *store.Ledger
	grades   *store.GradeStore
}

func New(db *gorm.DB, sessions *store.SessionStore, catalog *store.Catalog, ledger *store.Ledger, grades *store.GradeStore) *Enrollment {
	return &Enrollment{
		db:       db,
		sessions: sessions,
		catalog:  catalog,
		ledger:   ledger,
		grades:   grades,
	}
}

// Login verifies credentials, records the login, and opens a session.
func (s *Enrollment) Login(username, password, ip, device string) (*LoginResult, error) {
	var user models.User
	err := s.db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	audit := models.LoginAudit{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    device,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&audit).Error; err != nil {
		log.Printf("Error saving login audit: %v", err)
	}

	token := s.sessions.Create(user.ID, user.Role)
	return &LoginResult{
		Token: token,
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			FullName: user.FullName,
		},
	}, nil
}

// Logout revokes the session. Idempotent: an unknown token is fine.
func (s *Enrollment) Logout(token string) {
	s.sessions.Revoke(token)
}

// ListCourses returns the full catalog with live counts. Any
// authenticated role may browse.
func (s *Enrollment) ListCourses(token string) ([]CourseSummary, error) {
	if _, err := s.sessions.Resolve(token); err != nil {
		return nil, err
	}

	courses, err := s.catalog.ListAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		count, err := s.ledger.ActiveCount(course.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, CourseSummary{
			Course:        course,
			EnrolledCount: count,
			IsFull:        count >= course.Capacity,
		})
	}
	return summaries, nil
}

// ListMyCourses returns the caller's view: students get their own
// enrollments, teachers get their courses with rosters. Neither role
// can see the other's data through this path.
func (s *Enrollment) ListMyCourses(token string) (*MyCourses, error) {
	sess, err := s.sessions.Resolve(token)
	if err != nil {
		return nil, err
	}

	switch sess.Role {
	case models.RoleStudent:
		rows, err := s.studentCourses(sess.UserID)
		if err != nil {
			return nil, err
		}
		return &MyCourses{Role: models.RoleStudent, Student: rows}, nil
	case models.RoleTeacher:
		rows, err := s.teacherCourses(sess.UserID)
		if err != nil {
			return nil, err
		}
		return &MyCourses{Role: models.RoleTeacher, Teacher: rows}, nil
	default:
		return nil, ErrWrongRole
	}
}

func (s *Enrollment) studentCourses(studentID uint) ([]StudentCourseRow, error) {
	enrollments, err := s.ledger.ListForStudent(studentID)
	if err != nil {
		return nil, err
	}

	rows := make([]StudentCourseRow, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.catalog.Get(e.CourseID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StudentCourseRow{Course: *course, Enrollment: e})
	}
	return rows, nil
}

func (s *Enrollment) teacherCourses(teacherID uint) ([]TeacherCourseRow, error) {
	courses, err := s.catalog.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}

	rows := make([]TeacherCourseRow, 0, len(courses))
	for _, course := range courses {
		enrollments, err := s.ledger.ListForCourse(course.ID, true)
		if err != nil {
			return nil, err
		}

		roster := make([]RosterEntry, 0, len(enrollments))
		for _, e := range enrollments {
			name, err := s.studentName(e.StudentID)
			if err != nil {
				return nil, err
			}
			roster = append(roster, RosterEntry{
				EnrollmentID: e.ID,
				StudentID:    e.StudentID,
				StudentName:  name,
				Status:       e.Status,
				Grade:        e.Grade,
			})
		}
		rows = append(rows, TeacherCourseRow{Course: course, Roster: roster})
	}
	return rows, nil
}

func (s *Enrollment) studentName(studentID uint) (string, error) {
	var user models.User
	if err := s.db.First(&user, studentID).Error; err != nil {
		return "", err
	}
	if user.FullName != "" {
		return user.FullName, nil
	}
	return user.Username, nil
}

// EnrollCourse admits the calling student into the course.
func (s *Enrollment) EnrollCourse(token string, courseID uint) (uint, error) {
	sess, err := s.sessions.Resolve(token)
	if err != nil {
		return 0, err
	}
	if sess.Role != models.RoleStudent {
		return 0, ErrWrongRole
	}
	return s.ledger.Enroll(courseID, sess.UserID)
}

// DropCourse drops the calling student's active enrollment.
func (s *Enrollment) DropCourse(token string, courseID uint) error {
	sess, err := s.sessions.Resolve(token)
	if err != nil {
		return err
	}
	if sess.Role != models.RoleStudent {
		return ErrWrongRole
	}
	return s.ledger.Drop(courseID, sess.UserID)
}

// RecordGrade sets the grade on an enrollment under a course the
// calling teacher teaches.
func (s *Enrollment) RecordGrade(token string, enrollmentID uint, grade int) error {
	sess, err := s.sessions.Resolve(token)
	if err != nil {
		return err
	}
	if sess.Role != models.RoleTeacher {
		return ErrWrongRole
	}
	return s.grades.Set(enrollmentID, grade, sess.UserID)
}
