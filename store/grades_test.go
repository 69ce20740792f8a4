package store

import (
	"testing"

	"gradebook/models"

	"github.com/stretchr/testify/require"
)

func TestGradeStore_SetAndGet(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	grades := NewGradeStore(db)
	teacher := createUser(t, db, "teach", models.RoleTeacher)
	student := createUser(t, db, "stud", models.RoleStudent)
	course := createCourse(t, db, "CS101", teacher.ID, 30)

	id, err := ledger.Enroll(course.ID, student.ID)
	require.NoError(t, err)

	// ungraded until a teacher records something
	grade, err := grades.Get(id)
	require.NoError(t, err)
	require.Nil(t, grade)

	require.NoError(t, grades.Set(id, 92, teacher.ID))

	grade, err = grades.Get(id)
	require.NoError(t, err)
	require.NotNil(t, grade)
	require.Equal(t, 92, *grade)

	// a new value fully replaces the old one
	require.NoError(t, grades.Set(id, 75, teacher.ID))
	grade, err = grades.Get(id)
	require.NoError(t, err)
	require.Equal(t, 75, *grade)
}

func TestGradeStore_Bounds(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	grades := NewGradeStore(db)
	teacher := createUser(t, db, "teach", models.RoleTeacher)
	student := createUser(t, db, "stud", models.RoleStudent)
	course := createCourse(t, db, "CS101", teacher.ID, 30)

	id, err := ledger.Enroll(course.ID, student.ID)
	require.NoError(t, err)

	require.ErrorIs(t, grades.Set(id, -1, teacher.ID), ErrInvalidGrade)
	require.ErrorIs(t, grades.Set(id, 101, teacher.ID), ErrInvalidGrade)

	require.NoError(t, grades.Set(id, 0, teacher.ID))
	require.NoError(t, grades.Set(id, 100, teacher.ID))
}

func TestGradeStore_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	grades := NewGradeStore(db)
	owner := createUser(t, db, "owner", models.RoleTeacher)
	intruder := createUser(t, db, "intruder", models.RoleTeacher)
	student := createUser(t, db, "stud", models.RoleStudent)
	course := createCourse(t, db, "CS101", owner.ID, 30)

	id, err := ledger.Enroll(course.ID, student.ID)
	require.NoError(t, err)

	require.ErrorIs(t, grades.Set(id, 50, intruder.ID), ErrNotAuthorized)

	grade, err := grades.Get(id)
	require.NoError(t, err)
	require.Nil(t, grade, "a rejected write must not change the grade")
}

func TestGradeStore_MissingEnrollment(t *testing.T) {
	db := newTestDB(t)
	grades := NewGradeStore(db)
	teacher := createUser(t, db, "teach", models.RoleTeacher)

	require.ErrorIs(t, grades.Set(404, 50, teacher.ID), ErrEnrollmentNotFound)

	_, err := grades.Get(404)
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestGradeStore_DroppedStudentKeepsGrade(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	grades := NewGradeStore(db)
	teacher := createUser(t, db, "teach", models.RoleTeacher)
	student := createUser(t, db, "stud", models.RoleStudent)
	course := createCourse(t, db, "CS101", teacher.ID, 30)

	id, err := ledger.Enroll(course.ID, student.ID)
	require.NoError(t, err)
	require.NoError(t, grades.Set(id, 88, teacher.ID))
	require.NoError(t, ledger.Drop(course.ID, student.ID))

	grade, err := grades.Get(id)
	require.NoError(t, err)
	require.NotNil(t, grade)
	require.Equal(t, 88, *grade)

	// grading stays open on the dropped row
	require.NoError(t, grades.Set(id, 90, teacher.ID))
}
