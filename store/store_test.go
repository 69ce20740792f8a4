package store

import (
	"testing"

	"gradebook/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection: ":memory:" is per-connection and sqlite has a single writer
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.LoginAudit{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "x",
		Role:     role,
		FullName: username,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, code string, teacherID uint, capacity int) models.Course {
	t.Helper()
	course := models.Course{
		Code:      code,
		Name:      code + " name",
		TeacherID: teacherID,
		Time:      "Mon 10:00",
		Capacity:  capacity,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}
