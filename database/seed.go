package database

import (
	"log"

	"gradebook/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Username string
	Password string
	Role     string
	FullName string
}

type seedCourse struct {
	Code     string
	Name     string
	Teacher  string // username of the owning teacher
	Time     string
	Capacity int
}

var demoUsers = []seedUser{
	{Username: "turing", Password: "teachpass1", Role: models.RoleTeacher, FullName: "Alan Turing"},
	{Username: "hopper", Password: "teachpass2", Role: models.RoleTeacher, FullName: "Grace Hopper"},
	{Username: "alice", Password: "studpass1", Role: models.RoleStudent, FullName: "Alice Zhang"},
	{Username: "bob", Password: "studpass2", Role: models.RoleStudent, FullName: "Bob Martinez"},
	{Username: "carol", Password: "studpass3", Role: models.RoleStudent, FullName: "Carol Okafor"},
}

var demoCourses = []seedCourse{
	{Code: "CS101", Name: "Intro to Computer Science", Teacher: "turing", Time: "Mon/Wed 10:00", Capacity: 30},
	{Code: "CS230", Name: "Operating Systems", Teacher: "turing", Time: "Tue/Thu 14:00", Capacity: 25},
	{Code: "MA201", Name: "Linear Algebra", Teacher: "hopper", Time: "Mon/Fri 09:00", Capacity: 40},
	{Code: "MA305", Name: "Numerical Methods", Teacher: "hopper", Time: "Wed 16:00", Capacity: 15},
}

// SeedDemo provisions demo accounts and courses. Account and course
// creation are administrative and have no API surface, so fresh
// installs get a usable data set from here. Idempotent: existing
// usernames and course codes are left untouched.
func SeedDemo(db *gorm.DB, saltRound int) error {
	teacherIDs := make(map[string]uint)

	for _, su := range demoUsers {
		var existing models.User
		err := db.Where("username = ?", su.Username).First(&existing).Error
		if err == nil {
			if existing.Role == models.RoleTeacher {
				teacherIDs[existing.Username] = existing.ID
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), saltRound)
		if err != nil {
			return err
		}
		user := models.User{
			Username: su.Username,
			Password: string(hashed),
			Role:     su.Role,
			FullName: su.FullName,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		if user.Role == models.RoleTeacher {
			teacherIDs[user.Username] = user.ID
		}
	}

	for _, sc := range demoCourses {
		var existing models.Course
		err := db.Where("code = ?", sc.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		teacherID, ok := teacherIDs[sc.Teacher]
		if !ok {
			log.Printf("Seed: skipping course %s, teacher %s not found", sc.Code, sc.Teacher)
			continue
		}
		course := models.Course{
			Code:      sc.Code,
			Name:      sc.Name,
			TeacherID: teacherID,
			Time:      sc.Time,
			Capacity:  sc.Capacity,
		}
		if err := db.Create(&course).Error; err != nil {
			return err
		}
	}

	log.Println("Demo data seeded.")
	return nil
}
