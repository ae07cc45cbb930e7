package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/models"
)

// Admin: list all students.
func GetAllStudents(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var students []models.User
	if err := db.Where("role = ?", models.RoleStudent).Order("created_at DESC").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching students."})
		return
	}
	c.JSON(http.StatusOK, students)
}

// Admin: list only subscribed students.
func GetSubscribedStudents(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var students []models.User
	err := db.Where("role = ? AND is_subscribed = ?", models.RoleStudent, true).
		Order("created_at DESC").
		Find(&students).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching subscribed students."})
		return
	}
	c.JSON(http.StatusOK, students)
}

func GetAllTeachers(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var teachers []models.User
	if err := db.Where("role = ?", models.RoleTeacher).Order("created_at DESC").Find(&teachers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching teachers."})
		return
	}
	c.JSON(http.StatusOK, teachers)
}

type AddStudentInput struct {
	Name        string `json:"name" binding:"required"`
	USN         string `json:"usn" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Branch      string `json:"branch"`
}

func AddStudent(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input AddStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date of birth, expected YYYY-MM-DD."})
		return
	}

	usn := strings.ToUpper(strings.TrimSpace(input.USN))
	var existing models.User
	if err := db.Where("usn = ?", usn).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A student with this USN already exists."})
		return
	}

	student := models.User{
		Name:        input.Name,
		USN:         &usn,
		DateOfBirth: dob,
		Branch:      input.Branch,
		Role:        models.RoleStudent,
	}
	if err := db.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding student."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Student added successfully!", "student": student})
}

type AddTeacherInput struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Branch      string `json:"branch"`
}

// Teachers carry no USN; they log in by name.
func AddTeacher(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input AddTeacherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date of birth, expected YYYY-MM-DD."})
		return
	}

	teacher := models.User{
		Name:        input.Name,
		DateOfBirth: dob,
		Branch:      input.Branch,
		Role:        models.RoleTeacher,
	}
	if err := db.Create(&teacher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding teacher."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Teacher added successfully!", "teacher": teacher})
}
