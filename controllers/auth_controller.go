package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-backend/config"
	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/policy"
	"github.com/studyhub/studyhub-backend/utils"
)

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	USN         string `json:"usn" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Branch      string `json:"branch"`
}

type LoginInput struct {
	USN         string `json:"usn"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	LoginType   string `json:"loginType"`
}

// ====== HANDLERS ======
func Register(c *gin.Context) {
	var input RegisterInput
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
	if err := config.DB.Where("usn = ?", usn).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A user with this USN already exists."})
		return
	}

	newUser := models.User{
		Name:        input.Name,
		USN:         &usn,
		DateOfBirth: dob,
		Branch:      input.Branch,
		Role:        models.RoleStudent,
	}
	if err := config.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if input.LoginType == "teacher" {
		// Teachers log in by name; names are not unique, first match wins.
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required for teacher login."})
			return
		}
		if err := config.DB.Where("name = ? AND role = ?", input.Name, models.RoleTeacher).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found. Check Name."})
			return
		}
	} else {
		if input.USN == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "USN is required."})
			return
		}
		usn := strings.ToUpper(strings.TrimSpace(input.USN))
		if err := config.DB.Where("usn = ?", usn).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "USN not found. Please check your credentials."})
			return
		}
	}

	if user.DOBString() != input.DateOfBirth {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Date of Birth."})
		return
	}

	usn := ""
	if user.USN != nil {
		usn = *user.USN
	}
	token, err := utils.GenerateToken(user.ID.String(), usn, user.Name, string(user.Role), user.IsSubscribed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"name":         user.Name,
		"role":         user.Role,
		"isSubscribed": user.IsSubscribed,
	})
}

// Me echoes the token identity plus the capability set the UI should render.
func Me(c *gin.Context) {
	role := models.UserRole(c.GetString(middleware.CtxRole))
	subscribed := c.GetBool(middleware.CtxIsSubscribed)

	c.JSON(http.StatusOK, gin.H{
		"id":           c.GetString(middleware.CtxUserID),
		"name":         c.GetString(middleware.CtxUserName),
		"role":         role,
		"isSubscribed": subscribed,
		"capabilities": policy.ActionList(role, subscribed),
	})
}
