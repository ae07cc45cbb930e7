package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/ws"
)

type SubmitQuizInput struct {
	NoteID         uuid.UUID `json:"noteId" binding:"required"`
	TopicName      string    `json:"topicName" binding:"required"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions" binding:"required,min=1"`

	// Optional: referencing a generated quiz lets the server re-grade
	// against the stored answer key instead of trusting Score.
	QuizID  *uuid.UUID `json:"quizId"`
	Answers []int      `json:"answers"`
}

func SubmitQuizResult(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input SubmitQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
		return
	}

	score := input.Score
	total := input.TotalQuestions

	if input.QuizID != nil && len(input.Answers) > 0 {
		var quiz models.Quiz
		if err := db.First(&quiz, "id = ?", *input.QuizID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found."})
			return
		}
		questions, err := quiz.DecodeQuestions()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
			return
		}
		// The stored answer key wins over the client-reported count.
		total = len(questions)
		score = 0
		for i, q := range questions {
			if i < len(input.Answers) && input.Answers[i] == q.Answer {
				score++
			}
		}
	}

	if score < 0 || score > total {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Score cannot exceed total questions."})
		return
	}

	percentage := float64(score) / float64(total) * 100

	result := models.QuizResult{
		UserID:         userID,
		NoteID:         input.NoteID,
		TopicName:      input.TopicName,
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Badge:          models.BadgeForPercentage(percentage),
	}
	if err := db.Create(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	ws.BroadcastLeaderboardChanged()
	c.JSON(http.StatusCreated, gin.H{"message": "Result saved!", "result": result})
}

func GetMyResults(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetString(middleware.CtxUserID)

	var results []models.QuizResult
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetAllResults is the leaderboard: best percentage first, recent first on
// ties.
func GetAllResults(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var results []models.QuizResult
	err := db.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "usn")
	}).
		Order("percentage DESC, created_at DESC").
		Find(&results).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, results)
}

func ResetLeaderboard(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	if err := db.Where("1 = 1").Delete(&models.QuizResult{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while resetting leaderboard."})
		return
	}

	ws.BroadcastLeaderboardChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Leaderboard has been reset successfully."})
}
