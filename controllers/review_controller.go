package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/models"
)

func GetNoteReviews(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	noteID := c.Param("noteId")

	var reviews []models.Review
	err := db.Where("note_id = ?", noteID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews."})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=500"`
}

// AddOrUpdateReview upserts the caller's rating for a note; the (note,user)
// unique index guarantees at most one row per pair.
func AddOrUpdateReview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note id."})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating is required."})
		return
	}

	userID, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
		return
	}

	var note models.Note
	if err := db.First(&note, "id = ?", noteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found."})
		return
	}

	var review models.Review
	err = db.Where("note_id = ? AND user_id = ?", noteID, userID).First(&review).Error
	switch {
	case err == nil:
		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add review."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully!", "review": review})
	case err == gorm.ErrRecordNotFound:
		review = models.Review{
			NoteID:   noteID,
			UserID:   userID,
			UserName: c.GetString(middleware.CtxUserName),
			Rating:   input.Rating,
			Comment:  input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add review."})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully!", "review": review})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add review."})
	}
}
