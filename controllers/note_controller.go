package controllers

import (
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/policy"
	"github.com/studyhub/studyhub-backend/services"
	"github.com/studyhub/studyhub-backend/storage"
)

// FileStore is wired up in main before the router starts serving.
var FileStore storage.Store

func uploaderPreload(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name", "usn")
}

func GetAllNotes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var notes []models.Note
	err := db.Preload("Uploader", uploaderPreload).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch notes."})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func GetSubjectsForSemester(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	branch := c.Query("branch")
	semester := c.Query("semester")
	if branch == "" || semester == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Branch and semester are required."})
		return
	}

	var subjects []string
	err := db.Model(&models.Note{}).
		Where("branch = ? AND semester = ?", branch, semester).
		Distinct().
		Pluck("subject", &subjects).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch subjects."})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// NoteWithRating decorates a note with its review aggregate.
type NoteWithRating struct {
	models.Note
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

func GetFilteredNotes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	branch := c.Query("branch")
	semester := c.Query("semester")
	subject := c.Query("subject")
	module := c.Query("module")
	if branch == "" || semester == "" || subject == "" || module == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All filter criteria are required."})
		return
	}

	var notes []models.Note
	err := db.Preload("Uploader", uploaderPreload).
		Where("branch = ? AND semester = ? AND subject = ? AND module = ?", branch, semester, subject, module).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch filtered notes."})
		return
	}

	// One grouped query for every note's rating aggregate.
	type ratingRow struct {
		NoteID        uuid.UUID
		AverageRating float64
		ReviewCount   int64
	}
	noteIDs := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		noteIDs = append(noteIDs, n.ID)
	}

	ratings := make(map[uuid.UUID]ratingRow, len(notes))
	if len(noteIDs) > 0 {
		var rows []ratingRow
		err = db.Model(&models.Review{}).
			Select("note_id, AVG(rating) AS average_rating, COUNT(*) AS review_count").
			Where("note_id IN ?", noteIDs).
			Group("note_id").
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch filtered notes."})
			return
		}
		for _, r := range rows {
			ratings[r.NoteID] = r
		}
	}

	out := make([]NoteWithRating, 0, len(notes))
	for _, n := range notes {
		r := ratings[n.ID]
		out = append(out, NoteWithRating{Note: n, AverageRating: r.AverageRating, ReviewCount: r.ReviewCount})
	}
	c.JSON(http.StatusOK, out)
}

func UploadNote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file was uploaded."})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF files are accepted."})
		return
	}

	title := c.PostForm("title")
	subject := c.PostForm("subject")
	branch := c.PostForm("branch")
	semester := c.PostForm("semester")
	module := c.PostForm("module")
	if title == "" || subject == "" || branch == "" || semester == "" || module == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, subject, branch, semester and module are required."})
		return
	}

	uploaderID, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload note."})
		return
	}
	defer src.Close()

	key := storage.ObjectKey(file.Filename)
	if _, err := FileStore.Save(key, src, file.Size, "application/pdf"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload note."})
		return
	}

	note := models.Note{
		Title:       title,
		Description: c.PostForm("description"),
		FileKey:     key,
		FileName:    file.Filename,
		FileSize:    file.Size,
		Branch:      branch,
		Semester:    semester,
		Subject:     subject,
		Module:      module,
		UploaderID:  &uploaderID,
	}
	if err := db.Create(&note).Error; err != nil {
		// Keep storage consistent with the failed insert.
		if delErr := FileStore.Delete(key); delErr != nil {
			log.Printf("orphan upload cleanup failed for %s: %v", key, delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload note."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note uploaded successfully!", "note": note})
}

func UpdateNote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	id := c.Param("id")

	var note models.Note
	if err := db.First(&note, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found."})
		return
	}

	updates := map[string]interface{}{}
	for field, column := range map[string]string{
		"title": "title", "description": "description", "subject": "subject",
		"branch": "branch", "semester": "semester", "module": "module",
	} {
		if v := c.PostForm(field); v != "" {
			updates[column] = v
		}
	}

	// Optional file replacement.
	if file, err := c.FormFile("file"); err == nil {
		if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF files are accepted."})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note."})
			return
		}
		defer src.Close()

		key := storage.ObjectKey(file.Filename)
		if _, err := FileStore.Save(key, src, file.Size, "application/pdf"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note."})
			return
		}

		if err := FileStore.Delete(note.FileKey); err != nil {
			log.Printf("old file delete failed (might not exist): %v", err)
		}
		updates["file_key"] = key
		updates["file_name"] = file.Filename
		updates["file_size"] = file.Size
	}

	if err := db.Model(&note).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully!", "note": note})
}

func DeleteNote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	id := c.Param("id")

	var note models.Note
	if err := db.First(&note, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found."})
		return
	}

	if err := db.Delete(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete note."})
		return
	}

	// DB state is authoritative; a failed file removal is logged, not fatal.
	if err := FileStore.Delete(note.FileKey); err != nil {
		log.Printf("file delete failed for note %s: %v", note.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully!"})
}

// ViewNoteFile streams the PDF: full document for staff and subscribed
// students, a 2-page preview for everyone else.
func ViewNoteFile(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	noteID := c.Param("noteId")

	var note models.Note
	if err := db.First(&note, "id = ?", noteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found."})
		return
	}

	f, err := FileStore.Open(note.FileKey)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found on server."})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error loading file."})
		return
	}

	role := models.UserRole(c.GetString(middleware.CtxRole))
	fullAccess := policy.IsStaff(role)
	if !fullAccess {
		// Check the database, not the token: a fresh subscription counts.
		var user models.User
		if err := db.Select("is_subscribed").First(&user, "id = ?", c.GetString(middleware.CtxUserID)).Error; err == nil {
			fullAccess = policy.Can(role, user.IsSubscribed, policy.ActionViewFullPDF)
		}
	}

	if !fullAccess {
		preview, err := services.PreviewPDF(data, services.PreviewPageCount)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error loading file."})
			return
		}
		data = preview
	}

	c.Data(http.StatusOK, "application/pdf", data)
}
