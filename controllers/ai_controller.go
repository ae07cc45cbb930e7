package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/services"
)

// Character budgets keeping prompts inside the model's context window.
const (
	summaryTextBudget = 30000
	chatTextBudget    = 25000
	minExtractedChars = 50
	chatContextTurns  = 6
)

// noteText resolves a note and extracts the full document text, writing the
// error response itself when any step fails.
func noteText(c *gin.Context, db *gorm.DB) (*models.Note, string, bool) {
	noteID := c.Param("noteId")
	if _, err := uuid.Parse(noteID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Note ID format."})
		return nil, "", false
	}

	var note models.Note
	if err := db.First(&note, "id = ?", noteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note or file not found."})
		return nil, "", false
	}

	f, err := FileStore.Open(note.FileKey)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note or file not found."})
		return nil, "", false
	}
	defer f.Close()

	text, err := services.ExtractTextFromPDF(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing the PDF file."})
		return nil, "", false
	}
	if len(strings.TrimSpace(text)) < minExtractedChars {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not extract sufficient text from PDF."})
		return nil, "", false
	}
	return &note, text, true
}

func SummarizeNote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	_, text, ok := noteText(c, db)
	if !ok {
		return
	}

	prompt := fmt.Sprintf(
		"Please provide a concise summary of the following academic notes text. Focus on the main topics and key takeaways:\n\n---\n%s\n---\n\nSummary:",
		services.Truncate(text, summaryTextBudget),
	)

	summary, err := services.GeminiGenerateText(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating the summary."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func GenerateQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	note, text, ok := noteText(c, db)
	if !ok {
		return
	}

	prompt := fmt.Sprintf(`Based on the text below, generate 5 multiple-choice questions.
Return the output as a strictly valid JSON array of objects. Do not include markdown formatting (like %s).
Each object should have:
- "question": The question string.
- "options": An array of 4 string options (A, B, C, D).
- "answer": The *index* of the correct option (0 for A, 1 for B, 2 for C, 3 for D).

TEXT CONTENT:
%s`, "```json", services.Truncate(text, summaryTextBudget))

	raw, err := services.GeminiGenerateText(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating quiz."})
		return
	}

	questions, err := services.ParseQuizJSON(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "AI generated an invalid quiz format. Please try again."})
		return
	}

	// Persist the answer key so a later submission can be re-graded.
	userID, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
		return
	}
	quiz := models.Quiz{NoteID: note.ID, UserID: userID}
	if err := quiz.EncodeQuestions(questions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating quiz."})
		return
	}
	if err := db.Create(&quiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating quiz."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": questions, "quizId": quiz.ID})
}

func GetChatHistory(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	noteID := c.Param("noteId")
	userID := c.GetString(middleware.CtxUserID)

	var history models.ChatHistory
	err := db.Where("note_id = ? AND user_id = ?", noteID, userID).First(&history).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, []models.ChatMessage{{
			Sender: models.SenderAI,
			Text:   "Hello! Ask me any question about this document.",
		}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get chat history."})
		return
	}

	messages, err := history.DecodeMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get chat history."})
		return
	}
	c.JSON(http.StatusOK, messages)
}

type ChatInput struct {
	Question string `json:"question" binding:"required"`
}

// ChatWithNote answers one question against the document and appends both
// turns to the per-(note,user) history.
func ChatWithNote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A question is required."})
		return
	}

	note, text, ok := noteText(c, db)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
		return
	}

	var history models.ChatHistory
	err = db.Where("note_id = ? AND user_id = ?", note.ID, userID).First(&history).Error
	if err == gorm.ErrRecordNotFound {
		history = models.ChatHistory{NoteID: note.ID, UserID: userID}
		if err := history.EncodeMessages(nil); err == nil {
			err = db.Create(&history).Error
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating an answer."})
		return
	}

	messages, err := history.DecodeMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating an answer."})
		return
	}
	messages = append(messages, models.ChatMessage{Sender: models.SenderUser, Text: input.Question})

	// Feed the model the last few turns so it keeps conversation context.
	recent := messages
	if len(recent) > chatContextTurns {
		recent = recent[len(recent)-chatContextTurns:]
	}
	var contextLines []string
	for _, msg := range recent {
		who := "Assistant"
		if msg.Sender == models.SenderUser {
			who = "User"
		}
		contextLines = append(contextLines, who+": "+msg.Text)
	}

	prompt := fmt.Sprintf(
		"You are a helpful study assistant. Use the following text context to answer the user's question. If the answer is not in the text, say \"I cannot find the answer to that in this document.\"\n\nCONTEXT:\n---\n%s\n---\n\nCHAT HISTORY:\n%s\n\nUser: %s\n\nAssistant:",
		services.Truncate(text, chatTextBudget),
		strings.Join(contextLines, "\n"),
		input.Question,
	)

	answer, err := services.GeminiGenerateText(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating an answer."})
		return
	}

	messages = append(messages, models.ChatMessage{Sender: models.SenderAI, Text: answer})
	if err := history.EncodeMessages(messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating an answer."})
		return
	}
	if err := db.Model(&history).Update("messages", history.Messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred while generating an answer."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
