package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/controllers"
	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/policy"
	"github.com/studyhub/studyhub-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	notes := api.Group("/notes")
	notes.Use(middleware.AuthMiddleware())
	{
		notes.GET("", controllers.GetAllNotes)
		notes.GET("/subjects", controllers.GetSubjectsForSemester)
		notes.GET("/filter", controllers.GetFilteredNotes)
		notes.GET("/view/:noteId", controllers.ViewNoteFile)

		notes.GET("/:noteId/reviews", controllers.GetNoteReviews)
		notes.POST("/:noteId/rate", controllers.AddOrUpdateReview)

		// Staff-only note management.
		notes.POST("/upload", middleware.RequireAction(policy.ActionUploadNotes), controllers.UploadNote)
		notes.PUT("/update/:id", middleware.RequireAction(policy.ActionEditNotes), controllers.UpdateNote)
		notes.DELETE("/delete/:id", middleware.RequireAction(policy.ActionDeleteNotes), controllers.DeleteNote)
	}

	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireAction(policy.ActionManageUsers))
	{
		users.GET("", controllers.GetAllStudents)
		users.GET("/subscribed", controllers.GetSubscribedStudents)
		users.GET("/teachers", controllers.GetAllTeachers)
		users.POST("/add", controllers.AddStudent)
		users.POST("/add-teacher", controllers.AddTeacher)
	}

	ai := api.Group("/ai")
	ai.Use(middleware.AuthMiddleware())
	{
		ai.GET("/chat/:noteId", controllers.GetChatHistory)
		ai.POST("/chat/:noteId", middleware.RequireSubscription(), controllers.ChatWithNote)
		ai.POST("/summarize/:noteId", middleware.RequireSubscription(), controllers.SummarizeNote)
		ai.POST("/quiz/:noteId", middleware.RequireSubscription(), controllers.GenerateQuiz)
	}

	quiz := api.Group("/quiz")
	quiz.Use(middleware.AuthMiddleware())
	{
		quiz.POST("/submit", controllers.SubmitQuizResult)
		quiz.GET("/my-results", controllers.GetMyResults)
		quiz.GET("/all-results", controllers.GetAllResults)
		quiz.DELETE("/reset", middleware.RequireAction(policy.ActionResetLeaderboard), controllers.ResetLeaderboard)
	}

	payment := api.Group("/payment")
	payment.Use(middleware.AuthMiddleware())
	{
		payment.POST("/create-order", controllers.CreateOrder)
		payment.POST("/verify", controllers.VerifyPayment)
	}

	r.GET("/ws/leaderboard", ws.HandleLeaderboardWebSocket)

	return r
}
