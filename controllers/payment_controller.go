package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studyhub/studyhub-backend/middleware"
	"github.com/studyhub/studyhub-backend/models"
	"github.com/studyhub/studyhub-backend/services"
)

func CreateOrder(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	order, err := services.CreateSubscriptionOrder(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment order."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":  order,
		"key_id": os.Getenv("RAZORPAY_KEY_ID"),
	})
}

type VerifyPaymentInput struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment checks the gateway callback signature and, on a match, flips
// the caller's subscription flag.
func VerifyPayment(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !services.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, secret) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment verification failed. Signature mismatch."})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	err := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_subscribed", true).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during payment verification."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment verified successfully. You are now subscribed!"})
}
