package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/studyhub/studyhub-backend/config"
)

// DefaultSubscriptionAmount is paise (₹100) unless overridden by env.
const DefaultSubscriptionAmount = 100 * 100

func SubscriptionAmount() int {
	raw := config.Getenv("SUBSCRIPTION_AMOUNT", "")
	if raw == "" {
		return DefaultSubscriptionAmount
	}
	amount, err := strconv.Atoi(raw)
	if err != nil || amount <= 0 {
		return DefaultSubscriptionAmount
	}
	return amount
}

// CreateSubscriptionOrder opens a gateway order for the fixed subscription
// amount, tagging the receipt with the paying user's id.
func CreateSubscriptionOrder(userID string) (map[string]interface{}, error) {
	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))

	data := map[string]interface{}{
		"amount":   SubscriptionAmount(),
		"currency": "INR",
		"receipt":  fmt.Sprintf("receipt_user_%s", userID),
		"notes": map[string]interface{}{
			"userId": userID,
		},
	}
	order, err := client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("creating gateway order: %w", err)
	}
	return order, nil
}

// VerifyPaymentSignature recomputes the gateway's HMAC-SHA256 over
// "orderID|paymentID" with the server-held secret and compares in constant
// time. The secret never leaves this function.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
