package auth

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"

	"ecogrocer/db"
	"ecogrocer/models"
	"ecogrocer/mq"
	"ecogrocer/rdx"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func GenerateOTP(length int) string {
	digits := "0123456789"
	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteByte(digits[rand.Intn(len(digits))])
	}
	return otp.String()
}

// ResendOTPHandler issues a fresh OTP for an unverified email.
func ResendOTPHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": input.Email, "email_verified": false}).Err()
	if err != nil {
		http.Error(w, "No unverified account for this email", http.StatusNotFound)
		return
	}

	otp := GenerateOTP(6)
	if err := rdx.SetWithExpiry("otp:"+input.Email, otp, otpTTL); err != nil {
		http.Error(w, "Failed to issue OTP", http.StatusInternalServerError)
		return
	}
	go mq.Emit(r.Context(), "otp-requested", models.Notification{
		Recipient:    input.Email,
		TemplateKind: "verification",
		Subject:      "Your OTP is: " + otp,
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "OTP sent"})
}

func VerifyOTPHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	storedOTP, err := rdx.RdxGet("otp:" + input.Email)
	if err != nil || storedOTP != input.OTP {
		http.Error(w, "Invalid or expired OTP", http.StatusUnauthorized)
		return
	}

	// Mark user as verified
	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{"email_verified": true}},
	)
	if err != nil {
		http.Error(w, "Failed to verify user", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel("otp:" + input.Email) // Clean up OTP
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "User verified successfully"})
}
