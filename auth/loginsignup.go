package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"ecogrocer/db"
	"ecogrocer/globals"
	"ecogrocer/middleware"
	"ecogrocer/models"
	"ecogrocer/mq"
	"ecogrocer/rdx"
	"ecogrocer/roles"
	"ecogrocer/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 12 * time.Hour
	otpTTL          = 10 * time.Minute
)

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

var vehicleTypes = map[string]bool{
	"Bike": true, "Scooter": true, "E-rickshaw": true, "Other": true,
}

type registrationInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	// seller fields
	PAN string `json:"pan"`
	GST string `json:"gst"`
	// delivery partner fields
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	VehicleType   string `json:"vehicle_type"`
}

func (in *registrationInput) validate() error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("username, email and password are required")
	}
	if len(in.Name) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if in.Role == "" {
		in.Role = models.RoleCustomer
	}
	if !roles.Valid(in.Role) || in.Role == models.RoleAdmin {
		return fmt.Errorf("invalid role")
	}
	switch in.Role {
	case models.RoleSeller:
		if !panPattern.MatchString(in.PAN) {
			return fmt.Errorf("invalid PAN number")
		}
	case models.RoleDelivery:
		if !utils.IsDigits(in.Phone, 10) {
			return fmt.Errorf("invalid phone number")
		}
		if len(in.LicenseNumber) < 5 {
			return fmt.Errorf("invalid license number")
		}
		if !vehicleTypes[in.VehicleType] {
			return fmt.Errorf("invalid vehicle type")
		}
	}
	return nil
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input registrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := input.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("Registering user: %s role=%s", input.Username, input.Role)

	// Check if user already exists by username or email
	var existing models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{
		"$or": []bson.M{{"username": input.Username}, {"email": input.Email}},
	}).Decode(&existing)
	if err == nil {
		http.Error(w, "User already exists", http.StatusConflict)
		return
	} else if err != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for user %s: %v", input.Username, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	user := models.User{
		UserID:        "u" + utils.GenerateRandomString(10),
		Username:      input.Username,
		Name:          input.Name,
		Email:         input.Email,
		Password:      string(hashedPassword),
		Role:          input.Role,
		PhoneNumber:   input.Phone,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.UserCollection.InsertOne(context.TODO(), user); err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	// Seller and delivery registrations open a pending role profile; the
	// admin approval flow only surfaces it once the email is verified.
	if err := createRoleProfile(r.Context(), user, input); err != nil {
		log.Printf("Failed to create %s profile for %s: %v", input.Role, user.UserID, err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxSet(fmt.Sprintf("users:%s", user.UserID), user.Username); err != nil {
		log.Printf("Failed to cache username: %v", err)
	}

	// Email OTP for verification
	otp := GenerateOTP(6)
	if err := rdx.SetWithExpiry("otp:"+user.Email, otp, otpTTL); err != nil {
		log.Printf("Failed to cache OTP: %v", err)
	}
	go mq.Emit(r.Context(), "otp-requested", models.Notification{
		Recipient:    user.Email,
		TemplateKind: "verification",
		Subject:      "Your OTP is: " + otp,
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  http.StatusCreated,
		"userid":  user.UserID,
		"message": "OTP sent to email. Please verify to complete registration.",
	})
}

func createRoleProfile(ctx context.Context, user models.User, input registrationInput) error {
	now := time.Now()
	switch input.Role {
	case models.RoleSeller:
		profile := models.SellerProfile{
			UserID:    user.UserID,
			PAN:       input.PAN,
			GST:       input.GST,
			Status:    models.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		_, err := db.SellerCollection.InsertOne(ctx, profile)
		return err
	case models.RoleDelivery:
		profile := models.DeliveryPartnerProfile{
			UserID:        user.UserID,
			PhoneNumber:   input.Phone,
			LicenseNumber: input.LicenseNumber,
			VehicleType:   input.VehicleType,
			Status:        models.StatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		_, err := db.DeliveryPartnerCollection.InsertOne(ctx, profile)
		return err
	}
	return nil
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Username == "" || input.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": input.Username}).Decode(&storedUser)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}
	hashedRefresh := hashToken(refreshToken)

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{
			"refreshtoken":   hashedRefresh,
			"refresh_expiry": time.Now().Add(refreshTokenTTL),
			"last_login":     time.Now(),
		}},
	)
	if err != nil {
		http.Error(w, "Failed to store refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
		"role":         storedUser.Role,
	}, "Login successful", nil)
}

func generateAccessToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "User logged out successfully", nil)
}

func refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID       string `json:"userid"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.UserID == "" || input.RefreshToken == "" {
		http.Error(w, "Missing refresh token", http.StatusBadRequest)
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": input.UserID}).Decode(&storedUser)
	if err != nil {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	if storedUser.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(storedUser.RefreshExpiry) {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Error updating token in Redis: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"token": tokenString}, "Token refreshed successfully", nil)
}

// Generates a random refresh token
func generateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// Hashes a given token
func hashToken(token string) string {
	hash := sha256.New()
	hash.Write([]byte(token))
	return hex.EncodeToString(hash.Sum(nil))
}
