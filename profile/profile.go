package profile

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"ecogrocer/db"
	"ecogrocer/filemgr"
	"ecogrocer/models"
	"ecogrocer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetMyProfile returns the acting user's profile.
func GetMyProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var profile models.UserProfileResponse
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// UpdateMyProfile updates the mutable profile fields. Role and email are
// not among them.
func UpdateMyProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone_number"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Phone != "" {
		update["phone_number"] = input.Phone
	}
	if input.Address != "" {
		update["address"] = input.Address
	}

	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": update}); err != nil {
		log.Println("UpdateMyProfile error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}

// UploadAvatar stores a profile picture for the acting user.
func UploadAvatar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid form"})
		return
	}

	filename, err := filemgr.SaveFormFile(r.MultipartForm, "avatar", filemgr.EntityUser, true)
	if err != nil {
		log.Println("UploadAvatar save error:", err)
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Could not save avatar"})
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID},
		bson.M{"$set": bson.M{"avatar": filename, "updated_at": time.Now()}}); err != nil {
		log.Println("UploadAvatar update error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "avatar": filename})
}
