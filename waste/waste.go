package waste

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"ecogrocer/db"
	"ecogrocer/models"
	"ecogrocer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var requestStatuses = map[string]bool{
	models.WastePending:   true,
	models.WasteScheduled: true,
	models.WasteCompleted: true,
	models.WasteCancelled: true,
}

// SubmitRequest schedules a waste pickup for the acting user.
func SubmitRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		WasteType  string  `json:"waste_type"`
		WeightKg   float64 `json:"weight_kg"`
		Address    string  `json:"address"`
		Phone      string  `json:"phone"`
		PickupDate string  `json:"pickup_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	pickup := utils.ParseDate(input.PickupDate)
	if pickup == nil {
		http.Error(w, "Invalid pickup date", http.StatusBadRequest)
		return
	}

	req := models.WasteRequest{
		RequestID:  utils.GetUUID(),
		UserID:     userID,
		WasteType:  input.WasteType,
		WeightKg:   input.WeightKg,
		Address:    input.Address,
		Phone:      input.Phone,
		PickupDate: *pickup,
		Status:     models.WastePending,
		CreatedAt:  time.Now(),
	}

	if err := ValidateRequest(req, time.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := db.WasteRequestCollection.InsertOne(ctx, req); err != nil {
		log.Println("SubmitRequest InsertOne error:", err)
		http.Error(w, "Could not save your request", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, req)
}

// GetMyRequests lists the acting user's pickup requests, newest first.
func GetMyRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	respondWithRequests(ctx, w, bson.M{"userid": userID})
}

// GetAllRequests is the admin view over every pickup request.
func GetAllRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	respondWithRequests(ctx, w, bson.M{})
}

func respondWithRequests(ctx context.Context, w http.ResponseWriter, filter bson.M) {
	requests := []models.WasteRequest{}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.WasteRequestCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetRequests Find error:", err)
		utils.RespondWithJSON(w, http.StatusOK, requests)
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &requests); err != nil {
		log.Println("GetRequests cursor.All error:", err)
		requests = []models.WasteRequest{}
	}
	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// UpdateRequestStatus is the admin transition over a pickup request.
func UpdateRequestStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !requestStatuses[payload.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	res, err := db.WasteRequestCollection.UpdateOne(ctx,
		bson.M{"requestid": ps.ByName("requestid")},
		bson.M{"$set": bson.M{"status": payload.Status}},
	)
	if err != nil {
		log.Println("UpdateRequestStatus error:", err)
		http.Error(w, "Failed to update request", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Request not found", http.StatusNotFound)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"status": payload.Status}, "Request updated", nil)
}
