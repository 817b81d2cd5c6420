package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecogrocer/db"
	"ecogrocer/models"
	"ecogrocer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetCustomers lists customer accounts for the admin dashboard.
func GetCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customers := []models.UserProfileResponse{}

	cursor, err := db.UserCollection.Find(ctx, bson.M{"role": models.RoleCustomer})
	if err != nil {
		log.Println("GetCustomers Find error:", err)
		utils.RespondWithJSON(w, http.StatusOK, customers)
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &customers); err != nil {
		log.Println("GetCustomers cursor.All error:", err)
		customers = []models.UserProfileResponse{}
	}

	utils.RespondWithJSON(w, http.StatusOK, customers)
}
