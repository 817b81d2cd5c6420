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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetDeliveryPartners returns every delivery-partner account joined with its
// approval profile.
func GetDeliveryPartners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	listings := deliveryListings(ctx, bson.M{"role": models.RoleDelivery})
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

func GetPendingDeliveryPartners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	all := deliveryListings(ctx, bson.M{"role": models.RoleDelivery, "email_verified": true})
	pending := make([]models.DeliveryPartnerListing, 0, len(all))
	for _, p := range all {
		if p.Status == models.StatusPending {
			pending = append(pending, p)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, pending)
}

func deliveryListings(ctx context.Context, filter bson.M) []models.DeliveryPartnerListing {
	listings := []models.DeliveryPartnerListing{}

	cursor, err := db.UserCollection.Find(ctx, filter)
	if err != nil {
		log.Println("GetDeliveryPartners Find error:", err)
		return listings
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Println("GetDeliveryPartners cursor.All error:", err)
		return listings
	}

	for _, u := range users {
		listing := models.DeliveryPartnerListing{
			UserID:        u.UserID,
			Name:          u.Name,
			Email:         u.Email,
			EmailVerified: u.EmailVerified,
			Joined:        u.CreatedAt,
			PhoneNumber:   "N/A",
			LicenseNumber: "N/A",
			VehicleType:   "N/A",
			Status:        models.StatusPending,
		}

		var profile models.DeliveryPartnerProfile
		if err := db.DeliveryPartnerCollection.FindOne(ctx, bson.M{"userid": u.UserID}).Decode(&profile); err == nil {
			if profile.PhoneNumber != "" {
				listing.PhoneNumber = profile.PhoneNumber
			}
			if profile.LicenseNumber != "" {
				listing.LicenseNumber = profile.LicenseNumber
			}
			if profile.VehicleType != "" {
				listing.VehicleType = profile.VehicleType
			}
			if profile.Status != "" {
				listing.Status = profile.Status
			}
		}
		listings = append(listings, listing)
	}
	return listings
}

func ApproveDeliveryPartner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setDeliveryStatus(w, r, ps.ByName("id"), models.StatusApproved)
}

func RejectDeliveryPartner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setDeliveryStatus(w, r, ps.ByName("id"), models.StatusRejected)
}

func setDeliveryStatus(w http.ResponseWriter, r *http.Request, partnerID, target string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var current models.DeliveryPartnerProfile
	if err := db.DeliveryPartnerCollection.FindOne(ctx, bson.M{"userid": partnerID}).Decode(&current); err != nil {
		current.Status = models.StatusPending
	}

	decision, err := Transition(current.Status, target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if decision.Apply {
		opts := options.Update().SetUpsert(true)
		_, err := db.DeliveryPartnerCollection.UpdateOne(ctx,
			bson.M{"userid": partnerID},
			bson.M{"$set": bson.M{"status": target, "updated_at": time.Now()}},
			opts,
		)
		if err != nil {
			log.Println("setDeliveryStatus update error:", err)
			http.Error(w, "Failed to update partner status", http.StatusInternalServerError)
			return
		}
	}

	if decision.Notify {
		notifyStatusChange(ctx, partnerID, "delivery-"+target)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"status": target}, "Delivery partner "+target, nil)
}
