package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecogrocer/db"
	"ecogrocer/models"
	"ecogrocer/mq"
	"ecogrocer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetSellers returns every seller account joined with its approval profile.
// Store failures degrade to an empty list rather than an error page.
func GetSellers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	listings := sellerListings(ctx, bson.M{"role": models.RoleSeller})
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

// GetPendingSellers returns verified seller accounts still awaiting review.
func GetPendingSellers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	all := sellerListings(ctx, bson.M{"role": models.RoleSeller, "email_verified": true})
	pending := make([]models.SellerListing, 0, len(all))
	for _, s := range all {
		if s.Status == models.StatusPending {
			pending = append(pending, s)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, pending)
}

func sellerListings(ctx context.Context, filter bson.M) []models.SellerListing {
	listings := []models.SellerListing{}

	cursor, err := db.UserCollection.Find(ctx, filter)
	if err != nil {
		log.Println("GetSellers Find error:", err)
		return listings
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Println("GetSellers cursor.All error:", err)
		return listings
	}

	for _, u := range users {
		listing := models.SellerListing{
			UserID:        u.UserID,
			Name:          u.Name,
			Email:         u.Email,
			EmailVerified: u.EmailVerified,
			Joined:        u.CreatedAt,
			PAN:           "N/A",
			GST:           "N/A",
			Status:        models.StatusPending,
		}

		// Missing profile document reads as pending with placeholders.
		var profile models.SellerProfile
		if err := db.SellerCollection.FindOne(ctx, bson.M{"userid": u.UserID}).Decode(&profile); err == nil {
			listing.PAN = profile.PAN
			if profile.GST != "" {
				listing.GST = profile.GST
			}
			if profile.Status != "" {
				listing.Status = profile.Status
			}
		}
		listings = append(listings, listing)
	}
	return listings
}

func ApproveSeller(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setSellerStatus(w, r, ps.ByName("id"), models.StatusApproved)
}

func RejectSeller(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setSellerStatus(w, r, ps.ByName("id"), models.StatusRejected)
}

func setSellerStatus(w http.ResponseWriter, r *http.Request, sellerID, target string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var current models.SellerProfile
	if err := db.SellerCollection.FindOne(ctx, bson.M{"userid": sellerID}).Decode(&current); err != nil {
		current.Status = models.StatusPending
	}

	decision, err := Transition(current.Status, target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if decision.Apply {
		opts := options.Update().SetUpsert(true)
		_, err := db.SellerCollection.UpdateOne(ctx,
			bson.M{"userid": sellerID},
			bson.M{"$set": bson.M{"status": target, "updated_at": time.Now()}},
			opts,
		)
		if err != nil {
			log.Println("setSellerStatus update error:", err)
			http.Error(w, "Failed to update seller status", http.StatusInternalServerError)
			return
		}
	}

	if decision.Notify {
		notifyStatusChange(ctx, sellerID, "seller-"+target)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"status": target}, "Seller "+target, nil)
}

// notifyStatusChange emits the (simulated) approval or rejection email for
// the account behind userID. Skipped silently if the user is gone.
func notifyStatusChange(ctx context.Context, userID, templateKind string) {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		log.Printf("notifyStatusChange: no user %s: %v", userID, err)
		return
	}
	go mq.Emit(ctx, templateKind, models.Notification{
		Recipient:    user.Email,
		TemplateKind: templateKind,
	})
}
