package orders

import (
	"context"
	"encoding/json"
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

var orderStatuses = map[string]bool{
	models.OrderPlaced:    true,
	models.OrderInTransit: true,
	models.OrderDelivered: true,
}

// GetMyOrders lists the acting user's orders, newest first.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	respondWithOrders(ctx, w, bson.M{"userid": userID})
}

// GetAllOrders is the admin view over every order.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	respondWithOrders(ctx, w, bson.M{})
}

func respondWithOrders(ctx context.Context, w http.ResponseWriter, filter bson.M) {
	orders := []models.Order{}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.OrderCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		utils.RespondWithJSON(w, http.StatusOK, orders)
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		orders = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder returns a single order. Only the owner or an admin may read it.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, ok := findOrderFor(ctx, ps.ByName("orderid"), userID, utils.GetRoleFromRequest(r))
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func findOrderFor(ctx context.Context, orderID, userID, role string) (models.Order, bool) {
	filter := bson.M{"orderid": orderID}
	if role != models.RoleAdmin {
		filter["userid"] = userID
	}

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, filter).Decode(&order); err != nil {
		return models.Order{}, false
	}
	return order, true
}

// UpdateOrderStatus moves an order along placed -> in-transit -> delivered.
// Open to admins and delivery partners.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !orderStatuses[payload.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	res, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderid": ps.ByName("orderid")},
		bson.M{"$set": bson.M{"status": payload.Status}},
	)
	if err != nil {
		log.Println("UpdateOrderStatus error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if payload.Status == models.OrderDelivered {
		var order models.Order
		if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("orderid")}).Decode(&order); err == nil {
			var user models.User
			if err := db.UserCollection.FindOne(ctx, bson.M{"userid": order.UserID}).Decode(&user); err == nil {
				go mq.Emit(ctx, "order-delivered", models.Notification{
					Recipient:    user.Email,
					TemplateKind: "order-delivered",
				})
			}
		}
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"status": payload.Status}, "Order updated", nil)
}
