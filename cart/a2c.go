package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"ecogrocer/db"
	"ecogrocer/models"
	"ecogrocer/rdx"
	"ecogrocer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func cacheKey(userID string) string {
	return "eco-grocer-cart:" + userID
}

// loadCart reads the user's cart document. A missing document or store
// failure reads as an empty cart.
func loadCart(ctx context.Context, userID string) models.Cart {
	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&c)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Println("loadCart error:", err)
			// Fall back to the Redis copy when the store is unreachable.
			if cached, cerr := rdx.RdxGet(cacheKey(userID)); cerr == nil && cached != "" {
				var items []models.CartItem
				if json.Unmarshal([]byte(cached), &items) == nil {
					return models.Cart{UserID: userID, Items: items}
				}
			}
		}
		return models.Cart{UserID: userID, Items: []models.CartItem{}}
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return c
}

// saveCart replaces the user's cart document and refreshes the cache copy.
func saveCart(ctx context.Context, c models.Cart) error {
	c.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := db.CartCollection.ReplaceOne(ctx, bson.M{"userid": c.UserID}, c, opts); err != nil {
		return err
	}
	if data, err := json.Marshal(c.Items); err == nil {
		rdx.RdxSet(cacheKey(c.UserID), string(data))
	}
	return nil
}

// GetCart returns all cart items for the user.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c := loadCart(ctx, userID)
	utils.RespondWithJSON(w, http.StatusOK, c.Items)
}

// AddToCart adds one unit of a product snapshot to the user's cart.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if item.ProductID == "" || item.Name == "" || item.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	c := loadCart(ctx, userID)
	c.Items = AddItem(c.Items, item)

	if err := saveCart(ctx, c); err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, c.Items)
}

// UpdateQuantity sets the quantity of one line item. Quantity zero removes
// the line.
func UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity == nil {
		http.Error(w, "Quantity is required", http.StatusBadRequest)
		return
	}

	c := loadCart(ctx, userID)
	c.Items = SetQuantity(c.Items, ps.ByName("productid"), *payload.Quantity)

	if err := saveCart(ctx, c); err != nil {
		log.Println("UpdateQuantity save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c.Items)
}

// RemoveFromCart drops a line item, idempotently.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c := loadCart(ctx, userID)
	c.Items = RemoveItem(c.Items, ps.ByName("productid"))

	if err := saveCart(ctx, c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c.Items)
}

// Checkout turns the current cart into an order. The cart is cleared only
// after the order insert succeeds, so a failure can leave a stale cart but
// never a lost order.
func Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c := loadCart(ctx, userID)
	if len(c.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	order := models.Order{
		OrderID:   "ORD" + strconv.FormatInt(time.Now().UnixNano()%1e6, 10) + utils.GenerateRandomDigitString(4),
		UserID:    userID,
		Items:     c.Items,
		Total:     Total(c.Items),
		Status:    models.OrderPlaced,
		CreatedAt: time.Now(),
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("Checkout InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	// Order exists; clearing the cart is safe to retry.
	if _, err := db.CartCollection.DeleteMany(ctx, bson.M{"userid": userID}); err != nil {
		log.Println("Checkout cart cleanup error:", err)
	}
	rdx.RdxDel(cacheKey(userID))

	utils.RespondWithJSON(w, http.StatusCreated, order)
}
