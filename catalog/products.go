package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"ecogrocer/db"
	"ecogrocer/filemgr"
	"ecogrocer/models"
	"ecogrocer/rdx"
	"ecogrocer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const catalogCacheKey = "catalog:all"

// GetProducts returns the storefront catalog. Supports ?category= exact
// filter and ?sort=asc|desc by price. The unfiltered list is served from
// the Redis cache when warm.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category := r.URL.Query().Get("category")
	priceSort := r.URL.Query().Get("sort")

	products := loadCatalog(ctx)
	utils.RespondWithJSON(w, http.StatusOK, ApplyView(products, category, priceSort))
}

// loadCatalog reads the full product list, preferring the Redis copy.
// Store failures degrade to an empty catalog.
func loadCatalog(ctx context.Context) []models.Product {
	if cached, err := rdx.RdxGet(catalogCacheKey); err == nil && cached != "" {
		var products []models.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products
		}
	}

	products := []models.Product{}
	cursor, err := db.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("loadCatalog Find error:", err)
		return products
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &products); err != nil {
		log.Println("loadCatalog cursor.All error:", err)
		return []models.Product{}
	}

	if data, err := json.Marshal(products); err == nil {
		rdx.SetWithExpiry(catalogCacheKey, string(data), 5*time.Minute)
	}
	return products
}

// GetSellerProducts lists only the acting seller's own products.
func GetSellerProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sellerID := utils.GetUserIDFromRequest(r)
	if sellerID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	products := []models.Product{}
	cursor, err := db.ProductCollection.Find(ctx, bson.M{"sellerid": sellerID})
	if err != nil {
		log.Println("GetSellerProducts Find error:", err)
		utils.RespondWithJSON(w, http.StatusOK, products)
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetSellerProducts cursor.All error:", err)
		products = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func AddProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sellerID := utils.GetUserIDFromRequest(r)
	if sellerID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := ValidateProduct(product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	product.ProductID = "p" + utils.GenerateRandomString(10)
	product.SellerID = sellerID
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("AddProduct InsertOne error:", err)
		http.Error(w, "Failed to add product", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(catalogCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct replaces a product by id, scoped to the owning seller.
// Admins may edit any product.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := ValidateProduct(product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := ownerScopedFilter(r, ps.ByName("productid"), userID)
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"category":    product.Category,
		"price":       product.Price,
		"image":       product.Image,
		"description": product.Description,
		"updated_at":  time.Now(),
	}}

	res, err := db.ProductCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Println("UpdateProduct error:", err)
		http.Error(w, "Update failed", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	rdx.RdxDel(catalogCacheKey)
	utils.SendResponse(w, http.StatusOK, nil, "Product updated", nil)
}

// DeleteProduct removes a product by id. Deleting an absent id is a no-op.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := ownerScopedFilter(r, ps.ByName("productid"), userID)
	if _, err := db.ProductCollection.DeleteOne(ctx, filter); err != nil {
		log.Println("DeleteProduct error:", err)
		http.Error(w, "Delete failed", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(catalogCacheKey)
	utils.SendResponse(w, http.StatusOK, nil, "Product deleted", nil)
}

// ownerScopedFilter restricts mutations to the acting seller's products
// unless the caller is an admin.
func ownerScopedFilter(r *http.Request, productID, userID string) bson.M {
	if utils.GetRoleFromRequest(r) == models.RoleAdmin {
		return bson.M{"productid": productID}
	}
	return bson.M{"productid": productID, "sellerid": userID}
}

// UploadProductImage accepts a multipart image for a product listing and
// returns the stored file path.
func UploadProductImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetUserIDFromRequest(r) == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid form"})
		return
	}

	filename, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityProduct, true)
	if err != nil {
		log.Println("UploadProductImage save error:", err)
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Could not save image"})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "image": filename})
}
