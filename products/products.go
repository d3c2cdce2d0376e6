package products

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"bamboo/db"
	"bamboo/models"
	"bamboo/rdx"
	"bamboo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProducts returns the whole catalog with dealer names resolved.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cursor, err := db.ProductCollection.Find(r.Context(), bson.M{})
	if err != nil {
		log.Printf("GetProducts find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(r.Context())

	var products []models.Product
	if err := cursor.All(r.Context(), &products); err != nil {
		log.Printf("GetProducts cursor error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	for i := range products {
		products[i].DealerName = resolveDealerName(r.Context(), products[i].DealerID)
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": ps.ByName("id")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	} else if err != nil {
		log.Printf("GetProduct error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	product.DealerName = resolveDealerName(r.Context(), product.DealerID)
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetMyProducts lists the calling dealer's own products.
func GetMyProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dealerID := utils.GetUserIDFromRequest(r)

	cursor, err := db.ProductCollection.Find(r.Context(), bson.M{"dealerId": dealerID})
	if err != nil {
		log.Printf("GetMyProducts find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(r.Context())

	var products []models.Product
	if err := cursor.All(r.Context(), &products); err != nil {
		log.Printf("GetMyProducts cursor error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// resolveDealerName checks the Redis name cache first and falls back to the
// user document. Returns "" when the dealer no longer exists.
func resolveDealerName(ctx context.Context, dealerID string) string {
	if name, err := rdx.RdxGet(fmt.Sprintf("users:%s", dealerID)); err == nil && name != "" {
		return name
	}

	var dealer models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": dealerID}).Decode(&dealer); err != nil {
		return ""
	}

	if err := rdx.RdxSet(fmt.Sprintf("users:%s", dealerID), dealer.Name); err != nil {
		log.Printf("Failed to cache dealer name: %v", err)
	}
	return dealer.Name
}
