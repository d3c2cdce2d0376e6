package products

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"bamboo/db"
	"bamboo/models"
	"bamboo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateProduct creates a product owned by the calling dealer. Multipart form
// with name, price, stock, optional description, category and image file.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dealerID := utils.GetUserIDFromRequest(r)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	name := r.FormValue("name")
	if len(name) == 0 || len(name) > 100 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name must be between 1 and 100 characters")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price value. Must be a non-negative number")
		return
	}

	stock, err := strconv.Atoi(r.FormValue("stock"))
	if err != nil || stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid stock value. Must be a non-negative integer")
		return
	}

	product := models.Product{
		ProductID:   "p" + utils.GenerateID(14),
		Name:        name,
		Description: r.FormValue("description"),
		Price:       price,
		Stock:       stock,
		Category:    r.FormValue("category"),
		DealerID:    dealerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	image, err := saveProductImage(r, product.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	product.Image = image

	if _, err := db.ProductCollection.InsertOne(context.TODO(), product); err != nil {
		log.Printf("CreateProduct insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// EditProduct updates a product the calling dealer owns. Ownership is fixed:
// dealerId is never overwritten.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealerID := utils.GetUserIDFromRequest(r)
	productID := ps.ByName("id")

	product, ok := loadOwnedProduct(w, r, productID, dealerID)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	update := bson.M{"updatedAt": time.Now()}

	if name := r.FormValue("name"); name != "" {
		if len(name) > 100 {
			utils.RespondWithError(w, http.StatusBadRequest, "Name must be between 1 and 100 characters")
			return
		}
		update["name"] = name
	}
	if desc := r.FormValue("description"); desc != "" {
		update["description"] = desc
	}
	if category := r.FormValue("category"); category != "" {
		update["category"] = category
	}
	if priceStr := r.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid price value. Must be a non-negative number")
			return
		}
		update["price"] = price
	}
	if stockStr := r.FormValue("stock"); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid stock value. Must be a non-negative integer")
			return
		}
		update["stock"] = stock
	}

	image, err := saveProductImage(r, product.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if image != "" {
		update["image"] = image
	}

	if _, err := db.ProductCollection.UpdateOne(
		context.TODO(),
		bson.M{"productId": productID},
		bson.M{"$set": update},
	); err != nil {
		log.Printf("EditProduct update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	var updated models.Product
	if err := db.ProductCollection.FindOne(context.TODO(), bson.M{"productId": productID}).Decode(&updated); err != nil {
		log.Printf("EditProduct reload error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteProduct removes a product the calling dealer owns.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealerID := utils.GetUserIDFromRequest(r)
	productID := ps.ByName("id")

	if _, ok := loadOwnedProduct(w, r, productID, dealerID); !ok {
		return
	}

	if _, err := db.ProductCollection.DeleteOne(context.TODO(), bson.M{"productId": productID}); err != nil {
		log.Printf("DeleteProduct error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "Product deleted"})
}

// loadOwnedProduct fetches a product and enforces dealer ownership, writing
// the error response itself when the check fails.
func loadOwnedProduct(w http.ResponseWriter, r *http.Request, productID, dealerID string) (models.Product, bool) {
	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": productID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return product, false
	} else if err != nil {
		log.Printf("Product lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return product, false
	}

	if product.DealerID != dealerID {
		utils.RespondWithError(w, http.StatusForbidden, "Access denied")
		return product, false
	}
	return product, true
}
