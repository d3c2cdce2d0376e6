package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"bamboo/db"
	"bamboo/models"
	"bamboo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MergeItem adds one unit of productID to the cart: bumps the quantity of an
// existing entry or appends a fresh {productID, 1}. One entry per product.
func MergeItem(cart []models.CartItem, productID string) []models.CartItem {
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity++
			return cart
		}
	}
	return append(cart, models.CartItem{ProductID: productID, Quantity: 1})
}

// RemoveItem filters the entry for productID out of the cart.
func RemoveItem(cart []models.CartItem, productID string) []models.CartItem {
	out := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

type addInput struct {
	ProductID string `json:"productId"`
}

// AddToCart reads the caller's whole cart, merges the item in and writes the
// whole cart back. Two tabs racing here means the last writer wins.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input addInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": input.ProductID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	} else if err != nil {
		log.Printf("AddToCart product lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user, ok := loadUser(w, r, userID)
	if !ok {
		return
	}

	updated := MergeItem(user.Cart, input.ProductID)
	if !writeCart(w, userID, updated) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cart": updated})
}

// RemoveFromCart drops the product's entry and writes the whole cart back.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	productID := ps.ByName("productId")

	user, ok := loadUser(w, r, userID)
	if !ok {
		return
	}

	updated := RemoveItem(user.Cart, productID)
	if !writeCart(w, userID, updated) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cart": updated})
}

// CartLine is a cart entry with its product resolved for display.
type CartLine struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   *models.Product `json:"product,omitempty"`
}

// GetCart returns the caller's cart with product details and a running total
// computed from current prices.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	user, ok := loadUser(w, r, userID)
	if !ok {
		return
	}

	lines := make([]CartLine, 0, len(user.Cart))
	var total float64
	for _, item := range user.Cart {
		line := CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
		var product models.Product
		if err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": item.ProductID}).Decode(&product); err == nil {
			line.Product = &product
			total += product.Price * float64(item.Quantity)
		}
		lines = append(lines, line)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": lines, "total": total})
}

func loadUser(w http.ResponseWriter, r *http.Request, userID string) (models.User, bool) {
	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return user, false
	} else if err != nil {
		log.Printf("Cart user lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return user, false
	}
	return user, true
}

func writeCart(w http.ResponseWriter, userID string, cart []models.CartItem) bool {
	_, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"cart": cart}},
	)
	if err != nil {
		log.Printf("Cart write error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return false
	}
	return true
}
