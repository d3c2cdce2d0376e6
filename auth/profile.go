package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"bamboo/db"
	"bamboo/models"
	"bamboo/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func getMeHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		log.Printf("Get me error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if user.Cart == nil {
		user.Cart = []models.CartItem{}
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

type updateMeInput struct {
	Cart []models.CartItem `json:"cart"`
}

// updateMeHandler replaces the caller's cart wholesale. Two concurrent
// replacements race and the last writer wins.
func updateMeHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)

	var input updateMeInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Cart == nil {
		input.Cart = []models.CartItem{}
	}
	for _, item := range input.Cart {
		if item.ProductID == "" || item.Quantity < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid cart item")
			return
		}
	}

	res, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"cart": input.Cart}},
	)
	if err != nil {
		log.Printf("Update me error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		log.Printf("Update me reload error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
