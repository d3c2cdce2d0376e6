package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bamboo/db"
	"bamboo/models"
	"bamboo/rdx"
	"bamboo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers returns every user, password excluded.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := db.UserCollection.Find(r.Context(), bson.M{}, opts)
	if err != nil {
		log.Printf("GetUsers find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(r.Context())

	var users []models.User
	if err := cursor.All(r.Context(), &users); err != nil {
		log.Printf("GetUsers cursor error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// DeleteUser removes a user record entirely, cart included.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("id")

	res, err := db.UserCollection.DeleteOne(context.TODO(), bson.M{"userid": userID})
	if err != nil {
		log.Printf("DeleteUser error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := rdx.RdxDel("users:" + userID); err != nil {
		log.Printf("Failed to drop cached name for %s: %v", userID, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"msg": "User deleted"})
}

const analyticsCacheKey = "analytics:totals"

type analyticsTotals struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
}

// GetAnalytics returns collection totals, cached in Redis for a minute so the
// dashboard poll doesn't hammer Mongo.
func GetAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(analyticsCacheKey); err == nil && cached != "" {
		var totals analyticsTotals
		if err := json.Unmarshal([]byte(cached), &totals); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, totals)
			return
		}
	}

	var totals analyticsTotals
	var err error
	if totals.TotalUsers, err = db.UserCollection.CountDocuments(r.Context(), bson.M{}); err != nil {
		log.Printf("Analytics user count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if totals.TotalProducts, err = db.ProductCollection.CountDocuments(r.Context(), bson.M{}); err != nil {
		log.Printf("Analytics product count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if totals.TotalOrders, err = db.OrderCollection.CountDocuments(r.Context(), bson.M{}); err != nil {
		log.Printf("Analytics order count error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if data, err := json.Marshal(totals); err == nil {
		if err := rdx.SetWithExpiry(analyticsCacheKey, string(data), time.Minute); err != nil {
			log.Printf("Failed to cache analytics totals: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, totals)
}
