package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bamboo/db"
	"bamboo/models"
	"bamboo/mq"
	"bamboo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type checkoutInput struct {
	Products []models.OrderItem `json:"products"`
}

// Checkout converts the submitted items (typically the caller's cart) into a
// Pending order, then empties the caller's cart. The two writes are separate;
// a failure after the insert leaves the order in place and the cart untouched.
func Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input checkoutInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := ValidateCheckoutItems(input.Products); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order := models.Order{
		OrderID:   utils.GetUUID(),
		UserID:    userID,
		Items:     input.Products,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	if _, err := db.OrderCollection.InsertOne(context.TODO(), order); err != nil {
		log.Printf("Checkout insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	res, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"cart": []models.CartItem{}}},
	)
	if err != nil {
		log.Printf("Checkout cart-clear error for order %s: %v", order.OrderID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	view := populateOrder(r.Context(), order, false)

	go mq.Emit(context.Background(), mq.OrderEvent{
		Event:     "order-created",
		OrderID:   order.OrderID,
		UserID:    userID,
		DealerIDs: dealerIDs(view.Items),
		Status:    order.Status,
	})

	utils.RespondWithJSON(w, http.StatusOK, view)
}

// GetUserOrders lists the caller's own orders, newest first.
func GetUserOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	cursor, err := db.OrderCollection.Find(r.Context(), bson.M{"userId": userID})
	if err != nil {
		log.Printf("GetUserOrders find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(r.Context())

	var orders []models.Order
	if err := cursor.All(r.Context(), &orders); err != nil {
		log.Printf("GetUserOrders cursor error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, populateOrder(r.Context(), order, false))
	}
	utils.RespondWithJSON(w, http.StatusOK, views)
}

// GetMyOrders lists every order containing at least one product owned by the
// calling dealer. Ownership is re-derived from the populated line items on
// every call rather than cached on the order.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dealerID := utils.GetUserIDFromRequest(r)

	cursor, err := db.OrderCollection.Find(r.Context(), bson.M{})
	if err != nil {
		log.Printf("GetMyOrders find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(r.Context())

	var orders []models.Order
	if err := cursor.All(r.Context(), &orders); err != nil {
		log.Printf("GetMyOrders cursor error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	views := make([]models.OrderView, 0)
	for _, order := range orders {
		view := populateOrder(r.Context(), order, true)
		if DealerOwnsAny(view.Items, dealerID) {
			views = append(views, view)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, views)
}

type statusInput struct {
	Status string `json:"status"`
}

// UpdateOrderStatus overwrites an order's status. Any enum value may replace
// any other; no history is kept. The calling dealer must own at least one
// line item of the order.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealerID := utils.GetUserIDFromRequest(r)
	orderID := ps.ByName("id")

	var input statusInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(r.Context(), bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		log.Printf("UpdateOrderStatus lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	view := populateOrder(r.Context(), order, false)
	if !DealerOwnsAny(view.Items, dealerID) {
		utils.RespondWithError(w, http.StatusForbidden, "Access denied")
		return
	}

	if !models.ValidOrderStatus(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	if _, err := db.OrderCollection.UpdateOne(
		context.TODO(),
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": input.Status}},
	); err != nil {
		log.Printf("UpdateOrderStatus update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	order.Status = input.Status
	view.Status = input.Status

	go mq.Emit(context.Background(), mq.OrderEvent{
		Event:     "order-status-changed",
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		DealerIDs: dealerIDs(view.Items),
		Status:    input.Status,
	})

	utils.RespondWithJSON(w, http.StatusOK, view)
}
