package orders

import (
	"context"
	"errors"
	"log"

	"bamboo/db"
	"bamboo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ValidateCheckoutItems rejects malformed checkout input before any write.
// Quantities are fixed at checkout time; prices are not snapshotted.
func ValidateCheckoutItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return errors.New("Cart is empty")
	}
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			return errors.New("Invalid product format in cart")
		}
	}
	return nil
}

// DealerOwnsAny reports whether any populated line item belongs to the given
// dealer. Lines whose product has been deleted are skipped.
func DealerOwnsAny(lines []models.OrderLine, dealerID string) bool {
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		if line.Product.DealerID == dealerID {
			return true
		}
	}
	return false
}

// OrderTotal sums quantity times the live product price. Deleted products
// contribute nothing.
func OrderTotal(lines []models.OrderLine) float64 {
	var total float64
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

func dealerIDs(lines []models.OrderLine) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, line := range lines {
		if line.Product == nil || seen[line.Product.DealerID] {
			continue
		}
		seen[line.Product.DealerID] = true
		ids = append(ids, line.Product.DealerID)
	}
	return ids
}

// populateOrder resolves an order's product references and, when withBuyer is
// set, the buying user, mirroring a mongoose populate. Prices shown are the
// products' current prices, not what they were at checkout.
func populateOrder(ctx context.Context, order models.Order, withBuyer bool) models.OrderView {
	view := models.OrderView{
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		Items:     make([]models.OrderLine, 0, len(order.Items)),
	}

	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}

	byID := make(map[string]*models.Product)
	cursor, err := db.ProductCollection.Find(ctx, bson.M{"productId": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("populateOrder product find error: %v", err)
	} else {
		defer cursor.Close(ctx)
		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			log.Printf("populateOrder cursor error: %v", err)
		}
		for i := range products {
			byID[products[i].ProductID] = &products[i]
		}
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, models.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   byID[item.ProductID],
		})
	}
	view.Total = OrderTotal(view.Items)

	if withBuyer {
		var buyer models.User
		if err := db.UserCollection.FindOne(ctx, bson.M{"userid": order.UserID}).Decode(&buyer); err == nil {
			view.Buyer = buyer.Summary()
		}
	}

	return view
}
