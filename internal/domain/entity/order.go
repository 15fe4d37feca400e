package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados válidos de un pedido.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusInProgress = "IN-PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
)

// ValidOrderStatus indica si s es uno de los estados conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

// OrderItem es una línea del pedido: producto y cantidad solicitada.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"id"`
	Quantity  int                `bson:"cantidad"`
}

// Order representa un pedido de un cliente, propiedad de un vendedor.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Items     []OrderItem        `bson:"pedido"`
	Total     float64            `bson:"total"`
	Client    primitive.ObjectID `bson:"cliente"`
	Seller    primitive.ObjectID `bson:"vendedor"`
	Status    string             `bson:"estado"`
	CreatedAt time.Time          `bson:"creado"`
}
