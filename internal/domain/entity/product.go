package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto vendible. Stock (existencia) se decrementa
// como efecto de crear o actualizar pedidos.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"nombre"`
	Description string             `bson:"descripcion,omitempty"`
	Stock       int                `bson:"existencia"`
	Price       float64            `bson:"precio"`
	CreatedAt   time.Time          `bson:"creado"`
}
