package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client representa un cliente de un vendedor. Seller (vendedor) se estampa
// al crearlo y gobierna todo el control de acceso posterior.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"nombre"`
	LastName  string             `bson:"apellido"`
	Company   string             `bson:"empresa"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"telefono,omitempty"`
	Seller    primitive.ObjectID `bson:"vendedor"`
	CreatedAt time.Time          `bson:"creado"`
}
