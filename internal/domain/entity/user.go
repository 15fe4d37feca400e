package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User representa un vendedor del sistema. Las claves BSON conservan el
// esquema original de la colección usuarios.
// PasswordHash nunca sale del dominio hacia respuestas de la API.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"nombre"`
	LastName     string             `bson:"apellido"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"creado"`
}
