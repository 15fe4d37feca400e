package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
)

// oid convierte un id hex en ObjectID. Un id mal formado es entrada inválida,
// no un error de almacenamiento.
func oid(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %q: %w", id, domain.ErrInvalidInput)
	}
	return v, nil
}
