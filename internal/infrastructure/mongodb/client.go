package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jonnattanChoque/CRMGraphQL/pkg/config"
)

// Nombres de las colecciones (esquema original de la aplicación).
const (
	colUsers    = "usuarios"
	colProducts = "productos"
	colClients  = "clientes"
	colOrders   = "pedidos"
)

// Connect abre la conexión a MongoDB, verifica con ping y devuelve el handle
// de la base. El ciclo de vida es explícito: el llamador cierra con
// db.Client().Disconnect al apagar.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return client.Database(cfg.DBName), nil
}

// EnsureIndexes crea los índices que requiere la aplicación:
// email único en usuarios y clientes, índice de texto en productos
// (respaldando la búsqueda por relevancia de searchProduct).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice email usuarios: %w", err)
	}

	_, err = db.Collection(colClients).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice email clientes: %w", err)
	}

	_, err = db.Collection(colProducts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "nombre", Value: "text"},
			{Key: "descripcion", Value: "text"},
		},
	})
	if err != nil {
		return fmt.Errorf("índice de texto productos: %w", err)
	}

	return nil
}
