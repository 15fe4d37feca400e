// seed carga datos de demostración en la base: dos vendedores, un catálogo
// pequeño de productos y un cliente por vendedor. Pensado para desarrollo
// local; los emails duplicados se reportan y se omiten.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/auth"
	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	"github.com/jonnattanChoque/CRMGraphQL/internal/application/usecase"
	"github.com/jonnattanChoque/CRMGraphQL/internal/infrastructure/mongodb"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/config"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(cfg.App.Env, "info")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	clientRepo := mongodb.NewClientRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret)
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)

	sellers := []dto.RegisterRequest{
		{FirstName: "Laura", LastName: "Mejía", Email: "laura@demo.local", Password: "laura123"},
		{FirstName: "Andrés", LastName: "Rojas", Email: "andres@demo.local", Password: "andres123"},
	}
	sellerIDs := make([]string, 0, len(sellers))
	for _, s := range sellers {
		u, err := authUC.Register(ctx, s)
		if err != nil {
			log.Warn().Err(err).Str("email", s.Email).Msg("vendedor omitido")
			continue
		}
		sellerIDs = append(sellerIDs, u.ID)
		log.Info().Str("email", u.Email).Msg("vendedor creado")
	}

	products := []dto.CreateProductRequest{
		{Name: "Monitor 24 pulgadas", Description: "Monitor FHD para oficina", Stock: 15, Price: 550000},
		{Name: "Teclado mecánico", Description: "Switches rojos, distribución latinoamericana", Stock: 40, Price: 180000},
		{Name: "Mouse inalámbrico", Description: "Sensor óptico, USB-C", Stock: 60, Price: 75000},
		{Name: "Base refrigerante", Description: "Para portátiles de hasta 17 pulgadas", Stock: 25, Price: 95000},
	}
	for _, p := range products {
		if _, err := productUC.Create(ctx, p); err != nil {
			log.Warn().Err(err).Str("nombre", p.Name).Msg("producto omitido")
			continue
		}
		log.Info().Str("nombre", p.Name).Msg("producto creado")
	}

	clients := []dto.CreateClientRequest{
		{FirstName: "Carolina", LastName: "Duarte", Company: "Papelería El Punto", Email: "carolina@elpunto.co", Phone: "3001112233"},
		{FirstName: "Mauricio", LastName: "Pardo", Company: "Ferretería La 70", Email: "mauricio@la70.co", Phone: "3014455667"},
	}
	for i, c := range clients {
		if i >= len(sellerIDs) {
			break
		}
		if _, err := clientUC.Create(ctx, sellerIDs[i], c); err != nil {
			log.Warn().Err(err).Str("email", c.Email).Msg("cliente omitido")
			continue
		}
		log.Info().Str("email", c.Email).Msg("cliente creado")
	}

	log.Info().Msg("seed finalizado")
}
