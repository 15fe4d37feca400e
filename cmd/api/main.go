package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/auth"
	"github.com/jonnattanChoque/CRMGraphQL/internal/application/usecase"
	"github.com/jonnattanChoque/CRMGraphQL/internal/infrastructure/mongodb"
	gql "github.com/jonnattanChoque/CRMGraphQL/internal/interfaces/graphql"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/config"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret)
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo, productRepo)
	reportUC := usecase.NewReportUseCase(orderRepo)

	schema, err := gql.NewSchema(gql.Deps{
		Auth:     authUC,
		Products: productUC,
		Clients:  clientUC,
		Orders:   orderUC,
		Reports:  reportUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}
	handler := gql.NewHandler(schema, authUC, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Post("/graphql", handler.Serve)
	app.Get("/graphql", handler.Playground)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor GraphQL listo")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
