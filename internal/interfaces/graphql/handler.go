package graphql

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/auth"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/logger"
)

// request cuerpo estándar de una petición GraphQL por POST.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler expone el esquema por HTTP: POST /graphql ejecuta operaciones,
// GET /graphql sirve el playground.
type Handler struct {
	schema graphql.Schema
	auth   *auth.AuthUseCase
	log    *logger.Logger
}

// NewHandler construye el handler HTTP del esquema.
func NewHandler(schema graphql.Schema, authUC *auth.AuthUseCase, log *logger.Logger) *Handler {
	return &Handler{schema: schema, auth: authUC, log: log}
}

// Serve ejecuta la operación GraphQL del cuerpo de la petición. Los errores
// de dominio viajan en el campo errors de la respuesta, nunca como 5xx.
func (h *Handler) Serve(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "cuerpo inválido: se espera JSON con query"}},
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        h.requestContext(c),
	})

	if len(result.Errors) > 0 {
		h.log.Warn().
			Str("request_id", requestID(c)).
			Str("operation", req.OperationName).
			Str("error", result.Errors[0].Message).
			Msg("operación GraphQL con errores")
	}

	return c.JSON(result)
}

// requestContext verifica el Bearer token y adjunta la identidad al contexto.
// Token ausente o inválido deja la petición anónima; los resolvers que
// requieren identidad fallan con su propio error.
func (h *Handler) requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ctx
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ctx
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return ctx
	}

	identity := h.auth.IdentityFromToken(token)
	if identity == nil {
		h.log.Debug().Str("request_id", requestID(c)).Msg("token inválido o expirado, petición anónima")
		return ctx
	}
	return WithIdentity(ctx, identity)
}

func requestID(c *fiber.Ctx) string {
	v, _ := c.Locals("requestid").(string)
	return v
}

// Playground sirve una página GraphiQL apuntando al endpoint.
func (h *Handler) Playground(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(playgroundHTML)
}

const playgroundHTML = `<!DOCTYPE html>
<html>
  <head>
    <title>CRM GraphQL</title>
    <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
  </head>
  <body style="margin: 0;">
    <div id="graphiql" style="height: 100vh;"></div>
    <script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
    <script>
      ReactDOM.render(
        React.createElement(GraphiQL, {
          fetcher: GraphiQL.createFetcher({ url: '/graphql' }),
        }),
        document.getElementById('graphiql'),
      );
    </script>
  </body>
</html>`
