package graphql_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	gql "github.com/jonnattanChoque/CRMGraphQL/internal/interfaces/graphql"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/logger"
)

type httpEnv struct {
	app   *fiber.App
	token string
}

func newHTTPEnv(t *testing.T) *httpEnv {
	t.Helper()

	env := newTestEnv(t)
	handler := gql.NewHandler(env.schema, env.auth, logger.New("test", "error"))

	app := fiber.New()
	app.Post("/graphql", handler.Serve)
	app.Get("/graphql", handler.Playground)

	ctx := context.Background()
	_, err := env.auth.Register(ctx, dto.RegisterRequest{
		FirstName: "Marcela",
		LastName:  "Rios",
		Email:     "marcela@crm.test",
		Password:  "supersecreto",
	})
	require.NoError(t, err)
	login, err := env.auth.Login(ctx, dto.LoginRequest{Email: "marcela@crm.test", Password: "supersecreto"})
	require.NoError(t, err)

	return &httpEnv{app: app, token: login.Token}
}

func (e *httpEnv) post(t *testing.T, body, authorization string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func firstErrorMessage(t *testing.T, decoded map[string]interface{}) string {
	t.Helper()
	errs, ok := decoded["errors"].([]interface{})
	require.True(t, ok, "se esperaban errores en la respuesta: %v", decoded)
	require.NotEmpty(t, errs)
	return errs[0].(map[string]interface{})["message"].(string)
}

func TestServeConsultaAnonima(t *testing.T) {
	env := newHTTPEnv(t)

	resp, decoded := env.post(t, `{"query":"{ products { id nombre } }"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decoded["errors"])

	data := decoded["data"].(map[string]interface{})
	assert.Contains(t, data, "products")
}

func TestServeUserSinToken(t *testing.T) {
	env := newHTTPEnv(t)

	resp, decoded := env.post(t, `{"query":"{ user { id email } }"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, firstErrorMessage(t, decoded), "no autenticado")
}

func TestServeUserTokenInvalido(t *testing.T) {
	env := newHTTPEnv(t)

	_, decoded := env.post(t, `{"query":"{ user { id email } }"}`, "Bearer token-corrupto")
	assert.Contains(t, firstErrorMessage(t, decoded), "no autenticado")
}

func TestServeUserConToken(t *testing.T) {
	env := newHTTPEnv(t)

	resp, decoded := env.post(t, `{"query":"{ user { id nombre email } }"}`, "Bearer "+env.token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decoded["errors"])

	user := decoded["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "marcela@crm.test", user["email"])
	assert.Equal(t, "Marcela", user["nombre"])
}

func TestServeCuerpoInvalido(t *testing.T) {
	env := newHTTPEnv(t)

	resp, decoded := env.post(t, `esto no es json`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, firstErrorMessage(t, decoded), "cuerpo inválido")
}

func TestPlayground(t *testing.T) {
	env := newHTTPEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "graphiql")
}
