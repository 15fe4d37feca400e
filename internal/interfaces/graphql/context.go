package graphql

import (
	"context"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/auth"
)

type ctxKey int

const identityKey ctxKey = iota

// WithIdentity adjunta la identidad autenticada al contexto de la petición.
// Una identidad nil deja la petición anónima.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom devuelve la identidad de la petición, o nil si es anónima.
func IdentityFrom(ctx context.Context) *auth.Identity {
	v, _ := ctx.Value(identityKey).(*auth.Identity)
	return v
}

// sellerID devuelve el id del vendedor autenticado, o "" si la petición es anónima.
func sellerID(ctx context.Context) string {
	if identity := IdentityFrom(ctx); identity != nil {
		return identity.ID
	}
	return ""
}
