package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/repository"
	"github.com/jonnattanChoque/CRMGraphQL/pkg/jwt"
)

// tokenTTL vigencia del token de sesión.
const tokenTTL = 24 * time.Hour

// Identity identidad autenticada de la petición, reconstruida desde los
// claims del token. Nil significa petición anónima.
type Identity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// AuthUseCase casos de uso de autenticación: registro, login y verificación
// de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	secret   string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, secret string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, secret: secret}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
// La respuesta no incluye el hash de la contraseña.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           primitive.NewObjectID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y genera un token válido por 24 horas.
// Devuelve ErrUserNotFound si el email no existe y ErrInvalidCredentials
// si la contraseña no coincide.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.secret, user.ID.Hex(), user.Email, user.FirstName, user.LastName, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// IdentityFromToken verifica el token y reconstruye la identidad embebida.
// Un token inválido o expirado produce identidad nil (petición anónima),
// nunca un fallo de la petición.
func (uc *AuthUseCase) IdentityFromToken(token string) *Identity {
	claims, err := jwt.Parse(uc.secret, token)
	if err != nil {
		return nil
	}
	return &Identity{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}
}

// CurrentUser devuelve la identidad de la petición sin tocar la base.
// Devuelve ErrUnauthenticated si la petición es anónima.
func (uc *AuthUseCase) CurrentUser(identity *Identity) (*dto.UserResponse, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return &dto.UserResponse{
		ID:        identity.ID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
