package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens issued by the portal's identity provider
// and exposes the acting user's claims. This service never issues tokens.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ActorFromContext(ctx context.Context) (Actor, error)
}

// Actor identifies the authenticated user behind a request. Recorded as
// archived_by on archive moves and decided_by on approval decisions.
type Actor struct {
	UserID string
	Name   string
	Role   string
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, err
	}

	actor := Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		actor.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = v
	}
	return actor, nil
}
