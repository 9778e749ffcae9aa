package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/events"
	"github.com/kshiteeshhh/qkart-backend/pkg/global"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// AuthService handles registration, login, and access-token verification.
type AuthService struct {
	users         UserStore
	events        EventPublisher
	jwtSecret     []byte
	accessExpiry  time.Duration
	defaultWallet float64
}

func NewAuthService(users UserStore, publisher EventPublisher) *AuthService {
	return &AuthService{
		users:         users,
		events:        publisher,
		jwtSecret:     []byte(global.GetJWTSecret()),
		accessExpiry:  global.GetAccessExpiry(),
		defaultWallet: global.GetDefaultWalletMoney(),
	}
}

type accessTokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	_, found, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.NewInternal("Failed to look up user", err)
	}
	if found {
		return nil, apierror.New(http.StatusConflict, "Email already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.NewInternal("Failed to hash password", err)
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hash),
		Address:     models.DefaultAddress,
		WalletMoney: s.defaultWallet,
	}
	user.SetTimestamps()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apierror.NewInternal("Failed to create user", err)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.PublishUserRegistered(events.UserRegistered{
			Email:        user.Email,
			Name:         user.Name,
			RegisteredAt: user.CreatedAt,
		})
	}

	return &models.AuthResponse{User: user, Tokens: tokens}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, found, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.NewInternal("Failed to look up user", err)
	}
	if !found {
		return nil, apierror.New(http.StatusUnauthorized, "Incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierror.New(http.StatusUnauthorized, "Incorrect email or password")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user, Tokens: tokens}, nil
}

// VerifyAccessToken parses and validates a bearer token and resolves the
// user it was issued to.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims := &accessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Type != "access" {
		return nil, apierror.New(http.StatusUnauthorized, "Please authenticate")
	}

	id, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, apierror.New(http.StatusUnauthorized, "Please authenticate")
	}

	user, found, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewInternal("Failed to look up user", err)
	}
	if !found {
		return nil, apierror.New(http.StatusUnauthorized, "Please authenticate")
	}

	return user, nil
}

func (s *AuthService) issueTokens(user *models.User) (models.AuthTokens, error) {
	now := time.Now()
	expires := now.Add(s.accessExpiry)
	claims := accessTokenClaims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return models.AuthTokens{}, apierror.NewInternal("Failed to sign access token", err)
	}

	return models.AuthTokens{
		Access: models.TokenPayload{Token: signed, Expires: expires},
	}, nil
}
