package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

func newAuthService(users *fakeUserStore) (*AuthService, *fakePublisher) {
	publisher := &fakePublisher{}
	return &AuthService{
		users:         users,
		events:        publisher,
		jwtSecret:     []byte("test-secret"),
		accessExpiry:  time.Hour,
		defaultWallet: 500,
	}, publisher
}

func TestRegisterAppliesDefaults(t *testing.T) {
	users := newFakeUserStore()
	svc, publisher := newAuthService(users)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "crio user",
		Email:    "crio-user@gmail.com",
		Password: "learnbydoing",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user := resp.User
	if user.Address != models.DefaultAddress {
		t.Errorf("address = %q, want %q", user.Address, models.DefaultAddress)
	}
	if user.WalletMoney != 500 {
		t.Errorf("walletMoney = %v, want 500", user.WalletMoney)
	}
	if user.Password == "learnbydoing" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("learnbydoing")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if resp.Tokens.Access.Token == "" {
		t.Error("no access token issued")
	}
	if len(publisher.registered) != 1 {
		t.Errorf("published %d registration events, want 1", len(publisher.registered))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := testUser(models.DefaultAddress, 500)
	svc, _ := newAuthService(newFakeUserStore(existing))

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "someone else",
		Email:    existing.Email,
		Password: "learnbydoing",
	})
	assertAPIError(t, err, http.StatusConflict, "Email already taken")
}

func TestLoginWrongCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("learnbydoing"), bcrypt.MinCost)
	existing := testUser(models.DefaultAddress, 500)
	existing.Password = string(hash)
	svc, _ := newAuthService(newFakeUserStore(existing))

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@gmail.com",
		Password: "learnbydoing",
	})
	assertAPIError(t, err, http.StatusUnauthorized, "Incorrect email or password")

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    existing.Email,
		Password: "wrong-password",
	})
	assertAPIError(t, err, http.StatusUnauthorized, "Incorrect email or password")
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("learnbydoing"), bcrypt.MinCost)
	existing := testUser(models.DefaultAddress, 500)
	existing.Password = string(hash)
	svc, _ := newAuthService(newFakeUserStore(existing))

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    existing.Email,
		Password: "learnbydoing",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	verified, err := svc.VerifyAccessToken(context.Background(), resp.Tokens.Access.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if verified.ID != existing.ID {
		t.Errorf("verified user %s, want %s", verified.ID.Hex(), existing.ID.Hex())
	}
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(newFakeUserStore())

	_, err := svc.VerifyAccessToken(context.Background(), "not-a-token")
	assertAPIError(t, err, http.StatusUnauthorized, "Please authenticate")
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	existing := testUser(models.DefaultAddress, 500)
	svc, _ := newAuthService(newFakeUserStore(existing))
	svc.accessExpiry = -time.Minute

	tokens, err := svc.issueTokens(existing)
	if err != nil {
		t.Fatalf("issueTokens: %v", err)
	}

	_, err = svc.VerifyAccessToken(context.Background(), tokens.Access.Token)
	assertAPIError(t, err, http.StatusUnauthorized, "Please authenticate")
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	existing := testUser(models.DefaultAddress, 500)
	issuer, _ := newAuthService(newFakeUserStore(existing))
	verifier, _ := newAuthService(newFakeUserStore(existing))
	verifier.jwtSecret = []byte("other-secret")

	tokens, err := issuer.issueTokens(existing)
	if err != nil {
		t.Fatalf("issueTokens: %v", err)
	}

	_, err = verifier.VerifyAccessToken(context.Background(), tokens.Access.Token)
	assertAPIError(t, err, http.StatusUnauthorized, "Please authenticate")
}

func TestVerifyAccessTokenRejectsNonAccessType(t *testing.T) {
	existing := testUser(models.DefaultAddress, 500)
	svc, _ := newAuthService(newFakeUserStore(existing))

	claims := accessTokenClaims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   existing.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.jwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.VerifyAccessToken(context.Background(), signed)
	assertAPIError(t, err, http.StatusUnauthorized, "Please authenticate")
}

func TestVerifyAccessTokenUnknownUser(t *testing.T) {
	ghost := testUser(models.DefaultAddress, 500)
	svc, _ := newAuthService(newFakeUserStore())

	tokens, err := svc.issueTokens(ghost)
	if err != nil {
		t.Fatalf("issueTokens: %v", err)
	}

	_, err = svc.VerifyAccessToken(context.Background(), tokens.Access.Token)
	assertAPIError(t, err, http.StatusUnauthorized, "Please authenticate")
}
