package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/henrymaxel/platform-mvp-sub000/internal/api/shared/errors"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	USER_ID_KEY    contextKey = "user_id"
	JWT_CLAIMS_KEY contextKey = "jwt_claims"

	// SWEEP_SECRET_HEADER carries the shared secret of the sweep trigger
	SWEEP_SECRET_HEADER = "X-Sweep-Secret"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	SweepSecret  string
}

// Authenticator validates bearer tokens against a parsed RSA public key
type Authenticator struct {
	publicKey *rsa.PublicKey
}

// NewAuthenticator parses the configured public key. An empty key rejects every token.
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	if cfg.JWTPublicKey == "" {
		return &Authenticator{}, nil
	}
	publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}
	return &Authenticator{publicKey: publicKey}, nil
}

// Authenticate validates the Authorization header and returns the user and claims
func (a *Authenticator) Authenticate(authHeader string) (uuid.UUID, *jwt.RegisteredClaims, error) {
	if authHeader == "" {
		return uuid.Nil, nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return uuid.Nil, nil, errors.New("invalid Authorization header format")
	}

	claims, err := a.validateJWT(strings.TrimSpace(parts[1]))
	if err != nil {
		return uuid.Nil, nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("token subject is not a user id: %w", err)
	}
	return userID, claims, nil
}

// Auth returns a gin middleware that requires a valid user token
func Auth(authenticator *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, claims, err := authenticator.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(string(USER_ID_KEY), userID)
		c.Set(string(JWT_CLAIMS_KEY), claims)
		c.Next()
	}
}

// UserID returns the authenticated user set by Auth
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(string(USER_ID_KEY))
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// SweepSecret returns a gin middleware that requires the shared sweep secret.
// An unset secret disables the endpoint.
func SweepSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(SWEEP_SECRET_HEADER)
		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			logger.WarnCtx(c.Request.Context(), "Sweep trigger rejected",
				zap.String("client_ip", c.ClientIP()),
				zap.Bool("header_present", provided != ""),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Invalid sweep secret"))
			return
		}
		c.Next()
	}
}

// validateJWT validates an RS256 token and returns its claims
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// PKIX first, then PKCS1
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
