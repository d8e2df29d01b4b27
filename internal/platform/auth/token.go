package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTypeAccess marks short-lived tokens accepted by protected endpoints.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens accepted only by the refresh endpoint.
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT claim set carried by both access and refresh tokens.
// Subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
}

// TokenPair is the response payload of a successful login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenService issues and verifies the service's own HS256 bearer tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair signs a fresh access/refresh token pair for the given user.
func (s *TokenService) IssuePair(userID uuid.UUID, username string) (*TokenPair, error) {
	access, err := s.sign(userID, username, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, username, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh verifies a refresh token and issues a new access token for the
// same user. Access tokens are rejected here so a leaked short-lived token
// cannot be used to mint new credentials.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("invalid subject claim: %w", err)
	}
	return s.sign(userID, claims.Username, TokenTypeAccess, s.accessTTL)
}

// Verify parses the token, checks signature and expiry, and enforces the
// expected token type.
func (s *TokenService) Verify(tokenStr, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}
	return claims, nil
}

func (s *TokenService) sign(userID uuid.UUID, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username:  username,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
