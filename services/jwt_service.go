package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an admin token stays valid. The login cookie uses the same max age.
const TokenTTL = 7 * 24 * time.Hour

const tokenIssuer = "maplenest-admin"

// fallbackSecret signs tokens only when InitJWTService was never called,
// which happens in tests. main refuses to start without JWT_SECRET.
const fallbackSecret = "dev-secret-key-change-in-production"

var (
	ErrEmptySecret   = errors.New("jwt secret is empty")
	ErrMissingClaims = errors.New("token is missing adminId or email")
)

// AdminJWTClaims is the payload of an admin token. Subject mirrors AdminID.
type AdminJWTClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and checks HS256 admin tokens.
type JWTService struct {
	secretKey string
	now       func() time.Time
}

var jwtService *JWTService

func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: secretKey, now: time.Now}
}

// InitJWTService installs the process-wide service used by GenerateAdminJWT and VerifyAdminJWT.
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return ErrEmptySecret
	}
	jwtService = NewJWTService(secretKey)
	return nil
}

// GetJWTService returns the process-wide service, falling back to a
// development secret when none was installed.
func GetJWTService() *JWTService {
	if jwtService == nil {
		jwtService = NewJWTService(fallbackSecret)
	}
	return jwtService
}

// GenerateAdminJWT signs a token for the admin, valid from the service clock's now for TokenTTL.
func (j *JWTService) GenerateAdminJWT(adminID, email string) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email are required")
	}

	issuedAt := j.now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// VerifyAdminJWT parses tokenString, rejecting non-HMAC algorithms, a
// foreign issuer, expiry against the service clock, and tokens without an
// admin id or email.
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.signingKey,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse admin token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AdminID == "" || claims.Email == "" {
		return nil, ErrMissingClaims
	}
	return claims, nil
}

func (j *JWTService) signingKey(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func GenerateAdminJWT(adminID, email string) (string, error) {
	return GetJWTService().GenerateAdminJWT(adminID, email)
}

func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	return GetJWTService().VerifyAdminJWT(tokenString)
}
