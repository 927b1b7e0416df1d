package accounts

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	kindAccess  = "access"
	kindRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	jwt.RegisteredClaims
	Kind  string `json:"kind"`
	Email string `json:"email,omitempty"`
}

// TokenManager signs and validates HS256 access and refresh tokens.
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issue returns an access token, a refresh token and the access expiry.
func (m *TokenManager) Issue(userID, email string) (access, refresh string, expiresAt time.Time, err error) {
	now := m.now()
	expiresAt = now.Add(m.accessTTL)
	access, err = m.sign(userID, email, kindAccess, now, expiresAt)
	if err != nil {
		return "", "", time.Time{}, err
	}
	refresh, err = m.sign(userID, email, kindRefresh, now, now.Add(m.refreshTTL))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return access, refresh, expiresAt, nil
}

func (m *TokenManager) sign(userID, email, kind string, now, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        randomToken(12),
		},
		Kind:  kind,
		Email: email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// ValidateAccess returns the user id of a valid access token.
func (m *TokenManager) ValidateAccess(token string) (string, error) {
	claims, err := m.parse(token, kindAccess)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (m *TokenManager) validateRefresh(token string) (*tokenClaims, error) {
	return m.parse(token, kindRefresh)
}

func (m *TokenManager) parse(token, kind string) (*tokenClaims, error) {
	if token == "" {
		return nil, errors.Wrap(ErrInvalidToken, "token is empty")
	}
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.Kind != kind || claims.Subject == "" {
		return nil, errors.Wrap(ErrInvalidToken, "unexpected claims")
	}
	return claims, nil
}

// HashToken is how reset tokens are stored.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(errors.Wrap(err, "read random bytes"))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
