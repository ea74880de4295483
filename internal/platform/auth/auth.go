// Package auth issues and verifies the HS256 bearer tokens of the API
package auth

import (
	"errors"
	"slices"
	"time"

	"storefront/internal/platform/config"
	perr "storefront/internal/platform/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Roles known to the API
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// MinSecretLen is the shortest HMAC secret accepted (256 bits)
const MinSecretLen = 32

// ErrWeakSecret is returned by New for secrets shorter than MinSecretLen
var ErrWeakSecret = errors.New("auth: secret must be at least 32 bytes")

// Claims is the token payload; sub carries the user id
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Options configures token issuing and verification
type Options struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Leeway time.Duration
}

// FromConfig reads AUTH_SECRET (required), AUTH_ISSUER, AUTH_TOKEN_TTL and AUTH_LEEWAY
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("AUTH_")
	return Options{
		Secret: []byte(c.MustString("SECRET")),
		Issuer: c.MayString("ISSUER", "storefront"),
		TTL:    c.MayDuration("TOKEN_TTL", time.Hour),
		Leeway: c.MayDuration("LEEWAY", 30*time.Second),
	}
}

// Token is the body returned by the token endpoint
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Tokens signs and verifies tokens; safe for concurrent use
type Tokens struct {
	opts Options
	now  func() time.Time
}

// New validates opts and returns a Tokens
func New(opts Options) (*Tokens, error) {
	if len(opts.Secret) < MinSecretLen {
		return nil, ErrWeakSecret
	}
	if opts.Issuer == "" {
		opts.Issuer = "storefront"
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	return &Tokens{opts: opts, now: time.Now}, nil
}

// Issue signs a token for the user
func (t *Tokens) Issue(userID, email string, roles []string) (Token, error) {
	now := t.now()
	claims := Claims{
		Email: email,
		Roles: slices.Clone(roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.opts.TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.opts.Secret)
	if err != nil {
		return Token{}, perr.Wrap(err, perr.ErrorCodeUnknown, "sign token")
	}
	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(t.opts.TTL / time.Second),
	}, nil
}

// Parse verifies signature, algorithm, issuer and expiry and returns the claims
func (t *Tokens) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.opts.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.opts.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(t.opts.Leeway),
		jwt.WithTimeFunc(t.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, perr.Wrap(err, perr.ErrorCodeUnauthorized, "token expired")
	default:
		return nil, perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid token")
	}
	if claims.Subject == "" {
		return nil, perr.Unauthorizedf("invalid token")
	}
	return claims, nil
}

// Verify implements the bearer middleware port
func (t *Tokens) Verify(token string) (string, []string, error) {
	c, err := t.Parse(token)
	if err != nil {
		return "", nil, err
	}
	return c.Subject, c.Roles, nil
}
