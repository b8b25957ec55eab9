// Package auth verifies bearer tokens and carries the authenticated
// principal through request contexts.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/internal/config"
)

// ErrUnauthenticated is returned for missing, malformed, or rejected tokens.
var ErrUnauthenticated = errors.New("auth: unauthenticated")

// Principal is the authenticated caller. ID is opaque and used as the owner
// key for every persisted document.
type Principal struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Verifier turns a bearer token into a Principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens and caches verified principals until
// their expiry.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
	parser   *jwt.Parser
	cache    *lru.Cache[string, *Principal]
	now      func() time.Time
}

const (
	defaultTokenCacheSize = 1024
	clockLeeway           = 30 * time.Second
)

// NewJWTVerifier creates a verifier from auth settings.
func NewJWTVerifier(cfg config.AuthConfig) (*JWTVerifier, error) {
	if cfg.JWTSecret == "" {
		return nil, eris.New("auth: jwt secret is required")
	}
	size := cfg.TokenCacheSize
	if size <= 0 {
		size = defaultTokenCacheSize
	}
	cache, err := lru.New[string, *Principal](size)
	if err != nil {
		return nil, eris.Wrap(err, "auth: token cache")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockLeeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	v := &JWTVerifier{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		cache:    cache,
		now:      time.Now,
	}
	opts = append(opts, jwt.WithTimeFunc(func() time.Time { return v.now() }))
	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// Verify validates token and returns its principal. Cached principals are
// returned without re-checking the signature until they expire.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	key := cacheKey(token)
	if p, ok := v.cache.Get(key); ok {
		if v.now().Before(p.ExpiresAt) {
			return p, nil
		}
		v.cache.Remove(key)
	}

	var c claims
	_, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, eris.Wrapf(ErrUnauthenticated, "auth: verify token: %v", err)
	}
	if c.Subject == "" {
		return nil, eris.Wrap(ErrUnauthenticated, "auth: token has no subject")
	}

	p := &Principal{ID: c.Subject, Email: c.Email, ExpiresAt: c.ExpiresAt.Time}
	v.cache.Add(key, p)
	return p, nil
}

// Issue signs a token for subject. It backs local tooling and tests; the
// production identity provider issues its own tokens with the same secret.
func (v *JWTVerifier) Issue(subject, email string, ttl time.Duration) (string, error) {
	now := v.now()
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if v.audience != "" {
		c.Audience = jwt.ClaimStrings{v.audience}
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
	return signed, eris.Wrap(err, "auth: sign token")
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored by the middleware, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
