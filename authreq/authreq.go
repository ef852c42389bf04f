// Package authreq gives the RequireAdditionalAuth policy decision's "kind"
// field a concrete, verifiable shape: a signed step-up token, rather than
// a bare string tag. Grounded on the teacher's ingesters/HttpIngester
// bearer-token handling, adapted to JWT step-up challenges via
// golang-jwt/jwt/v5.
package authreq

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind names the category of additional authentication a policy is
// requesting, e.g. "mfa", "reauth".
type Kind string

const (
	KindMFA    Kind = "mfa"
	KindReauth Kind = "reauth"
)

// Claims is the payload of a step-up token: the principal it was issued
// for and the Kind of challenge it satisfies.
type Claims struct {
	jwt.RegisteredClaims
	Principal string `json:"principal"`
	Kind      Kind   `json:"kind"`
}

var errWrongPrincipal = errors.New("step-up token issued for a different principal")
var errWrongKind = errors.New("step-up token does not satisfy the requested kind")

// Issuer signs and validates step-up tokens with a shared secret. Intended
// for short-lived, in-process step-up challenges, not cross-host auth.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. ttl defaults to five minutes if zero.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue mints a signed step-up token for principal satisfying kind.
func (i *Issuer) Issue(principal string, kind Kind) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Principal: principal,
		Kind:      kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks tokenString is well-formed, unexpired, and satisfies kind
// for principal.
func (i *Issuer) Verify(tokenString, principal string, kind Kind) error {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return errors.New("invalid step-up token")
	}
	if claims.Principal != principal {
		return errWrongPrincipal
	}
	if claims.Kind != kind {
		return errWrongKind
	}
	return nil
}
