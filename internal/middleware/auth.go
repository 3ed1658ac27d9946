// Package middleware holds HTTP middleware shared by the API server.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// Sentinel errors for token handling
var (
	ErrMissingToken = errors.New(ErrMsgMissingToken)
	ErrInvalidToken = errors.New(ErrMsgInvalidToken)
)

// Claims are the JWT claims carried by API tokens. The subject is the decimal
// user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type callerKey struct{}

// WithCaller stores caller in ctx
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored by Authenticator.Middleware
func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	return caller, ok
}

// Authenticator issues and verifies HS256 tokens
type Authenticator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator creates an Authenticator for the shared secret
func NewAuthenticator(secret, issuer string, ttl time.Duration) (*Authenticator, error) {
	if len(secret) < MinSecretLength {
		return nil, errors.New(ErrMsgSecretTooShort)
	}
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue mints a token for caller
func (a *Authenticator) Issue(caller domain.Caller) (string, error) {
	now := a.now()
	claims := Claims{
		Role: string(caller.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(caller.UserID, 10),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf(ErrMsgSignTokenFailed, err)
	}
	return signed, nil
}

// Parse verifies token and returns the caller it names
func (a *Authenticator) Parse(token string) (domain.Caller, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(ErrMsgUnexpectedMethod, t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("%w: %s", ErrInvalidToken, ErrMsgInvalidSubject)
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Caller{}, fmt.Errorf("%w: %s", ErrInvalidToken, ErrMsgInvalidRole)
	}
	return domain.Caller{Role: role, UserID: userID}, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller in the request context
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := a.callerFromRequest(r)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgAuthRejected, "path", r.URL.Path, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer realm="vespr"`)
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

func (a *Authenticator) callerFromRequest(r *http.Request) (domain.Caller, error) {
	header := r.Header.Get(HeaderAuthorization)
	if !strings.HasPrefix(header, BearerPrefix) {
		return domain.Caller{}, ErrMissingToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	if token == "" {
		return domain.Caller{}, ErrMissingToken
	}
	return a.Parse(token)
}
