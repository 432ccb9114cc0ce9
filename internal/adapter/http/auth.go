package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

var errNoTokens = errors.New("session tokens are disabled")

// sessionClaims is the payload of a session token. The subject is the
// authenticated account.
type sessionClaims struct {
	ChainID int64 `json:"chainId,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns nil when secret is empty.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if secret == "" {
		return nil
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for s.
func (t *TokenIssuer) Issue(s *domain.Session) (string, error) {
	now := t.now()
	claims := sessionClaims{
		ChainID: s.ChainID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.Account,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Account verifies token and returns the account it was issued for.
func (t *TokenIssuer) Account(token string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// handleAuth recovers the address that signed message. A session token is
// included when tokens are enabled.
func (h *Handler) handleAuth(w http.ResponseWriter, r *http.Request) {
	var body authRequest
	if err := decodeJSON(w, r, &body); err != nil {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	session, err := h.svc.Authenticate(r.Context(), body.Message, body.Signature)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := envelope{"address": session.Account}
	if h.opts.Tokens != nil {
		token, err := h.opts.Tokens.Issue(session)
		if err != nil {
			h.writeError(w, r, domain.NewUnknownError(err))
			return
		}
		resp["token"] = token
	}
	h.writeOK(w, resp)
}

// bearerAccount returns the account of the request's session token. No
// header means no account.
func (h *Handler) bearerAccount(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", nil
	}
	if h.opts.Tokens == nil {
		return "", errNoTokens
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", errors.New("authorization header is not a bearer token")
	}
	return h.opts.Tokens.Account(strings.TrimSpace(token))
}
