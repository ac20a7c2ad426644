package api

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"sroireport/internal/domain"
	"sroireport/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const accessTokenCookie = "sb-access-token"

var errNoToken = errors.New("no access token on request")

type SupabaseJWT struct {
	Aal                   string                 `json:"aal"`
	AuthenticationMethods []AuthenticationMethod `json:"amr"`
	AppMetadata           AppMetadata            `json:"app_metadata"`
	Audience              string                 `json:"aud"`
	Email                 *string                `json:"email"`
	ExpiresAt             int64                  `json:"exp"`
	IssuedAt              int64                  `json:"iat"`
	IsAnonymous           bool                   `json:"is_anonymous"`
	Issuer                string                 `json:"iss"`
	PhoneNumber           *string                `json:"phone"`
	Role                  string                 `json:"role"`
	SessionID             string                 `json:"session_id"`
	Subject               string                 `json:"sub"`
}

type AuthenticationMethod struct {
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp"`
}

type AppMetadata struct {
	Provider  string   `json:"provider"`
	Providers []string `json:"providers"`
}

// Authenticator resolves the caller of a request. A nil user with a nil
// error never happens; no user is always reported as an error.
type Authenticator interface {
	GetCurrentUser(c *gin.Context) (*domain.User, error)
}

type supabaseAuthenticator struct {
	JwtSecret string
	Keys      *jwksCache
}

func NewSupabaseAuthenticator(jwtSecret string) Authenticator {
	return supabaseAuthenticator{
		JwtSecret: jwtSecret,
		Keys:      newJwksCache(5 * time.Second),
	}
}

func (a supabaseAuthenticator) GetCurrentUser(c *gin.Context) (*domain.User, error) {
	token := accessTokenFromRequest(c.Request)
	if token == "" {
		return nil, errNoToken
	}

	claims, err := parseSupabaseJWT(c.Request.Context(), token, a.JwtSecret, a.Keys)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return &domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// bearer header wins over the cookie set by the browser client
func accessTokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// requireUser gates a route on a signed-in user. Without one the request
// is redirected to the login page and nothing downstream runs.
func (m ApiHandler) requireUser(c *gin.Context) {
	lg := logger.FromContext(c)

	if m.Authenticator == nil {
		lg.Warn("no authenticator configured, redirecting to login")
		m.redirectToLogin(c)
		return
	}

	user, err := m.Authenticator.GetCurrentUser(c)
	if err != nil || user == nil {
		if err != nil && !errors.Is(err, errNoToken) {
			lg.Infow("rejected access token", "error", err.Error())
		}
		m.redirectToLogin(c)
		return
	}

	c.Set("userID", user.ID)
	c.Set("user", user)
	c.Next()
}

func (m ApiHandler) redirectToLogin(c *gin.Context) {
	loginPath := m.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

// Minimal subset of JWK fields needed for ES256 verification.
type jwkKey struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	X   string `json:"x"`
	Y   string `json:"y"`
	Alg string `json:"alg"`
}

type jwksCache struct {
	mu sync.RWMutex
	// cache key: jwksURL + "|" + kid
	keys       map[string]*ecdsa.PublicKey
	httpClient *http.Client
}

func newJwksCache(timeout time.Duration) *jwksCache {
	return &jwksCache{
		keys:       map[string]*ecdsa.PublicKey{},
		httpClient: &http.Client{Timeout: timeout},
	}
}

func base64URLDecodeToBigInt(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func (j *jwksCache) getES256PublicKey(ctx context.Context, jwksURL string, kid string) (*ecdsa.PublicKey, error) {
	cacheKey := jwksURL + "|" + kid
	j.mu.RLock()
	if k, ok := j.keys[cacheKey]; ok {
		j.mu.RUnlock()
		return k, nil
	}
	j.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jwksURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := j.httpClient.Do(req) // #nosec G107 - JWKS URL derived from token issuer; network call is expected.
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch JWKS: http %d", resp.StatusCode)
	}

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	for _, k := range jwks.Keys {
		if k.Kid != kid {
			continue
		}
		if k.Kty != "EC" || k.Crv != "P-256" {
			return nil, fmt.Errorf("unsupported JWK key type/curve: kty=%s crv=%s", k.Kty, k.Crv)
		}
		x, err := base64URLDecodeToBigInt(k.X)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK x: %w", err)
		}
		y, err := base64URLDecodeToBigInt(k.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK y: %w", err)
		}
		pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}

		j.mu.Lock()
		j.keys[cacheKey] = pub
		j.mu.Unlock()

		return pub, nil
	}

	return nil, fmt.Errorf("kid not found in JWKS: %s", kid)
}

func decodeJWTHeaderAndClaimsUnverified(jwtStr string) (map[string]any, *SupabaseJWT, error) {
	parts := strings.Split(jwtStr, ".")
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("invalid JWT format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT header: %w", err)
	}
	var header map[string]any
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT header: %w", err)
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT claims: %w", err)
	}
	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsBytes, &parsedJWT); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT claims: %w", err)
	}

	return header, &parsedJWT, nil
}

func parseSupabaseJWT(ctx context.Context, jwtStr string, jwtSecret string, keys *jwksCache) (*SupabaseJWT, error) {
	// legacy HS256 (shared secret) first
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if jwtSecret == "" {
			return nil, fmt.Errorf("no jwt secret configured")
		}
		return []byte(jwtSecret), nil
	})

	// not HS*, so try ES256 against the issuer's JWKS
	if err != nil {
		header, unverifiedClaims, decodeErr := decodeJWTHeaderAndClaimsUnverified(jwtStr)
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		alg, _ := header["alg"].(string)
		if alg != "ES256" {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		kid, _ := header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("failed to parse token: missing kid")
		}
		if unverifiedClaims.Issuer == "" {
			return nil, fmt.Errorf("failed to parse token: missing iss")
		}

		jwksURL := strings.TrimRight(unverifiedClaims.Issuer, "/") + "/.well-known/jwks.json"
		esToken, esErr := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return keys.getES256PublicKey(ctx, jwksURL, kid)
		})
		if esErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", esErr)
		}
		token = esToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("error unmarshalling into JWT struct: %w", err)
	}

	// jwt v3 only checks exp when it's present
	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}
