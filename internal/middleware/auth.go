package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/go-finbook/finbook/pkg/tokenpkg"
)

const (
	// AuthHeaderKey is the header carrying the bearer token.
	AuthHeaderKey = "authorization"
	// AuthTypeBearer is the only accepted authorization scheme.
	AuthTypeBearer = "bearer"
	// AuthPayloadKey is the gin context key holding the verified token payload.
	AuthPayloadKey = "authorization_payload"
)

// Pinned response messages of the auth guard.
const (
	msgTokenMissing = "Token não fornecido"
	msgTokenInvalid = "Token inválido"
)

// AddAuthorization issues a token and sets the authorization header on request.
func AddAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authorizationType string,
	userID string,
	duration time.Duration,
) {
	t.Helper()

	token, _, err := tokenMaker.CreateToken(userID, duration, false)
	require.NoError(t, err)

	request.Header.Set(AuthHeaderKey, fmt.Sprintf("%s %s", authorizationType, token))
}

// Auth guards a route group behind bearer token verification. Refresh tokens
// are not accepted as access tokens.
func Auth(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		authHeader := gctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenMissing})
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || strings.ToLower(fields[0]) != AuthTypeBearer {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenInvalid})
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil || payload.Refresh {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenInvalid})
			return
		}

		gctx.Set(AuthPayloadKey, payload)
		gctx.Next()
	}
}
