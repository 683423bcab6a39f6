package middleware

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware validates the HS256 access token from the Authorization
// header or the access_token cookie and puts user_id and role on the context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secret, nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		reqLogger := contextutil.GetLogger(ctx, nil).With(zap.String("user_id", userID))
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" || !slices.Contains(allowedRoles, userRole) {
			abortWith(c, autherrors.ErrForbidden)
			return
		}

		c.Next()
	}
}
