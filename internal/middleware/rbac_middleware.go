package middleware

import (
	"net/http"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abortWith(c, autherrors.ErrForbidden)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), nil).Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
