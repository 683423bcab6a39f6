package payroll

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
	rdb *redis.Client,
) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(authMiddleware)
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
		payrolls.GET("/:id/breakdown", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetBreakdown)
		payrolls.GET("/:id/payslip/download", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.DownloadPayslip)
		if rdb != nil {
			payrolls.POST(
				"",
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				middleware.Idempotency(rdb),
				handler.Create,
			)
		} else {
			payrolls.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Create)
		}
		payrolls.POST("/:id/regenerate", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Regenerate)
		payrolls.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.Approve)
		payrolls.POST("/:id/mark-paid", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.MarkAsPaid)
		payrolls.POST("/:id/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.RequestPayslip)
		payrolls.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.Delete)
	}
}
