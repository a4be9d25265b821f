package submission

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public submission routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	subs := r.Group("/submissions")
	{
		subs.POST("/contact", handler.SubmitContact)
		subs.POST("/referral", handler.SubmitReferral)
	}
}
