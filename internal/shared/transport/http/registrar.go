package http

import "github.com/gin-gonic/gin"

// Registrar 由各业务模块实现，把自己的 http 路由挂到服务分组上。
type Registrar interface {
	HttpRegister(g *gin.RouterGroup)
}
