package ws

// Registrar 由各业务模块实现，把自己的 ws 路由挂到网关路由器上。
type Registrar interface {
	WsRegister(r *Router)
}
