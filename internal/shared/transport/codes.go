package transport

// 传输层统一业务码。
// 约定：0 成功；1~499 业务拒绝（WARN）；>=500 技术错误（ERROR）。
const (
	OK           = 0
	BizReject    = 100
	InvalidParam = 400
	Unauthorized = 401
	NotFound     = 404
	SystemError  = 500
)
