package ginx

import "github.com/gin-gonic/gin"

// Handler 一组 HTTP 路由
type Handler interface {
	RegisterRoutes(server *gin.Engine)
}

// Result 统一的响应体，Code 为 0 表示成功
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}
