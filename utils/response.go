// file: utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应壳。code 为 0 表示成功，非 0 为业务错误码：
// 1xxx 参数错误，3xxx 业务规则（区间冲突、重复报名、号码发完等），
// 4xxx 认证 / 资源不存在，5000 存储层错误
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success HTTP 状态恒为 200，成败由业务码区分
func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
