package response

import (
	"net/http"

	"storeapi/pagination"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// SuccessWithPagination replies with one page; the page metadata travels inside data.
func SuccessWithPagination[T any](c *gin.Context, page pagination.PagedResult[T]) {
	Success(c, page)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Found answers a HEAD request with 200 or 404 and no body.
func Found(c *gin.Context, found bool) {
	if found {
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusNotFound)
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}
