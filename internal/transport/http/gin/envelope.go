package httpgin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every response body.
type Envelope struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Body      any       `json:"body"`
}

// ErrorBody is the envelope body of a failed request.
type ErrorBody struct {
	Exception string `json:"exception"`
	Detail    string `json:"detail"`
}

func newEnvelope(status int, body any) Envelope {
	return Envelope{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Message:   http.StatusText(status),
		Body:      body,
	}
}

func respond(c *gin.Context, status int, body any) {
	c.JSON(status, newEnvelope(status, body))
}

func abortWith(c *gin.Context, status int, exception, detail string) {
	c.AbortWithStatusJSON(status, newEnvelope(status, ErrorBody{
		Exception: exception,
		Detail:    detail,
	}))
}
