package httpgin

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeWithCache writes body in an envelope with ETag/Cache-Control. The tag
// covers the body only, so it is stable across envelope timestamps. A
// matching If-None-Match yields 304.
func writeWithCache(
	c *gin.Context,
	status int,
	body any,
	cacheControl string,
) {
	b, err := json.Marshal(body)
	if err != nil {
		respondErr(c, err)
		return
	}

	sum := sha256.Sum256(b)
	tag := `W/"` + hex.EncodeToString(sum[:]) + `"`

	c.Header("ETag", tag)
	if cacheControl != "" {
		c.Header("Cache-Control", cacheControl)
	}

	if c.GetHeader("If-None-Match") == tag {
		c.Status(http.StatusNotModified)
		return
	}

	respond(c, status, json.RawMessage(b))
}
