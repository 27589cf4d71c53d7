package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestWriteHealthResponse(t *testing.T) {
	var ctx fasthttp.RequestCtx

	WriteHealthResponse(&ctx, map[string]string{"status": "unhealthy"}, false)

	assert.Equal(t, fasthttp.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.JSONEq(t, `{"status":"unhealthy"}`, string(ctx.Response.Body()))
}

func TestWriteErrorResponse(t *testing.T) {
	var ctx fasthttp.RequestCtx

	WriteErrorResponse(&ctx, "not found", fasthttp.StatusNotFound)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"success":false,"error":"not found"}`, string(ctx.Response.Body()))
}
