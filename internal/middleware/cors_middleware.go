package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Заголовки, которые добавляются к каждому ответу
var (
	allowedHeaders = []string{"Content-Type", "Authorization", "true"}
	allowedMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}
)

// CORS разрешает запросы с любых источников
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    allowedMethods,
		AllowHeaders:    allowedHeaders,
		ExposeHeaders:   []string{"Content-Length", RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}

// ResponseHeaders добавляет Access-Control-Allow-Headers и Access-Control-Allow-Methods
// ко всем ответам, включая preflight. Значения выставляются в момент отправки заголовков:
// cors.New на preflight подменяет их канонизированными ("True") и сразу отвечает 204.
func ResponseHeaders() gin.HandlerFunc {
	headers := strings.Join(allowedHeaders, ",")
	methods := strings.Join(allowedMethods, ",")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Writer = &corsHeadersWriter{ResponseWriter: c.Writer, headers: headers, methods: methods}
		c.Next()
	}
}

// corsHeadersWriter перед отправкой заголовков записывает точные значения CORS
type corsHeadersWriter struct {
	gin.ResponseWriter
	headers string
	methods string
}

func (w *corsHeadersWriter) apply() {
	if w.ResponseWriter.Written() {
		return
	}
	w.Header().Set("Access-Control-Allow-Headers", w.headers)
	w.Header().Set("Access-Control-Allow-Methods", w.methods)
}

func (w *corsHeadersWriter) WriteHeaderNow() {
	w.apply()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *corsHeadersWriter) Write(data []byte) (int, error) {
	w.apply()
	return w.ResponseWriter.Write(data)
}

func (w *corsHeadersWriter) WriteString(s string) (int, error) {
	w.apply()
	return w.ResponseWriter.WriteString(s)
}
