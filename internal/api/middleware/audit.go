package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Audit пишет в лог каждый запрос: метод, маршрут, статус и длительность
func Audit(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error("AUDIT %s %s - status=%d duration=%s", r.Method, r.URL.Path, sw.status, duration)
			case sw.status >= http.StatusBadRequest:
				logger.Warn("AUDIT %s %s - status=%d duration=%s", r.Method, r.URL.Path, sw.status, duration)
			default:
				logger.Info("AUDIT %s %s - status=%d duration=%s", r.Method, r.URL.Path, sw.status, duration)
			}
		})
	}
}
