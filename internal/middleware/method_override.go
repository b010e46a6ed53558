package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideField is the form field HTML forms use to ask for PUT or DELETE.
const MethodOverrideField = "_method"

// MethodOverride lets HTML forms issue PUT and DELETE requests by POSTing a
// _method field. It wraps the whole router because gin picks the route
// before its own middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "malformed form body", http.StatusBadRequest)
				return
			}
			switch method := strings.ToUpper(r.PostForm.Get(MethodOverrideField)); method {
			case http.MethodPut, http.MethodDelete:
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
