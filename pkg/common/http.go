package common

import (
	"log"
	"net/http"

	"github.com/matst80/slask-refine/pkg/common/jsoncompat"
)

// JsonHandler wraps a request function into an http.HandlerFunc that
// answers OPTIONS preflights and writes the result as JSON.
func JsonHandler(fn func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		result, err := fn(r)
		if err != nil {
			log.Printf("Error handling request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, err := jsoncompat.Marshal(result)
		if err != nil {
			log.Printf("Error encoding response: %v", err)
			http.Error(w, "encoding failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(data); err != nil {
			log.Printf("Error writing response: %v", err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
	}
	w.WriteHeader(http.StatusAccepted)
}
