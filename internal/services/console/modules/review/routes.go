package review

import "net/http"

func registerRoutes(mux *http.ServeMux, prefix string, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+prefix, h.handleQueue)
	mux.HandleFunc(http.MethodGet+" "+prefix+"/{$}", h.handleQueue)
	mux.HandleFunc(http.MethodGet+" "+prefix+"/{documentID}", h.handleDetail)
	mux.HandleFunc(http.MethodPost+" "+prefix+"/{documentID}/decision", h.handleDecision)
	mux.HandleFunc(prefix+"/{rest...}", h.WriteNotFound)
}
