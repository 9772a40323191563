package dashboard

import "net/http"

func registerRoutes(mux *http.ServeMux, home string, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+home, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+home+"/{$}", h.handleIndex)
	mux.HandleFunc(home+"/{rest...}", h.WriteNotFound)
}
