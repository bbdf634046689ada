package board

import (
	"net/http"

	"github.com/louisbranch/capabilityboard/internal/services/board/routepath"
	boardstatic "github.com/louisbranch/capabilityboard/internal/services/board/static"
)

func registerRoutes(mux *http.ServeMux, h *handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Cards, h.handleCards)
	mux.HandleFunc(http.MethodPost+" "+routepath.CapabilityActionPattern, h.handleAction)
	mux.HandleFunc(http.MethodDelete+" "+routepath.CapabilityActionPattern, h.handleAction)
	mux.HandleFunc(http.MethodPost+" "+routepath.UIErrors, h.handleUIError)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(boardstatic.FS))))
}
