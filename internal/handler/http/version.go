package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.buildInfo.BuildVersion() + "\n" + h.buildInfo.BuildDate() + "\n" + h.buildInfo.BuildCommit() + "\n"))
}
