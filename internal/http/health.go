package http

import (
	"net/http"
	"time"

	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
)

type healthPayload struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// LivezHandler answers 200 whenever the process is up.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteSuccess(w, http.StatusOK, "LIVE", "service is running", healthPayload{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler answers 200 only when the database responds.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := healthPayload{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}

		if err := st.Ping(r.Context()); err != nil {
			payload.Status = "degraded"
			httpx.NewAPIError(http.StatusServiceUnavailable, "NOT_READY", "database unavailable").WriteError(w)
			return
		}

		httpx.WriteSuccess(w, http.StatusOK, "READY", "service is ready", payload)
	}
}
