package spectator

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/viper/status"
)

const (
	// FramesPath is the websocket endpoint viewers connect to
	FramesPath = "/frames"
	// StatusPath serves a JSON snapshot of the status registry
	StatusPath = "/status"
)

// NewServer returns an HTTP server exposing hub at FramesPath
// StatusPath is mounted only when reg is non-nil
func NewServer(addr string, hub *Hub, reg *status.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(FramesPath, hub)
	if reg != nil {
		mux.HandleFunc(StatusPath, statusHandler(hub, reg))
	}
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func statusHandler(hub *Hub, reg *status.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		snap := reg.Snapshot()
		snap["spectator.viewers"] = hub.Clients()
		snap["spectator.dropped"] = hub.Dropped()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			hub.logger.Debug("status write failed", zap.Error(err))
		}
	}
}
