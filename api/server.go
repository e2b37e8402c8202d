package api

import (
	"encoding/json"
	"net/http"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// RecordReader reads the persisted high score.
type RecordReader interface {
	Record() (highscore.Record, error)
}

// Server exposes metrics and the high score over HTTP on the local machine.
type Server struct {
	hs     *http.Server
	scores RecordReader
}

// New returns a server listening on addr once WaitForExit is called.
func New(addr string, scores RecordReader) *Server {
	s := &Server{scores: scores}

	router := httprouter.New()
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.GET("/highscore", s.highScore)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: router,
	}
	return s
}

// Handler is the router serving every route.
func (s *Server) Handler() http.Handler {
	return s.hs.Handler
}

// WaitForExit serves until the listener fails.
func (s *Server) WaitForExit() {
	log.Infof("metrics listening on %s", s.hs.Addr)
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Errorf("Error while listening: %v", err)
	}
}

// Close stops the listener.
func (s *Server) Close() error {
	return s.hs.Close()
}

func (s *Server) highScore(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rec, err := s.scores.Record()
	if err == highscore.ErrNoRecord {
		rec, err = highscore.Record{}, nil
	}
	if err != nil {
		log.WithError(err).Warn("failed to read high score")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}
