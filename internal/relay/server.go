package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/digest"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/services/evaluation"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Server is the HTTP side of the relay: an in-memory polar registry plus
// batch evaluation against stored polars.
type Server struct {
	registry domain.PolarRegistry
	options  []evaluation.Option
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewServer wires the routes. opts configure every evaluation the server
// runs; a request's refine flag is applied on top of them.
func NewServer(reg domain.PolarRegistry, logger *slog.Logger, opts ...evaluation.Option) *Server {
	s := &Server{registry: reg, options: opts, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /polars", s.handleRegister)
	s.mux.HandleFunc("GET /polars/{fp}", s.handleFetch)
	s.mux.HandleFunc("POST /evaluate/{fp}", s.handleEvaluate)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.mux.Handle("GET /metrics", promhttp.Handler())
	return s
}

// ServeHTTP logs every request after it completes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
		"status", rec.status,
		"bytes", rec.bytes,
		"duration", time.Since(start))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var t polar.Table
	if err := strictUnmarshal(body, &t); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	fp := s.registry.PutPolar(t)
	s.logger.Debug("polar registered", "fingerprint", fp, "points", t.Len())
	writeJSON(w, http.StatusOK, domain.PolarRegistered{Fingerprint: fp, Points: t.Len()})
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	t, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	t, ok := s.lookup(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var head struct {
		Target json.RawMessage `json:"target"`
	}
	if err := json.Unmarshal(body, &head); err != nil || len(head.Target) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("missing target"))
		return
	}
	var req domain.EvaluateRequest
	if err := strictUnmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Phases) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no phases"))
		return
	}

	opts := append(append([]evaluation.Option(nil), s.options...),
		evaluation.WithRefinement(req.Refine),
		evaluation.WithLogger(s.logger))
	if req.Schedule != nil {
		opts = append(opts, evaluation.WithSchedule(evaluation.ScheduleFromSpec(*req.Schedule)))
	}
	svc := evaluation.New(opts...)
	outcomes, err := svc.EvaluateAll(r.Context(), req.Phases, t, req.Target)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.EvaluateResponse{
		RunID:      domain.RunID(uuid.NewString()),
		Polar:      domain.Fingerprint(r.PathValue("fp")),
		Outcomes:   domain.Records(outcomes),
		Correction: &domain.CorrectionSpec{
			Enabled:      !svc.Corrector().Disabled,
			MachMaxValid: svc.Corrector().Threshold(),
		},
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (polar.Table, bool) {
	fp := r.PathValue("fp")
	if !digest.Valid(fp) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("malformed fingerprint %q", fp))
		return polar.Table{}, false
	}
	t, ok := s.registry.GetPolar(domain.Fingerprint(fp))
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("polar %s not found", fp))
		return polar.Table{}, false
	}
	return t, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
}

func strictUnmarshal(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, domain.ErrorBody{Error: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
