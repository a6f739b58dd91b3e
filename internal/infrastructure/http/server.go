package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"cryptorisk-service/internal/application"
	"cryptorisk-service/internal/infrastructure/logx"
)

type Server struct {
	svc   *application.DashboardService
	ready func(ctx context.Context) error
}

func NewServer(svc *application.DashboardService) *Server { return &Server{svc: svc} }

// SetReadyCheck installs the /readyz probe. Nil means always ready.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ready = fn }

type assetDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type snapshotRowDTO struct {
	Asset     string  `json:"asset"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	Risk      string  `json:"risk"`
}

type observationDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Asset     string    `json:"asset"`
	AssetID   string    `json:"asset_id"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change_24h"`
	Risk      string    `json:"risk"`
}

type seriesPointDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

type seriesDTO struct {
	Asset  string           `json:"asset"`
	Points []seriesPointDTO `json:"points"`
}

type refreshRequest struct {
	IDs []string `json:"ids"`
}

type refreshResponse struct {
	Fetched  int              `json:"fetched"`
	Snapshot []snapshotRowDTO `json:"snapshot"`
}

func (s *Server) handleAssets(w http.ResponseWriter, _ *http.Request) {
	assets := s.svc.Assets()
	out := make([]assetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, assetDTO{ID: a.ID, DisplayName: a.DisplayName})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	obs, err := s.svc.Refresh(r.Context(), body.IDs)
	if err != nil {
		if errors.Is(err, application.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// fetch failure is never fatal: prior state stays renderable and
		// the next refresh is the recovery path
		logx.L().Warn("refresh failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{
		Fetched:  len(obs),
		Snapshot: snapshotDTOs(application.SnapshotOf(obs)),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, snapshotDTOs(s.svc.LatestSnapshot(r.Context())))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	names := splitParam(r.URL.Query().Get("assets"))
	if len(names) == 0 {
		for _, a := range s.svc.Assets() {
			names = append(names, a.DisplayName)
		}
	}
	series, err := s.svc.Series(r.Context(), names)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build series")
		return
	}
	out := make([]seriesDTO, 0, len(series))
	for _, sr := range series {
		pts := make([]seriesPointDTO, 0, len(sr.Points))
		for _, p := range sr.Points {
			pts = append(pts, seriesPointDTO{Timestamp: p.Timestamp, Price: p.Price.InexactFloat64()})
		}
		out = append(out, seriesDTO{Asset: sr.Asset, Points: pts})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleObservations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	obs, err := s.svc.RecentObservations(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	out := make([]observationDTO, 0, len(obs))
	for _, o := range obs {
		out = append(out, observationDTO{
			Timestamp: o.Timestamp,
			Asset:     o.AssetName,
			AssetID:   o.AssetID,
			Price:     o.Price.InexactFloat64(),
			Change24h: o.Change24h.InexactFloat64(),
			Risk:      string(o.Risk),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func snapshotDTOs(rows []application.SnapshotRow) []snapshotRowDTO {
	out := make([]snapshotRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, snapshotRowDTO{
			Asset:     row.Asset,
			Price:     row.Price.InexactFloat64(),
			Change24h: row.Change24h.InexactFloat64(),
			Risk:      string(row.Risk),
		})
	}
	return out
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Code: status, Message: msg})
}
