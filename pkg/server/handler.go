package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/domattr/internal/errors"
	"github.com/vango-dev/domattr/pkg/attrs"
	"github.com/vango-dev/domattr/pkg/dom"
	"github.com/vango-dev/domattr/pkg/services"
)

// ApplyRequest is the body of POST /apply.
type ApplyRequest struct {
	HTML  string    `json:"html"`
	Attrs attrs.Map `json:"attrs"`
	SVG   bool      `json:"svg,omitempty"`
}

// ApplyResponse is the success body of POST /apply.
type ApplyResponse struct {
	HTML    string `json:"html"`
	Mutated bool   `json:"mutated"`
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)

	var req ApplyRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		span.SetStatus(codes.Error, "bad request")
		writeJSON(w, http.StatusBadRequest, errors.Payload{Code: "bad_request", Message: err.Error()})
		return
	}

	el, err := dom.Parse(req.HTML)
	if err != nil {
		span.SetStatus(codes.Error, "bad html")
		writeJSON(w, http.StatusBadRequest, errors.Payload{Code: "bad_html", Message: err.Error()})
		return
	}
	isSVG := req.SVG || el.Namespace() == dom.SVGNamespace
	span.SetAttributes(attribute.String("domattr.tag", el.TagName()))

	mutated, err := s.config.Applicator.ApplyContext(ctx, el, services.Resolve(req.Attrs), isSVG)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var e *errors.Error
		if stderrors.As(err, &e) {
			writeJSON(w, http.StatusUnprocessableEntity, e.Payload())
			return
		}
		writeJSON(w, http.StatusInternalServerError, errors.Payload{Code: "internal", Message: err.Error()})
		return
	}

	out, err := s.config.Renderer.RenderToString(el)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errors.Payload{Code: "internal", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ApplyResponse{HTML: out, Mutated: mutated})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
