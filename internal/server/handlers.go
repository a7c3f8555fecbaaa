package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-checker/internal/db"
	"github.com/jonathan/cv-checker/internal/fetch"
	"github.com/jonathan/cv-checker/internal/pipeline"
	"github.com/jonathan/cv-checker/internal/types"
)

// AnalyzeRequest is the request body for both analyze endpoints. Exactly one
// of JobDescription or JobURL must be provided.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	CVMarkdown     string `json:"cv_markdown" validate:"required"`
}

const saveTimeout = 10 * time.Second

// decodeAnalyzeRequest parses and validates the request body. A non-nil
// error has already been written to the response.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*AnalyzeRequest, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return nil, false
	}
	return &req, true
}

// resolveJobText returns the posting text, fetching it when a URL was given.
func (s *Server) resolveJobText(ctx context.Context, req *AnalyzeRequest) (string, error) {
	if req.JobURL == "" {
		return req.JobDescription, nil
	}
	return s.fetcher.JobPosting(ctx, req.JobURL)
}

// handleAnalyze runs a full analysis and returns the result as one JSON
// document.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	jobText, err := s.resolveJobText(ctx, req)
	if err != nil {
		s.fetchErrorResponse(w, err)
		return
	}

	result, err := s.analyzer.Run(ctx, jobText, req.CVMarkdown, nil)
	if err != nil {
		s.pipelineErrorResponse(w, err)
		return
	}

	s.saveResult(result)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeStream runs a full analysis, streaming progress events over
// SSE. The stream carries the same terminal result or error event the
// pipeline emits, so clients never need to poll.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	jobText, err := s.resolveJobText(ctx, req)
	if err != nil {
		s.fetchErrorResponse(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The analysis runs in its own goroutine; events are drained here so
	// each one is flushed to the client as it happens.
	events := make(chan types.ProgressEvent, 16)
	g, gCtx := errgroup.WithContext(ctx)

	var result *types.AnalysisResult
	g.Go(func() error {
		defer close(events)
		res, runErr := s.analyzer.Run(gCtx, jobText, req.CVMarkdown, func(event types.ProgressEvent) {
			select {
			case events <- event:
			case <-gCtx.Done():
			}
		})
		if runErr != nil {
			return runErr
		}
		result = res
		return nil
	})

	for event := range events {
		if writeErr := sse.WriteEvent(event.Type, event); writeErr != nil {
			s.log.Warn("error writing SSE event", zap.Error(writeErr))
		}
	}

	if err := g.Wait(); err != nil {
		// The pipeline already emitted the terminal error event.
		s.log.Error("streaming analysis failed", zap.Error(err))
		return
	}

	s.saveResult(result)
}

// handleListAnalyses returns summaries of recent analyses.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "result storage is not configured")
		return
	}

	summaries, err := s.db.ListRecentAnalyses(r.Context(), 50)
	if err != nil {
		s.log.Error("failed to list analyses", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if summaries == nil {
		summaries = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetAnalysis returns a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "result storage is not configured")
		return
	}

	id := r.PathValue("id")
	result, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get analysis", zap.String("id", id), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// saveResult persists the result best-effort. Storage failures are logged,
// never surfaced to the caller.
func (s *Server) saveResult(result *types.AnalysisResult) {
	if s.db == nil || result == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.db.SaveAnalysis(ctx, result); err != nil {
		s.log.Warn("failed to persist analysis result",
			zap.String("id", result.ID),
			zap.Error(err))
	}
}

// fetchErrorResponse maps fetch failures to HTTP statuses keyed by their
// classified reason.
func (s *Server) fetchErrorResponse(w http.ResponseWriter, err error) {
	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		status := http.StatusUnprocessableEntity
		if fetchErr.Reason == fetch.ReasonTimeout {
			status = http.StatusGatewayTimeout
		}
		s.jsonResponse(w, status, map[string]string{
			"error":  "failed to fetch job posting",
			"reason": string(fetchErr.Reason),
			"url":    fetchErr.URL,
		})
		return
	}
	s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting: "+err.Error())
}

// pipelineErrorResponse maps stage failures to responses carrying the stage
// name so clients can tell extraction problems from scoring ones.
func (s *Server) pipelineErrorResponse(w http.ResponseWriter, err error) {
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		s.jsonResponse(w, http.StatusBadGateway, map[string]string{
			"error": stageErr.Error(),
			"stage": stageErr.Stage,
		})
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}
