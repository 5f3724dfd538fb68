/*
handlers.go - HTTP API handlers for the statement service

PURPOSE:
  Exposes the statement engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Health:
    GET    /health                     Liveness probe

  Scheme:
    GET    /api/scheme                 Fixed scheme parameters
    GET    /api/sample                 Download example input workbook

  Runs:
    POST   /api/runs                   Upload workbook + rate, compute statements
    GET    /api/runs                   List stored runs, newest first
    GET    /api/runs/{runID}           Run summary
    GET    /api/runs/{runID}/statements  Computed slips as JSON
    GET    /api/runs/{runID}/export    Report download (?format=csv|xlsx)

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Runs: expiring in-memory run store
  - MaxUploadBytes: upload size cap for POST /api/runs

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (loader, engine, writers)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown or expired run
  - 413: Upload exceeds the size cap
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.
  Uploaded figures never touch disk and expire with the run TTL.

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/epf-engine/epf"
	"github.com/warp/epf-engine/store/memory"
	"github.com/warp/epf-engine/workbook"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Runs           *memory.RunStore
	MaxUploadBytes int64
}

// NewHandler creates a new handler backed by the given run store.
func NewHandler(runs *memory.RunStore, maxUploadBytes int64) *Handler {
	return &Handler{
		Runs:           runs,
		MaxUploadBytes: maxUploadBytes,
	}
}

// =============================================================================
// HEALTH AND SCHEME HANDLERS
// =============================================================================

// Health reports liveness and the number of live runs.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"runs":   h.Runs.Len(),
	})
}

// GetScheme returns the fixed scheme parameters.
func (h *Handler) GetScheme(w http.ResponseWriter, r *http.Request) {
	labels := epf.MonthLabels()
	writeJSON(w, http.StatusOK, SchemeDTO{
		EmployeeRate: epf.RateEmployee.InexactFloat64(),
		PensionRate:  epf.RatePension.InexactFloat64(),
		EmployerRate: epf.RateEmployer.InexactFloat64(),
		Months:       labels[:],
		Captions:     epf.StatementCaptions[:],
	})
}

// DownloadSample streams the generated example input workbook.
func (h *Handler) DownloadSample(w http.ResponseWriter, r *http.Request) {
	f, err := workbook.SampleWorkbook()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build sample workbook", err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode sample workbook", err)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbook.SampleName))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// RUN HANDLERS
// =============================================================================

// CreateRun accepts a multipart upload (workbook file plus rate field),
// computes the statements, and stores the run.
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Upload exceeds size limit", err)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	rate, err := epf.ParseRate(r.FormValue("rate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rate", err)
		return
	}
	if err := rate.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rate", err)
		return
	}

	file, header, err := r.FormFile("workbook")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing workbook file", err)
		return
	}
	defer file.Close()

	in, err := workbook.Load(file)
	if err != nil {
		if epf.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid input workbook", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to read workbook", err)
		return
	}

	statements, err := epf.NewStatementEngine(rate).Run(in.Members)
	if err != nil {
		if epf.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid member data", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to compute statements", err)
		return
	}

	run := memory.Run{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		SourceName: header.Filename,
		Rate:       rate,
		Statements: statements,
	}
	h.Runs.Put(run)

	writeJSON(w, http.StatusCreated, toRunDTO(run))
}

// ListRuns returns all live runs, newest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRunDTOs(h.Runs.List()))
}

// GetRun returns one run summary.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toRunDTO(run))
}

// GetRunStatements returns the computed slips of a run.
func (h *Handler) GetRunStatements(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toStatementDTOs(run.Statements))
}

// ExportRun streams a run's report as a file download. The format query
// parameter selects csv (default) or xlsx.
func (h *Handler) ExportRun(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookupRun(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := workbook.WriteCSV(&buf, run.Statements); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to build CSV report", err)
			return
		}
		sendAttachment(w, contentTypeCSV, workbook.CSVReportName, buf.Bytes())

	case "xlsx":
		f, err := workbook.StatementWorkbook(run.Statements)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to build report workbook", err)
			return
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to encode report workbook", err)
			return
		}
		sendAttachment(w, contentTypeXLSX, workbook.ExcelReportName, buf.Bytes())

	default:
		writeError(w, http.StatusBadRequest, "Unsupported export format (use csv or xlsx)", nil)
	}
}

// lookupRun fetches the run named by the runID path parameter, writing
// the 404 itself when the run is unknown or expired.
func (h *Handler) lookupRun(w http.ResponseWriter, r *http.Request) (memory.Run, bool) {
	id := chi.URLParam(r, "runID")
	run, err := h.Runs.Get(id)
	if err != nil {
		if epf.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Run not found", err)
			return memory.Run{}, false
		}
		writeError(w, http.StatusInternalServerError, "Failed to load run", err)
		return memory.Run{}, false
	}
	return run, true
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func sendAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
