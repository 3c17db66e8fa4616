// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pdf-bounds-matching/internal/config"
	"pdf-bounds-matching/internal/entity"
	"pdf-bounds-matching/internal/extractor"
	"pdf-bounds-matching/internal/formatters"
	"pdf-bounds-matching/internal/match"
	"pdf-bounds-matching/internal/observability"
	"pdf-bounds-matching/internal/session"
	"pdf-bounds-matching/internal/version"

	// Import formatters to register them
	_ "pdf-bounds-matching/internal/formatters/json"
	_ "pdf-bounds-matching/internal/formatters/text"
)

// WebServer represents the web server instance
type WebServer struct {
	port      string
	cfg       *config.Config
	server    *http.Server
	mux       *http.ServeMux
	store     *session.Store
	extractor *extractor.Extractor
	entities  *entity.Extractor
	observer  *observability.Observer
}

// NewWebServer creates a new web server instance. The entity extractor may
// be nil when no LLM credentials are configured; the extraction endpoints
// report that at request time.
func NewWebServer(port string, cfg *config.Config, entities *entity.Extractor, observer *observability.Observer) *WebServer {
	ws := &WebServer{
		port:      port,
		cfg:       cfg,
		mux:       http.NewServeMux(),
		store:     session.NewStore(),
		extractor: extractor.NewExtractor(cfg.Extractor.MaxPages, cfg.Extractor.Workers),
		entities:  entities,
		observer:  observer,
	}
	ws.extractor.SetObserver(observer)
	ws.setupRoutes()
	return ws
}

// Start starts the web server
func (ws *WebServer) Start() error {
	// Try ports starting from the specified port
	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := ws.port
		if i > 0 || ws.port == "8080" {
			currentPort = fmt.Sprintf("%d", 8080+i)
		}

		// Test if port is available first
		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue // Port is busy, try next one
		}
		listener.Close()

		ws.server = ws.createSecureServer(currentPort)

		fmt.Printf("PDF Bounds Matching API started on port %s\n", currentPort)
		fmt.Printf("Local: http://localhost:%s\n", currentPort)

		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			fmt.Printf("Server on port %s failed: %v\n", currentPort, err)
			continue // Try next port
		}
		return nil
	}

	return fmt.Errorf("could not find an available port in range 8080-8089\n"+
		"Last error: %v\n"+
		"Troubleshooting:\n"+
		"  1. Check if other services are using these ports: netstat -an | grep :808\n"+
		"  2. Try a specific port with --port <number>", lastError)
}

// Stop stops the web server and releases all session documents.
func (ws *WebServer) Stop() error {
	ws.store.Close()
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

// setupRoutes configures all HTTP route handlers
func (ws *WebServer) setupRoutes() {
	ws.mux.HandleFunc("GET /health", ws.handleHealth)
	ws.mux.HandleFunc("POST /api/documents", ws.handleUpload)
	ws.mux.HandleFunc("GET /api/documents/{id}/text", ws.handleText)
	ws.mux.HandleFunc("POST /api/documents/{id}/match", ws.handleMatch)
	ws.mux.HandleFunc("POST /api/documents/{id}/export", ws.handleExport)
	ws.mux.HandleFunc("DELETE /api/documents/{id}", ws.handleDelete)
	ws.mux.HandleFunc("POST /api/entities", ws.handleEntities)
	ws.mux.HandleFunc("POST /api/entities/categorized", ws.handleEntitiesCategorized)
	ws.mux.HandleFunc("GET /api/strategies", ws.handleStrategies)
}

// createSecureServer creates an HTTP server with security timeouts
func (ws *WebServer) createSecureServer(port string) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: ws.mux,
		// Timeout for reading request headers (prevents slow header attacks)
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Handler exposes the route multiplexer.
func (ws *WebServer) Handler() http.Handler {
	return ws.mux
}

// handleHealth provides a health check endpoint with version information
func (ws *WebServer) handleHealth(responseWriter http.ResponseWriter, request *http.Request) {
	versionInfo := version.Full()
	ws.sendJSON(responseWriter, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pdf-bounds-matching",
		"version":   versionInfo["version"],
		"documents": ws.store.Count(),
		"build_info": map[string]any{
			"version":    versionInfo["version"],
			"commit":     versionInfo["commit"],
			"build_date": versionInfo["buildDate"],
			"go_version": versionInfo["goVersion"],
			"platform":   versionInfo["platform"],
		},
	})
}

// uploadResponse describes a stored document
type uploadResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	PageCount  int    `json:"page_count"`
	WordCount  int    `json:"word_count"`
}

// handleUpload accepts a PDF, extracts its word corpus and stores it for
// the session.
func (ws *WebServer) handleUpload(responseWriter http.ResponseWriter, request *http.Request) {
	finish := ws.observer.StartTiming("web", "upload")

	maxBytes := int64(ws.cfg.Server.MaxUploadMB) << 20
	request.Body = http.MaxBytesReader(responseWriter, request.Body, maxBytes)

	if err := request.ParseMultipartForm(maxBytes); err != nil {
		finish(false, map[string]any{"error": err.Error()})
		ws.sendError(responseWriter, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	uploadedFile, header, err := request.FormFile("file")
	if err != nil {
		finish(false, nil)
		ws.sendError(responseWriter, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer uploadedFile.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		finish(false, nil)
		ws.sendError(responseWriter, http.StatusBadRequest, "Only PDF files are supported")
		return
	}

	tempFile, err := os.CreateTemp("", fmt.Sprintf("bounds_upload_%d_*.pdf", time.Now().Unix()))
	if err != nil {
		finish(false, nil)
		ws.sendError(responseWriter, http.StatusInternalServerError, "Failed to create temporary file")
		return
	}
	tempPath := tempFile.Name()

	if _, err := io.Copy(tempFile, uploadedFile); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		finish(false, nil)
		ws.sendError(responseWriter, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}
	tempFile.Close()

	if err := ws.extractor.Validate(tempPath); err != nil {
		os.Remove(tempPath)
		finish(false, map[string]any{"error": err.Error()})
		ws.sendError(responseWriter, http.StatusBadRequest, fmt.Sprintf("Invalid PDF: %v", err))
		return
	}

	corpus, err := ws.extractor.ExtractWords(request.Context(), tempPath)
	if err != nil {
		os.Remove(tempPath)
		finish(false, map[string]any{"error": err.Error()})
		ws.sendError(responseWriter, http.StatusUnprocessableEntity, fmt.Sprintf("Failed to extract text: %v", err))
		return
	}

	id, err := session.NewID()
	if err != nil {
		os.Remove(tempPath)
		finish(false, nil)
		ws.sendError(responseWriter, http.StatusInternalServerError, err.Error())
		return
	}

	doc := &session.Document{
		ID:         id,
		Filename:   header.Filename,
		Path:       tempPath,
		Corpus:     corpus,
		FullText:   corpus.FullText(),
		PageCount:  corpus.PageCount(),
		UploadedAt: time.Now().UTC(),
	}
	ws.store.Put(doc)

	finish(true, map[string]any{"pages": doc.PageCount, "words": corpus.WordCount()})
	ws.sendJSON(responseWriter, http.StatusCreated, uploadResponse{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		PageCount:  doc.PageCount,
		WordCount:  corpus.WordCount(),
	})
}

// handleText returns the extracted full text of a stored document along
// with every positioned word.
func (ws *WebServer) handleText(responseWriter http.ResponseWriter, request *http.Request) {
	doc, ok := ws.store.Get(request.PathValue("id"))
	if !ok {
		ws.sendError(responseWriter, http.StatusNotFound, "Document not found")
		return
	}

	ws.sendJSON(responseWriter, http.StatusOK, map[string]any{
		"document_id": doc.ID,
		"filename":    doc.Filename,
		"text":        doc.FullText,
		"page_count":  doc.PageCount,
		"word_count":  doc.Corpus.WordCount(),
		"words":       doc.Corpus.Words(),
	})
}

// matchRequest is the body of a match call. Threshold and context window
// fall back to the strategy defaults when omitted.
type matchRequest struct {
	Entity        string   `json:"entity"`
	Strategy      string   `json:"strategy"`
	Threshold     *float64 `json:"threshold"`
	ContextWindow *int     `json:"context_window"`
}

// resolveConfig merges request parameters over the strategy defaults.
func (mr *matchRequest) resolveConfig() (string, match.Config) {
	strategyName := mr.Strategy
	if strategyName == "" {
		strategyName = match.StrategyExact
	}
	cfg := match.DefaultConfig(strategyName)
	if mr.Threshold != nil {
		cfg.Threshold = *mr.Threshold
	}
	if mr.ContextWindow != nil {
		cfg.ContextWindow = *mr.ContextWindow
	}
	return strategyName, cfg
}

// handleMatch locates an entity in a stored document.
func (ws *WebServer) handleMatch(responseWriter http.ResponseWriter, request *http.Request) {
	doc, ok := ws.store.Get(request.PathValue("id"))
	if !ok {
		ws.sendError(responseWriter, http.StatusNotFound, "Document not found")
		return
	}

	var body matchRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		ws.sendError(responseWriter, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	strategyName, cfg := body.resolveConfig()

	finish := ws.observer.StartTiming("web", "match")
	results, err := match.Match(body.Entity, strategyName, doc.Corpus, cfg)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		ws.sendError(responseWriter, matchErrorStatus(err), err.Error())
		return
	}
	finish(true, map[string]any{"matches": len(results), "strategy": strategyName})

	output, err := formatters.Export("json", results, formatters.Options{
		Entity:   body.Entity,
		Strategy: strategyName,
	})
	if err != nil {
		ws.sendError(responseWriter, http.StatusInternalServerError, err.Error())
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	responseWriter.Write([]byte(output))
}

// exportRequest extends a match call with an output format.
type exportRequest struct {
	matchRequest
	Format string `json:"format"`
}

// handleExport runs a match and returns the results as a downloadable file
// in the requested format.
func (ws *WebServer) handleExport(responseWriter http.ResponseWriter, request *http.Request) {
	doc, ok := ws.store.Get(request.PathValue("id"))
	if !ok {
		ws.sendError(responseWriter, http.StatusNotFound, "Document not found")
		return
	}

	var body exportRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		ws.sendError(responseWriter, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.Format == "" {
		body.Format = "json"
	}

	strategyName, cfg := body.resolveConfig()
	results, err := match.Match(body.Entity, strategyName, doc.Corpus, cfg)
	if err != nil {
		ws.sendError(responseWriter, matchErrorStatus(err), err.Error())
		return
	}

	content, mimeType, filename, err := formatters.ExportForWeb(body.Format, results, formatters.Options{
		Entity:   body.Entity,
		Strategy: strategyName,
		Verbose:  true,
		NoColor:  true,
	})
	if err != nil {
		ws.sendError(responseWriter, http.StatusBadRequest, err.Error())
		return
	}

	responseWriter.Header().Set("Content-Type", mimeType)
	responseWriter.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	responseWriter.WriteHeader(http.StatusOK)
	responseWriter.Write([]byte(content))
}

// handleDelete removes a stored document and its temporary file.
func (ws *WebServer) handleDelete(responseWriter http.ResponseWriter, request *http.Request) {
	id := request.PathValue("id")
	removed, err := ws.store.Remove(id)
	if err != nil {
		ws.sendError(responseWriter, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		ws.sendError(responseWriter, http.StatusNotFound, "Document not found")
		return
	}

	ws.sendJSON(responseWriter, http.StatusOK, map[string]any{
		"document_id": id,
		"deleted":     true,
	})
}

// entitiesRequest selects a stored document and optional entity types.
type entitiesRequest struct {
	DocumentID  string   `json:"document_id"`
	EntityTypes []string `json:"entity_types"`
}

// handleEntities extracts a flat entity list from a stored document.
func (ws *WebServer) handleEntities(responseWriter http.ResponseWriter, request *http.Request) {
	doc, body, ok := ws.entityRequestDocument(responseWriter, request)
	if !ok {
		return
	}

	entities, err := ws.entities.Entities(request.Context(), doc.FullText, body.EntityTypes)
	if err != nil {
		ws.sendError(responseWriter, entityErrorStatus(err), fmt.Sprintf("Entity extraction failed: %v", err))
		return
	}

	ws.sendJSON(responseWriter, http.StatusOK, map[string]any{
		"document_id": doc.ID,
		"entities":    entities,
	})
}

// handleEntitiesCategorized extracts entities grouped by type.
func (ws *WebServer) handleEntitiesCategorized(responseWriter http.ResponseWriter, request *http.Request) {
	doc, body, ok := ws.entityRequestDocument(responseWriter, request)
	if !ok {
		return
	}

	entities, err := ws.entities.NamedEntities(request.Context(), doc.FullText, body.EntityTypes)
	if err != nil {
		ws.sendError(responseWriter, entityErrorStatus(err), fmt.Sprintf("Entity extraction failed: %v", err))
		return
	}

	ws.sendJSON(responseWriter, http.StatusOK, map[string]any{
		"document_id": doc.ID,
		"entities":    entities,
	})
}

// entityRequestDocument decodes an entity extraction request and resolves
// its document, writing the error response itself on failure.
func (ws *WebServer) entityRequestDocument(responseWriter http.ResponseWriter, request *http.Request) (*session.Document, entitiesRequest, bool) {
	var body entitiesRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		ws.sendError(responseWriter, http.StatusBadRequest, "Invalid JSON body")
		return nil, body, false
	}

	if ws.entities == nil {
		ws.sendError(responseWriter, http.StatusServiceUnavailable,
			"Entity extraction is not configured. Set the LLM API key to enable it.")
		return nil, body, false
	}

	doc, ok := ws.store.Get(body.DocumentID)
	if !ok {
		ws.sendError(responseWriter, http.StatusNotFound, "Document not found")
		return nil, body, false
	}
	return doc, body, true
}

// handleStrategies lists the available matching strategies and their
// parameters.
func (ws *WebServer) handleStrategies(responseWriter http.ResponseWriter, request *http.Request) {
	type paramInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Default     any    `json:"default"`
	}
	type strategyInfo struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Parameters  []paramInfo `json:"parameters"`
	}

	var infos []strategyInfo
	for _, info := range match.Strategies() {
		entry := strategyInfo{Name: info.Name, Description: info.Description}
		for _, param := range info.Parameters {
			entry.Parameters = append(entry.Parameters, paramInfo{
				Name:        param.Name,
				Description: param.Description,
				Default:     param.Default,
			})
		}
		infos = append(infos, entry)
	}

	ws.sendJSON(responseWriter, http.StatusOK, map[string]any{"strategies": infos})
}

// matchErrorStatus maps matching errors to HTTP status codes.
func matchErrorStatus(err error) int {
	switch {
	case errors.Is(err, match.ErrEmptyEntity),
		errors.Is(err, match.ErrInvalidConfig),
		errors.Is(err, match.ErrUnknownStrategy):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// entityErrorStatus maps extraction errors to HTTP status codes.
func entityErrorStatus(err error) int {
	if errors.Is(err, entity.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

// errorResponse is the envelope for all error payloads.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (ws *WebServer) sendError(responseWriter http.ResponseWriter, statusCode int, message string) {
	ws.sendJSON(responseWriter, statusCode, errorResponse{Success: false, Error: message})
}

func (ws *WebServer) sendJSON(responseWriter http.ResponseWriter, statusCode int, payload any) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(statusCode)
	json.NewEncoder(responseWriter).Encode(payload)
}
