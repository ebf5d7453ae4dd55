// Package api exposes the Database facade over HTTP using gin, the
// thin single-database convenience shell SPEC_FULL.md's DOMAIN STACK
// section calls for. spec.md's Non-goals explicitly exclude
// respecifying "the UI shell and the CLI" — this package is that
// excluded surface, kept deliberately thin: every handler is a direct
// pass-through to database.Database, with no query logic of its own.
//
// Grounded on the teacher's api/handlers.go (API struct wrapping the
// engine, SetupRoutes building a *gin.Engine, gin.H error bodies) but
// reduced to the single-instance, no-multi-index surface spec.md §6
// actually specifies.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/go-ir/lexicon/database"
	"github.com/go-ir/lexicon/internal/boolean"
	"github.com/go-ir/lexicon/internal/metrics"
)

// API holds the dependencies shared by every handler: the single
// Database instance this process serves, and the Prometheus
// collectors wired per SPEC_FULL.md's DOMAIN STACK.
type API struct {
	db      *database.Database
	metrics *metrics.Metrics
}

// NewAPI constructs an API bound to db, recording metrics via m.
func NewAPI(db *database.Database, m *metrics.Metrics) *API {
	return &API{db: db, metrics: m}
}

// SetupRoutes registers every route spec.md §6's programmatic contract
// names, plus /health and /metrics.
func SetupRoutes(router *gin.Engine, db *database.Database, m *metrics.Metrics) {
	a := NewAPI(db, m)

	router.GET("/health", a.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/stats", a.StatsHandler)

	router.POST("/documents", a.AddDocumentHandler)
	router.GET("/documents/:id", a.GetDocumentHandler)

	router.GET("/search", a.SearchHandler)
	router.GET("/boolean", a.BooleanQueryHandler)

	router.POST("/clear", a.ClearHandler)
}

// HealthCheckHandler reports process liveness, grounded on the
// teacher's HealthCheckHandler.
func (a *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lexicon",
	})
}

// AddDocumentHandler handles POST /documents.
func (a *API) AddDocumentHandler(c *gin.Context) {
	var req AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("invalid request body: "+err.Error()))
		return
	}

	var docID uint32
	if req.Title != "" {
		docID = a.db.AddDocumentWithTitle(req.Content, req.Title)
	} else {
		docID = a.db.AddDocument(req.Content)
	}

	a.metrics.DocumentsIngested.Inc()
	if a.db.CompressDocuments() {
		a.metrics.BytesCompressed.Add(float64(len(req.Content)))
	}
	c.JSON(http.StatusCreated, AddDocumentResponse{DocumentID: docID})
}

// GetDocumentHandler handles GET /documents/:id.
func (a *API) GetDocumentHandler(c *gin.Context) {
	id, err := parseDocID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err.Error()))
		return
	}

	resp := DocumentResponse{DocumentID: id}
	if content, ok := a.db.Document(id); ok {
		resp.Content = &content
		if a.db.CompressDocuments() {
			a.metrics.BytesDecompressed.Add(float64(len(content)))
		}
	}
	if title, ok := a.db.Title(id); ok {
		resp.Title = &title
	}

	if resp.Content == nil && resp.Title == nil {
		c.JSON(http.StatusNotFound, newErrorResponse("document not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchHandler handles GET /search?q=...&k=....
func (a *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	topK := 10
	if v := c.Query("k"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, newErrorResponse("k must be a non-negative integer"))
			return
		}
		topK = parsed
	}

	start := time.Now()
	hits := a.db.Search(query, topK)
	a.metrics.SearchLatency.WithLabelValues("tfidf").Observe(time.Since(start).Seconds())

	resp := SearchResponse{QueryID: uuid.New().String(), Query: query, Hits: make([]SearchHit, 0, len(hits))}
	for _, h := range hits {
		resp.Hits = append(resp.Hits, SearchHit{DocumentID: h.DocID, Score: h.Score})
	}
	c.JSON(http.StatusOK, resp)
}

// BooleanQueryHandler handles GET /boolean?expr=.... Malformed
// expressions are rejected with 400 via boolean.ValidateExpr, the
// strict diagnostic variant spec.md §9 open question (b) permits;
// the underlying Database.BooleanQuery itself stays lenient.
func (a *API) BooleanQueryHandler(c *gin.Context) {
	expr := c.Query("expr")

	if err := boolean.ValidateExpr(expr); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("malformed boolean expression: "+err.Error()))
		return
	}

	start := time.Now()
	ids := a.db.BooleanQuery(expr)
	a.metrics.SearchLatency.WithLabelValues("boolean").Observe(time.Since(start).Seconds())
	a.metrics.BooleanQueriesTotal.Inc()

	c.JSON(http.StatusOK, BooleanQueryResponse{
		QueryID:     uuid.New().String(),
		Expression:  expr,
		DocumentIDs: ids,
	})
}

// StatsHandler handles GET /stats.
func (a *API) StatsHandler(c *gin.Context) {
	stats := a.db.Stats()
	a.metrics.TermCount.Set(float64(stats.TermCount))
	c.JSON(http.StatusOK, StatsResponse{
		DocumentCount:         stats.DocumentCount,
		TermCount:             stats.TermCount,
		AverageDocumentLength: stats.AverageDocumentLength,
	})
}

// ClearHandler handles POST /clear.
func (a *API) ClearHandler(c *gin.Context) {
	a.db.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "database cleared"})
}

func parseDocID(raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errInvalidDocID
	}
	return uint32(v), nil
}

var errInvalidDocID = errors.New("document id must be a non-negative integer")
