// Package httpadapter exposes the engine over a JSON API. It consumes
// engine outputs only; rendering, input handling and persistence live
// with the callers.
package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/flow"
	"svw.info/nonogram/internal/ports"
	"svw.info/nonogram/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, Logger: logger}
}

// Register mounts the API routes plus the request logging middleware.
func (h *Handler) Register(r *gin.Engine) {
	r.Use(h.requestLogger())
	api := r.Group("/api")
	api.POST("/generate", h.handleGenerate)
	api.POST("/solve", h.handleSolve)
	api.POST("/hint", h.handleHint)
	api.POST("/autofill", h.handleAutoFill)
	api.POST("/validate", h.handleValidate)
	api.POST("/analyze", h.handleAnalyze)
}

// requestLogger logs method, path, status and duration per request.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.Logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

// ---- Generate ----

type generateReq struct {
	Size        int    `json:"size" binding:"required,min=2,max=50"`
	Difficulty  string `json:"difficulty,omitempty"`
	Seed        int64  `json:"seed,omitempty"`
	OptimalFlow bool   `json:"optimalFlow,omitempty"`
	Candidates  int    `json:"candidates,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)

	var (
		p   *domain.Puzzle
		st  ports.Stats
		err error
	)
	if req.OptimalFlow {
		p, st, err = h.UC.GenerateOptimalFlow(c.Request.Context(), seed, req.Size, diff, req.Candidates)
	} else {
		p, st, err = h.UC.Generate(c.Request.Context(), seed, req.Size, diff)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Solve ----

type solveReq struct {
	Size     int                   `json:"size" binding:"required,min=2,max=50"`
	RowClues []domain.ClueSequence `json:"rowClues" binding:"required"`
	ColClues []domain.ClueSequence `json:"colClues" binding:"required"`
}

type solveResp struct {
	Solution   [][]bool `json:"solution,omitempty"`
	Solvable   bool     `json:"solvable"`
	DurationMs int64    `json:"durationMs"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.RowClues) != req.Size || len(req.ColClues) != req.Size {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	sol, ok, st, err := h.UC.Solve(c.Request.Context(), req.RowClues, req.ColClues, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{Solution: sol, Solvable: ok, DurationMs: st.Duration.Milliseconds()})
}

// ---- Hint / AutoFill / Validate ----

type gridReq struct {
	Grid     domain.Grid           `json:"grid" binding:"required"`
	RowClues []domain.ClueSequence `json:"rowClues" binding:"required"`
	ColClues []domain.ClueSequence `json:"colClues" binding:"required"`
}

func (r *gridReq) valid() bool {
	size := r.Grid.Size()
	if size == 0 || len(r.RowClues) != size || len(r.ColClues) != size {
		return false
	}
	for _, row := range r.Grid {
		if len(row) != size {
			return false
		}
	}
	return true
}

type hintResp struct {
	Hint      *domain.Hint `json:"hint,omitempty"`
	Available bool         `json:"available"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	hint, ok, err := h.UC.Hint(c.Request.Context(), req.Grid, req.RowClues, req.ColClues)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := hintResp{Available: ok}
	if ok {
		resp.Hint = &hint
	}
	c.JSON(http.StatusOK, resp)
}

type autoFillResp struct {
	Grid   domain.Grid `json:"grid"`
	Marked int         `json:"marked"`
}

func (h *Handler) handleAutoFill(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	// The decoded grid is this request's own working copy.
	n, err := h.UC.AutoFill(c.Request.Context(), req.Grid, req.RowClues, req.ColClues)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, autoFillResp{Grid: req.Grid, Marked: n})
}

type validateResp struct {
	OK        bool             `json:"ok"`
	Conflicts []domain.LineRef `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Grid, req.RowClues, req.ColClues)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Analyze ----

type analyzeResp struct {
	Analysis *domain.FlowAnalysis `json:"analysis"`
	Report   string               `json:"report"`
}

func (h *Handler) handleAnalyze(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.RowClues) != req.Size || len(req.ColClues) != req.Size {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	a, err := h.UC.Analyze(c.Request.Context(), req.RowClues, req.ColClues, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analyzeResp{Analysis: a, Report: flow.Report(a)})
}
