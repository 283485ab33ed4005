package viewer

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairai-labs/fairctl/internal/domain"
	"github.com/fairai-labs/fairctl/internal/util"
)

const runListLimit = 100

type runRow struct {
	ID        string
	Kind      string
	ModelFile string
	Threshold float64
	Status    string
	CreatedAt string
}

func toRow(run *domain.EvaluationRun) runRow {
	return runRow{
		ID:        run.ID,
		Kind:      run.Kind,
		ModelFile: run.ModelFile,
		Threshold: run.Threshold,
		Status:    run.Status,
		CreatedAt: util.FormatDateTime(run.CreatedAt),
	}
}

func (s *Server) handleRunList(c *gin.Context) {
	runs, err := s.runs.List(c.Request.Context(), runListLimit)
	if err != nil {
		s.logger.Error("failed to list runs", "error", err)
		c.String(http.StatusInternalServerError, "failed to list runs")
		return
	}

	rows := make([]runRow, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, toRow(run))
	}
	c.HTML(http.StatusOK, "runs", gin.H{"Rows": rows})
}

func (s *Server) handleRunDetail(c *gin.Context) {
	run, err := s.runs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.logger.Error("failed to get run", "error", err)
		c.String(http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		c.String(http.StatusNotFound, "run not found")
		return
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(run.Metrics), "", "  "); err != nil {
		pretty.WriteString(run.Metrics)
	}

	c.HTML(http.StatusOK, "run", gin.H{
		"Run":     toRow(run),
		"Message": run.Message,
		"Metrics": pretty.String(),
	})
}

func (s *Server) handleAPIRuns(c *gin.Context) {
	runs, err := s.runs.List(c.Request.Context(), runListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "runs": toAPIRuns(runs)})
}

func (s *Server) handleAPIRun(c *gin.Context) {
	run, err := s.runs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to get run"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "run not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "run": toAPIRun(run)})
}

type apiRun struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	ModelFile string          `json:"model_file"`
	Threshold float64         `json:"threshold"`
	Status    string          `json:"status"`
	Message   string          `json:"message,omitempty"`
	Metrics   json.RawMessage `json:"metrics"`
	CreatedAt string          `json:"created_at"`
}

func toAPIRun(run *domain.EvaluationRun) apiRun {
	metrics := json.RawMessage(run.Metrics)
	if !json.Valid(metrics) {
		metrics = json.RawMessage("{}")
	}
	return apiRun{
		ID:        run.ID,
		Kind:      run.Kind,
		ModelFile: run.ModelFile,
		Threshold: run.Threshold,
		Status:    run.Status,
		Message:   run.Message,
		Metrics:   metrics,
		CreatedAt: run.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toAPIRuns(runs []*domain.EvaluationRun) []apiRun {
	out := make([]apiRun, 0, len(runs))
	for _, run := range runs {
		out = append(out, toAPIRun(run))
	}
	return out
}
