package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quantum-dispatch/internal/api/models"
	"quantum-dispatch/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "1.0.0"

// InfoHandler reports solver backend information.
type InfoHandler struct {
	cfg *config.Config
}

func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{cfg: cfg}
}

// QuantumInfo handles GET /api/quantum-info.
func (h *InfoHandler) QuantumInfo(c *gin.Context) {
	annealCfg := h.cfg.Solver.ToAnnealConfig()
	annealCfg.SetDefaults()
	c.JSON(http.StatusOK, models.InfoResponse{
		Backend:   "QUBO sampler",
		Version:   Version,
		Algorithm: "Quantum-inspired simulated annealing",
		Reads:     annealCfg.Reads,
		Sweeps:    annealCfg.Sweeps,
		Available: true,
	})
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: "healthy",
		Solver: "ready",
	})
}
