package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quantum-dispatch/internal/api/models"
	"quantum-dispatch/internal/config"
	"quantum-dispatch/internal/logger"
)

// ProfileHandler serves the site profile presets.
type ProfileHandler struct {
	dir string
	log logger.Logger
}

func NewProfileHandler(dir string, log logger.Logger) *ProfileHandler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &ProfileHandler{dir: dir, log: log}
}

// ListProfiles handles GET /api/profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := config.ListProfiles(h.dir)
	if err != nil {
		h.log.Warnf("list profiles in %s: %v", h.dir, err)
		c.JSON(http.StatusOK, gin.H{"profiles": []models.ProfileInfo{}})
		return
	}

	out := make([]models.ProfileInfo, len(profiles))
	for i, p := range profiles {
		out[i] = models.ProfileInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			BatteryMW:   p.BatteryMW,
			SolarMW:     p.SolarMW,
			WindMW:      p.WindMW,
		}
	}
	c.JSON(http.StatusOK, gin.H{"profiles": out})
}
