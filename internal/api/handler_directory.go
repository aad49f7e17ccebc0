// internal/api/handler_directory.go
package api

import (
	"net/http"

	"vitalis-server/internal/directory"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the static doctor and specialty directory.
type DirectoryHandler struct {
	svc *directory.Service
}

func NewDirectoryHandler(svc *directory.Service) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// ListDoctors handles GET /api/doctors. An optional specialty query filters
// the roster.
func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	if specialty := c.Query("specialty"); specialty != "" {
		c.JSON(http.StatusOK, gin.H{"doctors": h.svc.DoctorsBySpecialty(specialty)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": h.svc.Doctors()})
}

// GetDoctor handles GET /api/doctors/:id.
func (h *DirectoryHandler) GetDoctor(c *gin.Context) {
	d, ok := h.svc.DoctorByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": d})
}

// ListSpecialties handles GET /api/specialties.
func (h *DirectoryHandler) ListSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.svc.Specialties()})
}
