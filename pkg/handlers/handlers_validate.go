package handlers

import (
	"net/http"

	"github.com/arnavshah/shift-optimizer-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput performs structural validation of a schedule request without
// running the optimizer. The min <= max check lives here because the
// algorithm itself assumes it rather than enforcing it.
func (h *Handler) ValidateInput(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(req.Staff) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one staff member is required",
		})
		return
	}

	if len(req.Dates) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one date is required",
		})
		return
	}

	staffIDs := make(map[string]bool)
	for _, s := range req.Staff {
		if staffIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate staff ID: " + s.ID})
			return
		}
		staffIDs[s.ID] = true
	}

	dateTokens := make(map[string]bool)
	for _, d := range req.Dates {
		if dateTokens[d] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate date: " + d})
			return
		}
		dateTokens[d] = true
	}

	if req.Constraints.MinStaffPerDay != nil && req.Constraints.MaxStaffPerDay != nil &&
		*req.Constraints.MinStaffPerDay > *req.Constraints.MaxStaffPerDay {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "min_staff_per_day must not exceed max_staff_per_day",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"staff_count": len(req.Staff),
			"date_count":  len(req.Dates),
		},
	})
}
