package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/arnavshah/shift-optimizer-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// OptimizeCSV handles a CSV roster upload. The staff_file columns are
// id, name, preferred_dates, unavailable_dates, max_days with date lists
// separated by "|". Dates and constraints arrive as form fields. The response
// carries the shift list rendered back as CSV.
func (h *Handler) OptimizeCSV(c *gin.Context) {
	staffFile, _ := c.FormFile("staff_file")
	if staffFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff_file is required"})
		return
	}

	datesField := c.PostForm("dates")
	if datesField == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates form field is required"})
		return
	}
	var dates []string
	for _, d := range strings.Split(datesField, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dates = append(dates, d)
		}
	}

	sFile, err := staffFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open staff file"})
		return
	}
	defer sFile.Close()

	sReader := csv.NewReader(sFile)
	sHeader, err := sReader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read staff header"})
		return
	}
	sCols := make(map[string]int)
	for i, name := range sHeader {
		sCols[name] = i
	}

	var staff []models.StaffMember
	for {
		record, err := sReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		member := models.StaffMember{ID: record[sCols["id"]]}
		if idx, ok := sCols["name"]; ok {
			member.Name = record[idx]
		}
		if idx, ok := sCols["preferred_dates"]; ok && record[idx] != "" {
			member.PreferredDates = strings.Split(record[idx], "|")
		}
		if idx, ok := sCols["unavailable_dates"]; ok && record[idx] != "" {
			member.UnavailableDates = strings.Split(record[idx], "|")
		}
		if idx, ok := sCols["max_days"]; ok && record[idx] != "" {
			if maxDays, err := strconv.Atoi(record[idx]); err == nil {
				member.MaxDays = &maxDays
			}
		}
		staff = append(staff, member)
	}

	req := models.ScheduleRequest{
		Staff:  staff,
		Dates:  dates,
		Engine: c.PostForm("engine"),
		Strict: c.PostForm("strict") == "true",
	}
	if v := c.PostForm("min_staff_per_day"); v != "" {
		if minStaff, err := strconv.Atoi(v); err == nil {
			req.Constraints.MinStaffPerDay = &minStaff
		}
	}
	if v := c.PostForm("max_staff_per_day"); v != "" {
		if maxStaff, err := strconv.Atoi(v); err == nil {
			req.Constraints.MaxStaffPerDay = &maxStaff
		}
	}

	result := h.selectAssigner(req.Engine).Optimize(&req)

	h.RecordUsage(c, len(staff), len(dates))

	if !result.Success {
		c.JSON(http.StatusOK, result)
		return
	}

	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"staff_id", "date", "start_time", "end_time"})
	for _, shift := range result.Shifts {
		writer.Write([]string{shift.StaffID, shift.Date, shift.StartTime, shift.EndTime})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{
		"csv":        outCSV.String(),
		"statistics": result.Statistics,
		"warnings":   result.Warnings,
	})
}
