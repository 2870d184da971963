package models

// StaffMember represents a person that can be assigned to shifts
type StaffMember struct {
	ID               string   `json:"id"`
	Name             string   `json:"name,omitempty"`
	PreferredDates   []string `json:"preferred_dates,omitempty"`
	UnavailableDates []string `json:"unavailable_dates,omitempty"`
	MaxDays          *int     `json:"max_days,omitempty"`
	MinDays          *int     `json:"min_days,omitempty"`
}

// Constraints holds the per-day staffing bounds. Nil fields fall back to the
// optimizer defaults.
type Constraints struct {
	MinStaffPerDay *int `json:"min_staff_per_day,omitempty"`
	MaxStaffPerDay *int `json:"max_staff_per_day,omitempty"`
}

// ScheduleRequest is the data structure for the optimize endpoint.
// Dates are opaque tokens; the optimizer never parses them as calendar dates.
type ScheduleRequest struct {
	Staff       []StaffMember `json:"staff"`
	Dates       []string      `json:"dates"`
	Constraints Constraints   `json:"constraints"`
	Engine      string        `json:"engine,omitempty"`
	Strict      bool          `json:"strict,omitempty"`
}

// Shift represents one staff-date assignment with its fixed time window
type Shift struct {
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Statistics summarizes a completed optimization run
type Statistics struct {
	TotalShifts       int            `json:"total_shifts"`
	TotalDays         int            `json:"total_days"`
	TotalStaff        int            `json:"total_staff"`
	AvgShiftsPerStaff float64        `json:"avg_shifts_per_staff"`
	StaffWorkCounts   map[string]int `json:"staff_work_counts"`
	ShortfallDays     int            `json:"shortfall_days"`
	FairnessScore     float64        `json:"fairness_score"`
}

// OptimizeResult is the data structure for the optimization outcome.
// Either Success is false and Error explains why, or Success is true and
// Shifts/Statistics are populated (Warnings may still flag shortage days).
type OptimizeResult struct {
	Success    bool        `json:"success"`
	Error      string      `json:"error,omitempty"`
	Status     string      `json:"status,omitempty"`
	Shifts     []Shift     `json:"shifts,omitempty"`
	Statistics *Statistics `json:"statistics,omitempty"`
	Warnings   []string    `json:"warnings,omitempty"`
}
