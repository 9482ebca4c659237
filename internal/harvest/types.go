package harvest

// Ref identifies a named Harvest resource inside another payload.
type Ref struct {
	// ID is the resource identifier.
	ID int64 `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
}

// User is the authenticated Harvest user.
type User struct {
	// ID is the user identifier.
	ID int64 `json:"id"`
	// FirstName is the user's first name.
	FirstName string `json:"first_name"`
	// LastName is the user's last name.
	LastName string `json:"last_name"`
	// Email is the login email.
	Email string `json:"email"`
	// Timezone is the user's configured timezone.
	Timezone string `json:"timezone"`
	// IsActive reports whether the account is active.
	IsActive bool `json:"is_active"`
}

// TaskAssignment links a billable task to a project.
type TaskAssignment struct {
	// ID is the assignment identifier.
	ID int64 `json:"id"`
	// IsActive reports whether the assignment is usable.
	IsActive bool `json:"is_active"`
	// Task is the assigned task.
	Task Ref `json:"task"`
}

// ProjectAssignment links the current user to a project and its tasks.
type ProjectAssignment struct {
	// ID is the assignment identifier.
	ID int64 `json:"id"`
	// IsActive reports whether the assignment is usable.
	IsActive bool `json:"is_active"`
	// Client owns the project.
	Client Ref `json:"client"`
	// Project is the assigned project.
	Project struct {
		Ref
		// Code is the optional project code.
		Code string `json:"code"`
	} `json:"project"`
	// TaskAssignments lists tasks available on the project.
	TaskAssignments []TaskAssignment `json:"task_assignments"`
}

// ProjectAssignmentsPage is one page of project assignments.
type ProjectAssignmentsPage struct {
	// ProjectAssignments holds the page contents.
	ProjectAssignments []ProjectAssignment `json:"project_assignments"`
}

// TimeEntry is a single tracked block of time.
type TimeEntry struct {
	// ID is the entry identifier.
	ID int64 `json:"id"`
	// SpentDate is the canonical date the time was logged on.
	SpentDate string `json:"spent_date"`
	// Hours is the tracked duration; still accumulating while running.
	Hours float64 `json:"hours"`
	// Notes is free-form entry text.
	Notes string `json:"notes"`
	// IsRunning reports whether the entry is an active timer.
	IsRunning bool `json:"is_running"`
	// TimerStartedAt is set while the timer runs.
	TimerStartedAt string `json:"timer_started_at"`
	// User owns the entry.
	User Ref `json:"user"`
	// Client owns the project.
	Client Ref `json:"client"`
	// Project the time was logged against.
	Project Ref `json:"project"`
	// Task the time was logged against.
	Task Ref `json:"task"`
}

// TimeEntriesPage is one page of time entries.
type TimeEntriesPage struct {
	// TimeEntries holds the page contents.
	TimeEntries []TimeEntry `json:"time_entries"`
	// TotalEntries is the total match count across pages.
	TotalEntries int `json:"total_entries"`
}

// CreateTimeEntry is the payload for creating a time entry. A nil Hours
// starts a running timer; a set Hours records a completed entry.
type CreateTimeEntry struct {
	// ProjectID selects the project.
	ProjectID int64 `json:"project_id"`
	// TaskID selects the task.
	TaskID int64 `json:"task_id"`
	// SpentDate is the canonical date for the entry.
	SpentDate string `json:"spent_date"`
	// Hours is the completed duration, omitted for running timers.
	Hours *float64 `json:"hours,omitempty"`
	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty"`
}
