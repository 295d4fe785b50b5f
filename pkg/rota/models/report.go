package models

// Report maps weekday label (e.g. "Mon") to that day's assignment.
type Report map[string]DayAssignment
