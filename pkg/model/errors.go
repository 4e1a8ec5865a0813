package model

import (
	"fmt"
	"strings"
)

// TimeFormatError reports a clock string that does not parse as a
// 12-hour time with meridiem. It is raised before any grid or
// assignment work begins.
type TimeFormatError struct {
	Input string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected a 12-hour clock value such as \"9am\" or \"2pm\"", e.Input)
}

// SchemaError reports required columns missing from the course input.
// It is raised once at load time, never per row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "course input is missing required columns: " + strings.Join(e.Missing, ", ")
}

// PlacementError reports a course that fits in no cell of the grid.
// The run that produced it yields no timetable.
type PlacementError struct {
	Course *Course
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("no conflict-free cell for course %q (program %s, lecturer %s)",
		e.Course.Name, e.Course.Program, e.Course.Lecturer)
}
