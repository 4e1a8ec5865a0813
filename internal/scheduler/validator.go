package scheduler

import (
	"fmt"

	"timetablegen/pkg/model"
)

// Validate checks a finished timetable for conflicts and for dropped or
// duplicated courses. Returns false and a report for invalid
// timetables.
func Validate(courses []*model.Course, timetable *model.Timetable) (bool, string) {
	var message string
	var valid bool = true
	var hasConflict bool = false
	var allPlaced bool = true

	placements := make(map[*model.Course]int)
	for slot := range timetable.Slots {
		for day := 1; day <= timetable.Days; day++ {
			cell := timetable.At(slot, day)
			for i, c1 := range cell.Courses {
				placements[c1]++
				for _, c2 := range cell.Courses[i+1:] {
					if SameLecturer(c1, c2) {
						valid = false
						hasConflict = true
						message += fmt.Sprintf("- %q and %q share lecturer %s at %s day %d\n",
							c1.Name, c2.Name, c1.Lecturer, timetable.Slots[slot], day)
					}
					if SameProgram(c1, c2) {
						valid = false
						hasConflict = true
						message += fmt.Sprintf("- %q and %q share program %s at %s day %d\n",
							c1.Name, c2.Name, c1.Program, timetable.Slots[slot], day)
					}
				}
			}
		}
	}

	for _, c := range courses {
		switch placements[c] {
		case 1:
		case 0:
			valid = false
			allPlaced = false
			message += fmt.Sprintf("- %q (%s) was not placed\n", c.Name, c.Program)
		default:
			valid = false
			allPlaced = false
			message += fmt.Sprintf("- %q (%s) was placed %d times\n", c.Name, c.Program, placements[c])
		}
	}

	if hasConflict {
		message = "[FAIL]: Cell conflict check.\n" + message
	} else {
		message = "[  OK]: Cell conflict check.\n" + message
	}
	if !allPlaced {
		message = "[FAIL]: Course placement check.\n" + message
	} else {
		message = "[  OK]: Course placement check.\n" + message
	}

	return valid, message
}
