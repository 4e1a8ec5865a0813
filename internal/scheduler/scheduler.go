package scheduler

import (
	"timetablegen/pkg/model"
)

// Generate builds the slot grid for the given time range and day count,
// then places every course into its first conflict-free cell. Courses
// are taken in input order; within each course, slots are scanned
// chronologically and days 1..days within each slot. Either every
// course is placed or the run fails with a PlacementError and no
// timetable is returned.
func Generate(courses []*model.Course, days int, start string, end string) (*model.Timetable, error) {
	slots, err := BuildSlots(start, end)
	if err != nil {
		return nil, err
	}
	timetable := model.NewTimetable(slots, days)
	if err := FillCourses(courses, timetable, DefaultRules); err != nil {
		return nil, err
	}
	return timetable, nil
}

// FillCourses tries to assign a cell for all courses under the given
// rules. First-fit only: placed courses are never moved to make room
// for a later one.
func FillCourses(courses []*model.Course, timetable *model.Timetable, rules []ConflictRule) error {
	for _, course := range courses {
		if !placeCourse(course, timetable, rules) {
			return &model.PlacementError{Course: course}
		}
	}
	return nil
}

// placeCourse appends the course to the first cell admitting it.
func placeCourse(course *model.Course, timetable *model.Timetable, rules []ConflictRule) bool {
	for slot := range timetable.Slots {
		for day := 1; day <= timetable.Days; day++ {
			cell := timetable.At(slot, day)
			if conflicts(course, cell, rules) {
				continue
			}
			cell.Courses = append(cell.Courses, course)
			return true
		}
	}
	return false
}
