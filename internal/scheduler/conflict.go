package scheduler

import (
	"github.com/samber/lo"

	"timetablegen/pkg/model"
)

// ConflictRule reports whether two courses cannot share a cell.
type ConflictRule func(a *model.Course, b *model.Course) bool

// SameLecturer flags two courses taught by the same lecturer.
func SameLecturer(a *model.Course, b *model.Course) bool {
	return a.Lecturer == b.Lecturer
}

// SameProgram flags two courses belonging to the same program.
func SameProgram(a *model.Course, b *model.Course) bool {
	return a.Program == b.Program
}

// DefaultRules are the two conflict axes checked on every placement.
// Each axis is evaluated independently against every occupant.
var DefaultRules = []ConflictRule{SameLecturer, SameProgram}

// conflicts reports whether the candidate clashes with any occupant of
// the cell under any rule. An empty cell never conflicts.
func conflicts(candidate *model.Course, cell *model.Cell, rules []ConflictRule) bool {
	return lo.SomeBy(cell.Courses, func(occupant *model.Course) bool {
		return lo.SomeBy(rules, func(rule ConflictRule) bool {
			return rule(candidate, occupant)
		})
	})
}
