package model

// Cell holds the courses assigned to one (slot, day) pair in
// assignment order.
type Cell struct {
	Courses []*Course
}

// Timetable is the full day-by-time grid. Slots are chronological
// labels ("09AM", "10AM", ...); days are numbered 1..Days. Cells is
// indexed by slot position first, then zero-based day.
type Timetable struct {
	Slots []string
	Days  int
	Cells [][]*Cell
}

// TimetableCSVRow is the flattened export format, one row per placed
// course.
type TimetableCSVRow struct {
	Slot     string `csv:"time"`
	Day      int    `csv:"day"`
	Course   string `csv:"course_name"`
	Program  string `csv:"program"`
	Lecturer string `csv:"lecturer"`
}

// NewTimetable creates an empty timetable for the given slot labels
// and day count.
func NewTimetable(slots []string, days int) *Timetable {
	timetable := Timetable{Slots: slots, Days: days, Cells: make([][]*Cell, len(slots))}
	for i := range timetable.Cells {
		timetable.Cells[i] = make([]*Cell, days)
		for j := 0; j < days; j++ {
			timetable.Cells[i][j] = new(Cell)
		}
	}
	return &timetable
}

// At returns the cell for a slot position and a 1-based day.
func (t *Timetable) At(slot int, day int) *Cell {
	return t.Cells[slot][day-1]
}
