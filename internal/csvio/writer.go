package csvio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"timetablegen/pkg/model"
)

// ExportTimetable flattens the timetable into TimetableCSVRow structs
// and writes them to the CSV file at the given path.
func ExportTimetable(timetable *model.Timetable, path string) (string, error) {
	rows := flattenTimetable(timetable)

	// Remove file if exists
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ExportTimetableString renders the flattened timetable as a CSV
// string.
func ExportTimetableString(timetable *model.Timetable) (string, error) {
	rows := flattenTimetable(timetable)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshal timetable: %w", err)
	}
	return str, nil
}

// PrintTimetable writes the day-by-time display grid. Each cell shows
// its occupants as a comma-joined "<name> (<program>)" list in
// assignment order.
func PrintTimetable(w io.Writer, timetable *model.Timetable) {
	width := 8
	texts := make([][]string, len(timetable.Slots))
	for slot := range timetable.Slots {
		texts[slot] = make([]string, timetable.Days)
		for day := 1; day <= timetable.Days; day++ {
			text := cellText(timetable.At(slot, day))
			texts[slot][day-1] = text
			if len(text) > width {
				width = len(text)
			}
		}
	}

	fmt.Fprintf(w, "%-6s", "Time")
	for day := 1; day <= timetable.Days; day++ {
		fmt.Fprintf(w, " | %-*s", width, fmt.Sprintf("Day %d", day))
	}
	fmt.Fprintln(w)
	for slot, label := range timetable.Slots {
		fmt.Fprintf(w, "%-6s", label)
		for day := 1; day <= timetable.Days; day++ {
			fmt.Fprintf(w, " | %-*s", width, texts[slot][day-1])
		}
		fmt.Fprintln(w)
	}
}

func cellText(cell *model.Cell) string {
	entries := lo.Map(cell.Courses, func(c *model.Course, _ int) string {
		return fmt.Sprintf("%s (%s)", c.Name, c.Program)
	})
	return strings.Join(entries, ", ")
}

func flattenTimetable(timetable *model.Timetable) []*model.TimetableCSVRow {
	var formatted []*model.TimetableCSVRow
	for slot, label := range timetable.Slots {
		for day := 1; day <= timetable.Days; day++ {
			for _, c := range timetable.At(slot, day).Courses {
				formatted = append(formatted, &model.TimetableCSVRow{
					Slot:     label,
					Day:      day,
					Course:   c.Name,
					Program:  c.Program,
					Lecturer: c.Lecturer,
				})
			}
		}
	}
	return formatted
}
