package main

import (
	"timetablegen/internal/csvio"
	"timetablegen/internal/scheduler"
)

const (
	UploadDir    = "db/"
	GeneratedDir = "db/generated/"
	Delimiter    = ','
)

// createAndExportTimetable runs one generation pass over the uploaded
// course file and writes the resulting timetable to exportFile. Any of
// the load or scheduling errors aborts the run with nothing written.
func createAndExportTimetable(coursesFile string, exportFile string, days int, start string, end string) error {
	courses, err := csvio.LoadCourses(coursesFile, Delimiter)
	if err != nil {
		return err
	}

	timetable, err := scheduler.Generate(courses, days, start, end)
	if err != nil {
		return err
	}

	_, err = csvio.ExportTimetable(timetable, exportFile)
	return err
}
