package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"timetablegen/pkg/model"
)

// RequiredColumns are the headers every course input must carry.
// Checked once against the header row before any rows are parsed.
var RequiredColumns = []string{"course name", "course unit", "lecture name", "program"}

// LoadCourses reads and parses the given csv file for course data.
// A missing required column fails the whole load with a SchemaError
// naming every absent column.
func LoadCourses(path string, delim rune) ([]*model.Course, error) {
	coursesFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer coursesFile.Close()

	if err := checkSchema(coursesFile, delim); err != nil {
		return nil, err
	}
	if _, err := coursesFile.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	courses := []*model.Course{}
	if err := gocsv.UnmarshalFile(coursesFile, &courses); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return courses, nil
}

// checkSchema reads the header row and reports every required column
// that is absent.
func checkSchema(in io.Reader, delim rune) error {
	r := csv.NewReader(in)
	r.Comma = delim
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	present := lo.Map(header, func(column string, _ int) string {
		return strings.ToLower(strings.TrimSpace(column))
	})
	missing := lo.Filter(RequiredColumns, func(column string, _ int) bool {
		return !lo.Contains(present, column)
	})
	if len(missing) > 0 {
		return &model.SchemaError{Missing: missing}
	}
	return nil
}
