// Package jsonio loads course inputs from JSON files. The expected
// shape is an array of objects carrying the same fields as the CSV
// input columns.
package jsonio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"timetablegen/internal/csvio"
	"timetablegen/pkg/model"
)

// LoadCourses reads and decodes the given json file for course data.
// A required field absent from any row fails the whole load with a
// SchemaError, checked once before decoding.
func LoadCourses(path string) ([]*model.Course, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := checkSchema(rows); err != nil {
		return nil, err
	}

	courses := make([]*model.Course, 0, len(rows))
	for _, row := range rows {
		var course model.Course
		if err := mapstructure.Decode(row, &course); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		courses = append(courses, &course)
	}
	return courses, nil
}

// checkSchema reports every required field that some row lacks. The
// required field set is shared with the CSV loader.
func checkSchema(rows []map[string]any) error {
	missing := lo.Filter(csvio.RequiredColumns, func(column string, _ int) bool {
		return lo.SomeBy(rows, func(row map[string]any) bool {
			_, ok := row[column]
			return !ok
		})
	})
	if len(missing) > 0 {
		return &model.SchemaError{Missing: missing}
	}
	return nil
}
