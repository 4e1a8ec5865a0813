package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetablegen/pkg/model"
)

func course(name string, lecturer string, program string) *model.Course {
	return &model.Course{Name: name, Unit: "3", Lecturer: lecturer, Program: program}
}

func TestGenerate(t *testing.T) {
	t.Run("distinct courses share the single cell", func(t *testing.T) {
		courses := []*model.Course{
			course("Algebra", "Turing", "Math"),
			course("Poetry", "Plath", "Lit"),
			course("Biology", "Darwin", "Bio"),
		}
		timetable, err := Generate(courses, 1, "9am", "9am")
		require.NoError(t, err)
		require.Equal(t, []string{"09AM"}, timetable.Slots)
		assert.Equal(t, courses, timetable.At(0, 1).Courses)
	})

	t.Run("same lecturer on a one-cell grid fails", func(t *testing.T) {
		courses := []*model.Course{
			course("Algebra", "Turing", "Math"),
			course("Logic", "Turing", "CS"),
		}
		timetable, err := Generate(courses, 1, "9am", "9am")
		require.Error(t, err)
		assert.Nil(t, timetable)

		var placementErr *model.PlacementError
		require.True(t, errors.As(err, &placementErr))
		assert.Equal(t, "Logic", placementErr.Course.Name)
	})

	t.Run("same lecturer spreads across days", func(t *testing.T) {
		courses := []*model.Course{
			course("Algebra", "Turing", "Math"),
			course("Logic", "Turing", "CS"),
		}
		timetable, err := Generate(courses, 2, "9am", "9am")
		require.NoError(t, err)
		assert.Equal(t, []*model.Course{courses[0]}, timetable.At(0, 1).Courses)
		assert.Equal(t, []*model.Course{courses[1]}, timetable.At(0, 2).Courses)
	})

	t.Run("same program spreads across slots before failing", func(t *testing.T) {
		courses := []*model.Course{
			course("Algebra", "Turing", "Math"),
			course("Geometry", "Noether", "Math"),
			course("Topology", "Riemann", "Math"),
		}
		timetable, err := Generate(courses, 1, "9am", "11am")
		require.NoError(t, err)
		for i, c := range courses {
			assert.Equal(t, []*model.Course{c}, timetable.At(i, 1).Courses)
		}
	})

	t.Run("format error precedes any placement", func(t *testing.T) {
		courses := []*model.Course{course("Algebra", "Turing", "Math")}
		timetable, err := Generate(courses, 1, "noon", "2pm")
		assert.Nil(t, timetable)

		var formatErr *model.TimeFormatError
		require.True(t, errors.As(err, &formatErr))
	})

	t.Run("first fit is greedy, not optimal", func(t *testing.T) {
		// Algebra takes the first cell it does not need exclusively,
		// pushing Geometry later. No reassignment happens.
		courses := []*model.Course{
			course("Algebra", "Turing", "Math"),
			course("Logic", "Turing", "CS"),
			course("Geometry", "Noether", "Math"),
		}
		timetable, err := Generate(courses, 2, "9am", "9am")
		require.NoError(t, err)
		assert.Equal(t, "Algebra", timetable.At(0, 1).Courses[0].Name)
		assert.Equal(t, "Logic", timetable.At(0, 2).Courses[0].Name)
		assert.Equal(t, "Geometry", timetable.At(0, 2).Courses[1].Name)
	})
}

func TestGenerateInvariant(t *testing.T) {
	courses := []*model.Course{
		course("Algebra", "Turing", "Math"),
		course("Logic", "Turing", "CS"),
		course("Geometry", "Noether", "Math"),
		course("Poetry", "Plath", "Lit"),
		course("Prosody", "Plath", "Lit2"),
		course("Biology", "Darwin", "Bio"),
		course("Botany", "Darwin", "Bio2"),
		course("Physics", "Curie", "Phys"),
	}

	timetable, err := Generate(courses, 3, "9am", "12pm")
	require.NoError(t, err)

	// Core invariant: no cell holds two courses sharing a lecturer or
	// a program, and every course lands in exactly one cell.
	placements := 0
	for slot := range timetable.Slots {
		for day := 1; day <= timetable.Days; day++ {
			cell := timetable.At(slot, day)
			placements += len(cell.Courses)
			for i, c1 := range cell.Courses {
				for _, c2 := range cell.Courses[i+1:] {
					assert.NotEqual(t, c1.Lecturer, c2.Lecturer)
					assert.NotEqual(t, c1.Program, c2.Program)
				}
			}
		}
	}
	assert.Equal(t, len(courses), placements)

	valid, report := Validate(courses, timetable)
	assert.True(t, valid, report)
}

func TestGenerateDeterminism(t *testing.T) {
	courses := func() []*model.Course {
		return []*model.Course{
			course("Algebra", "Turing", "Math"),
			course("Logic", "Turing", "CS"),
			course("Geometry", "Noether", "Math"),
			course("Biology", "Darwin", "Bio"),
		}
	}

	first, err := Generate(courses(), 2, "9am", "11am")
	require.NoError(t, err)
	second, err := Generate(courses(), 2, "9am", "11am")
	require.NoError(t, err)

	require.Equal(t, first.Slots, second.Slots)
	for slot := range first.Slots {
		for day := 1; day <= first.Days; day++ {
			names := func(cell *model.Cell) []string {
				var out []string
				for _, c := range cell.Courses {
					out = append(out, c.Name)
				}
				return out
			}
			assert.Equal(t, names(first.At(slot, day)), names(second.At(slot, day)))
		}
	}
}
