package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"timetablegen/internal/csvio"
	"timetablegen/internal/jsonio"
	"timetablegen/internal/scheduler"
	"timetablegen/pkg/model"
)

// Program parameters
var cfg = scheduler.NewDefaultConfiguration()

var (
	delim    string
	fromJSON bool
)

func main() {
	log.SetFlags(log.Ltime)

	cmdRoot := &cobra.Command{
		Use:   "timetablegen",
		Short: "Course timetable generator",
		Long: "A tool to place courses into a day-by-time grid so that no two\n" +
			"courses sharing a lecturer or a program fall into the same cell",
	}

	cmdGen := &cobra.Command{
		Use:   "gen",
		Short: "generate a conflict-free timetable",
		Run:   commandGen,
	}
	cmdGen.Flags().StringVar(&cfg.CoursesFile, "courses", cfg.CoursesFile, "course input file")
	cmdGen.Flags().StringVar(&cfg.ExportFile, "out", cfg.ExportFile, "output csv file")
	cmdGen.Flags().IntVarP(&cfg.NumberOfDays, "days", "n", cfg.NumberOfDays, "number of days in the grid")
	cmdGen.Flags().StringVarP(&cfg.StartTime, "start", "s", cfg.StartTime, "first slot time, e.g. 9am")
	cmdGen.Flags().StringVarP(&cfg.EndTime, "end", "e", cfg.EndTime, "last slot time, e.g. 5pm")
	cmdGen.Flags().StringVar(&delim, "delim", ",", "csv delimiter")
	cmdGen.Flags().BoolVar(&fromJSON, "json", false, "read course input as json instead of csv")
	cmdRoot.AddCommand(cmdGen)

	cmdCheck := &cobra.Command{
		Use:   "check",
		Short: "validate course input without scheduling",
		Run:   commandCheck,
	}
	cmdCheck.Flags().StringVar(&cfg.CoursesFile, "courses", cfg.CoursesFile, "course input file")
	cmdCheck.Flags().StringVar(&delim, "delim", ",", "csv delimiter")
	cmdCheck.Flags().BoolVar(&fromJSON, "json", false, "read course input as json instead of csv")
	cmdRoot.AddCommand(cmdCheck)

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func commandGen(cmd *cobra.Command, args []string) {
	courses := loadCourses()

	timetable, err := scheduler.Generate(courses, cfg.NumberOfDays, cfg.StartTime, cfg.EndTime)
	if err != nil {
		var formatErr *model.TimeFormatError
		var placementErr *model.PlacementError
		switch {
		case errors.As(err, &formatErr):
			log.Fatalf("bad time range: %v", err)
		case errors.As(err, &placementErr):
			log.Fatalf("scheduling failed: %v", err)
		default:
			log.Fatalf("%v", err)
		}
	}

	valid, report := scheduler.Validate(courses, timetable)
	fmt.Print(report)
	if !valid {
		log.Fatal("generated timetable failed validation")
	}

	csvio.PrintTimetable(os.Stdout, timetable)

	outPath, err := csvio.ExportTimetable(timetable, cfg.ExportFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("exported timetable to %s", outPath)
}

func commandCheck(cmd *cobra.Command, args []string) {
	courses := loadCourses()
	log.Printf("%s: %d courses, schema ok", cfg.CoursesFile, len(courses))
}

func loadCourses() []*model.Course {
	var courses []*model.Course
	var err error
	if fromJSON {
		courses, err = jsonio.LoadCourses(cfg.CoursesFile)
	} else {
		if delim == "" {
			delim = ","
		}
		courses, err = csvio.LoadCourses(cfg.CoursesFile, []rune(delim)[0])
	}
	if err != nil {
		var schemaErr *model.SchemaError
		if errors.As(err, &schemaErr) {
			log.Fatalf("bad course input: %v", err)
		}
		log.Fatalf("%v", err)
	}
	return courses
}
