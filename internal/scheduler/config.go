package scheduler

type Configuration struct {
	CoursesFile  string
	ExportFile   string
	Delimiter    rune
	NumberOfDays int
	StartTime    string
	EndTime      string
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CoursesFile:  "./res/courses.csv",
		ExportFile:   "timetable.csv",
		Delimiter:    ',',
		NumberOfDays: 5,
		StartTime:    "9am",
		EndTime:      "5pm",
	}
}
