package model

// Course is a single scheduling request. Identity is positional (input
// row order); no uniqueness is enforced on any field.
type Course struct {
	Name     string `csv:"course name" mapstructure:"course name"`
	Unit     string `csv:"course unit" mapstructure:"course unit"`
	Lecturer string `csv:"lecture name" mapstructure:"lecture name"`
	Program  string `csv:"program" mapstructure:"program"`
}
