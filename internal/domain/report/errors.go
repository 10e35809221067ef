package report

import "errors"

var (
	ErrNoEmployeesMatched = errors.New("no active employees matched the report filter")
)
