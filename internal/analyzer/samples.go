package analyzer

import _ "embed"

// Sample documents for trying the analyzer without any input files.
var (
	//go:embed samples/resume.txt
	SampleResume string

	//go:embed samples/job.txt
	SampleJob string
)
