package data

import "strings"

// Job is a player job.
type Job struct {
	Key  string // Three letter abbreviation used in recordings
	Name string
}

var (
	Dancer = Job{Key: "DNC", Name: "Dancer"}
	Monk   = Job{Key: "MNK", Name: "Monk"}
)

var jobs = map[string]Job{
	Dancer.Key: Dancer,
	Monk.Key:   Monk,
}

// JobByKey looks up a job by its abbreviation, case-insensitively.
func JobByKey(key string) (Job, bool) {
	j, ok := jobs[strings.ToUpper(key)]
	return j, ok
}
