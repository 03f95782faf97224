package models

import "time"

// CommitResult records one commit created from the schedule.
type CommitResult struct {
	Date time.Time
	Hash string
}

// RunResult is what a completed run produced.
type RunResult struct {
	Planned   int
	Commits   []CommitResult
	RemoteURL string
	DryRun    bool
}
