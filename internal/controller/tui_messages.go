package controller

import "time"

// Message types.
type runInfoMsg struct {
	source  string
	peaks   int
	threads int
}

type stageStartedMsg struct {
	stage string
	index int
	total int
}

type stageCompletedMsg struct {
	stage   string
	items   int
	elapsed time.Duration
}

type modelMsg struct {
	chains   []chainRow
	residues int
	saved    string
	err      error
}

type linksMsg struct {
	links [][]string
	err   error
}

type tickMsg time.Time

// Row types.
type chainRow struct {
	id       string
	residues int
	score    float64
}

type stageRow struct {
	name    string
	items   int
	elapsed time.Duration
	done    bool
}
