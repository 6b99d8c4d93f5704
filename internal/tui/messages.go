package tui

import "github.com/classware/gradeflow/internal/roster"

// Data loading messages.
type rosterLoadedMsg struct {
	roster *roster.Roster
}

type loadFailedMsg struct {
	err error
}

// prefsSavedMsg reports the outcome of an async preference write.
type prefsSavedMsg struct {
	err error
}
