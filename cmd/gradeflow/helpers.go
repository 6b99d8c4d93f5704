package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/viper"

	"github.com/classware/gradeflow/internal/common"
	"github.com/classware/gradeflow/internal/config"
	"github.com/classware/gradeflow/internal/model"
	"github.com/classware/gradeflow/internal/roster"
)

// loadRoster fetches and parses the configured gradebook source. One load
// per invocation; a failure aborts the command with no partial roster.
func loadRoster(ctx context.Context) (*roster.Roster, error) {
	source := config.ExpandPath(viper.GetString("csv.source"))

	data, err := roster.FetchWithProgress(ctx, source)
	if err != nil {
		return nil, common.NewUserError("could not retrieve the gradebook", err)
	}

	ro, err := roster.Load(bytes.NewReader(data))
	if err != nil {
		return nil, common.NewUserError("could not parse the gradebook", err)
	}
	return ro, nil
}

// findStudent resolves a command-line student reference: an exact external
// id first, then a unique case-insensitive name substring.
func findStudent(ro *roster.Roster, ref string) (*model.StudentRecord, error) {
	for i := range ro.Students {
		if ro.Students[i].DisplayID() == strings.TrimSpace(ref) {
			return &ro.Students[i], nil
		}
	}

	var match *model.StudentRecord
	q := strings.ToLower(ref)
	for i := range ro.Students {
		if strings.Contains(strings.ToLower(ro.Students[i].DisplayName()), q) {
			if match != nil {
				return nil, common.NewUserError("student reference is ambiguous, use an ID", common.ErrStudentNotFound)
			}
			match = &ro.Students[i]
		}
	}
	if match == nil {
		return nil, common.NewUserError("no student matches "+ref, common.ErrStudentNotFound)
	}
	return match, nil
}
