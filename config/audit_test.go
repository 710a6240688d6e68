package config

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestResolvedAuditorDefaultsToNoop(t *testing.T) {
	o := Defaults()
	require.NotPanics(t, func() {
		o.AuditorOrNoop().Started("p1", 10)
		o.AuditorOrNoop().Segment("p1", "s1", "@0-1", 0)
		o.AuditorOrNoop().Finished("p1", 1, nil)
	})
}

func TestLoggingAuditorEmitsInfoLevelEntries(t *testing.T) {
	logger, hook := test.NewNullLogger()
	a := LoggingAuditor{Log: logger}

	a.Started("p1", 42)
	a.Segment("p1", "s1", "@0-9", 0)
	a.Finished("p1", 1, nil)

	require.Len(t, hook.Entries, 3)
	for _, e := range hook.Entries {
		require.Equal(t, "p1", e.Data["parse"])
	}
}

func TestLoggingAuditorWarnsOnFinishWithError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	a := LoggingAuditor{Log: logger}

	a.Finished("p1", 0, errors.New("boom"))

	require.Len(t, hook.Entries, 1)
	require.Equal(t, "boom", hook.LastEntry().Data["error"].(error).Error())
}
