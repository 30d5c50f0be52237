package event_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rengerhu/Procurement/pkg/domain/service"
	"github.com/rengerhu/Procurement/pkg/infrastructure/event"
)

var _ service.EventDispatcher = &event.LoggingDispatcher{}

type stubEvent struct {
	name string
}

func (e stubEvent) Type() string { return e.name }

func TestLoggingDispatcher(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	dispatcher := event.NewLoggingDispatcher(logger)

	err := dispatcher.Dispatch(stubEvent{name: "RequestApproved"})

	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "domain event dispatched", entry.Message)
	assert.Equal(t, "RequestApproved", entry.Data["event"])
}
