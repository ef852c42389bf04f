package obslog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/engine"
	"github.com/gravwell/osguard/execctx"
	"github.com/gravwell/osguard/obslog"
	"github.com/gravwell/osguard/op"
)

func TestLogger_ReturnsProcessWideSingleton(t *testing.T) {
	assert.Same(t, obslog.Logger(), obslog.Logger())
}

func TestSetLevel_AdjustsGlobalLogger(t *testing.T) {
	obslog.SetLevel(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, obslog.Logger().GetLevel())
	obslog.SetLevel(logrus.InfoLevel)
}

func TestMiddleware_NeverVetoesOrReplaces(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	mw := obslog.NewMiddlewareWith[op.FilesystemOp](log)
	assert.Equal(t, "logger", mw.Name())
	assert.Equal(t, engine.PriorityLogger, mw.Priority())

	operation := op.NewFileReadOp("/etc/hosts")
	ectx := execctx.New(execctx.NewSecurityContext("alice"))

	replacement, err := mw.BeforeExecution(context.Background(), operation, ectx)
	require.NoError(t, err)
	assert.Nil(t, replacement)
	assert.Contains(t, buf.String(), "executing operation")

	result := &engine.ExecutionResult{ExitCode: 0}
	after, err := mw.AfterExecution(context.Background(), operation, result, ectx)
	require.NoError(t, err)
	assert.Nil(t, after)

	action, err := mw.OnError(context.Background(), operation, assertErr{}, ectx)
	require.NoError(t, err)
	assert.Equal(t, engine.Continue, action.Kind)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
