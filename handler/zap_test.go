package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kinkinyang/zhmclog/core"
)

func TestZapHandler_ForwardsEntries(t *testing.T) {
	zcore, observed := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(zcore))

	e := newEntry("==> Client.Get(), args: ()")
	e.Level = core.DebugLevel
	e.Fields = append(e.Fields,
		core.Field{Key: "cpc", Kind: core.KindString, Str: "CPC1"},
		core.Field{Key: "elapsed", Kind: core.KindDuration, Num: int64(time.Second)},
		core.Field{Key: "password", Kind: core.KindSecret, Str: "Sup3rSecret!"},
	)

	require.NoError(t, h.Handle(e))

	logs := observed.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "==> Client.Get(), args: ()", logs[0].Message)
	assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
	assert.Equal(t, "zhmclog.api", logs[0].LoggerName)

	fields := logs[0].ContextMap()
	assert.Equal(t, "CPC1", fields["cpc"])
	assert.Equal(t, time.Second, fields["elapsed"])
	assert.Equal(t, core.SecretMask, fields["password"])
}

func TestZapHandler_RespectsZapLevel(t *testing.T) {
	zcore, observed := observer.New(zapcore.InfoLevel)
	h := NewZapHandler(zap.New(zcore))

	e := newEntry("debug record")
	e.Level = core.DebugLevel

	require.NoError(t, h.Handle(e))
	assert.Zero(t, observed.Len(), "debug entry must not pass an info-level zap core")
}

func TestZapHandler_FatalMapsToError(t *testing.T) {
	// Fatal must not trigger zap's exit behavior; it arrives as an error record.
	zcore, observed := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(zcore))

	e := newEntry("fatal record")
	e.Level = core.FatalLevel

	require.NoError(t, h.Handle(e))

	logs := observed.All()
	require.Len(t, logs, 1)
	assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
}
