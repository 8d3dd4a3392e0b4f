package logger

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceAndRestore(t *testing.T) {
	original := instance.Load()

	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Info("hello", zap.String("k", "v"))
	Error("boom", errors.New("bad"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.Equal(t, "bad", entries[1].ContextMap()["error"])

	restore()
	assert.Same(t, original, instance.Load())
}

func TestReplaceWhileLogging(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Debug("tick")
			}
		}()
	}
	for i := 0; i < 100; i++ {
		Replace(zap.New(core))()
	}
	wg.Wait()
}
