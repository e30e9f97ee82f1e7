package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetGlobalLogger_Fallback(t *testing.T) {
	SetGlobalLogger(nil)

	first := GetGlobalLogger()
	require.NotNil(t, first)
	assert.Same(t, first, GetGlobalLogger())
}

func TestGetGlobalLogger_Concurrent(t *testing.T) {
	SetGlobalLogger(nil)

	loggers := make([]*ZapLogger, 8)
	var wg sync.WaitGroup
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	// all callers observe the same fallback instance
	for _, l := range loggers {
		require.NotNil(t, l)
		assert.Same(t, loggers[0], l)
	}
}

func TestSetGlobalLogger(t *testing.T) {
	zl, err := zap.NewDevelopment()
	require.NoError(t, err)
	custom := &ZapLogger{Logger: zl, sugar: zl.Sugar()}

	SetGlobalLogger(custom)
	defer SetGlobalLogger(nil)

	assert.Same(t, custom, GetGlobalLogger())
}
