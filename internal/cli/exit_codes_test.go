package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scanpathlab/scanpda/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":           {nil, ExitSuccess},
		"plain error":         {fmt.Errorf("boom"), ExitRuntime},
		"argument error":      {errors.NewArgumentError("bad arg"), ExitInvalidArguments},
		"configuration error": {errors.NewConfigError("bad config"), ExitConfiguration},
		"dataset error":       {errors.NewDatasetError("bad dataset"), ExitDataset},
		"runtime error":       {errors.NewRuntimeError("boom"), ExitRuntime},
		"wrapped cli error":   {fmt.Errorf("context: %w", errors.NewDatasetError("bad")), ExitDataset},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
