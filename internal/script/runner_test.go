package script

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func manySteps(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{Op: "mul", Z: Pair{float64(i), 1}, W: &Pair{0, 1}}
	}

	return steps
}

func TestRunnerPreservesOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	steps := manySteps(200)

	for _, workers := range []int{0, 1, 4, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r := &Runner{Workers: workers}

			results, err := r.Run(context.Background(), steps)
			require.NoError(t, err)
			require.Len(t, results, len(steps))

			for i, res := range results {
				// (i + 1i) * i = -1 + i·i
				assert.Equal(t, Pair{-1, float64(i)}, PairOf(res.Complex), "step %d", i)
			}
		})
	}
}

func TestRunnerLogs(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.DebugLevel)
	r := &Runner{Workers: 2, Logger: zap.New(core)}

	steps, err := Parse([]byte(sample))
	require.NoError(t, err)

	results, err := r.Run(context.Background(), steps)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 3, logs.FilterMessage("step evaluated").Len())

	finished := logs.FilterMessage("script finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(3), finished[0].ContextMap()["steps"])
}

func TestRunnerErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := &Runner{}

	_, err := r.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyScript)

	steps := append(manySteps(10), Step{Op: "bogus"})

	_, err = r.Run(context.Background(), steps)
	require.ErrorIs(t, err, ErrUnknownOp)
	assert.Contains(t, err.Error(), "step 10")

	_, err = (&Runner{Workers: -1}).Run(context.Background(), steps)
	require.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestRunnerCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Runner{Workers: 2}).Run(ctx, manySteps(50))
	require.ErrorIs(t, err, context.Canceled)
}
