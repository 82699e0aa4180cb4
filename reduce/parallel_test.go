package reduce_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algebra/monoid"
	"algebra/reduce"
)

func TestParallelReduce(t *testing.T) {
	log := testr.NewWithOptions(t, testr.Options{Verbosity: 2})

	values := make([]int, 1000)
	want := 0
	for i := range values {
		values[i] = i
		want += i
	}

	got, err := reduce.ParallelReduce(sums(values...), reduce.WithWorkers(4), reduce.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, want, got.Value())
}

func TestParallelReducePreservesOrder(t *testing.T) {
	values := make([]int, 777)
	for i := range values {
		values[i] = i
	}
	in := seqs(values...)

	for _, workers := range []int{1, 2, 3, 7, 16, 1000} {
		got, err := reduce.ParallelReduce(in, reduce.WithWorkers(workers), reduce.WithMinParallel(0))
		require.NoError(t, err)
		assert.Equal(t, values, got.Value(), "workers=%d", workers)
	}
}

func TestParallelReduceSmallInput(t *testing.T) {
	got, err := reduce.ParallelReduce(sums(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, got.Value())

	empty, err := reduce.ParallelReduce[monoid.Product[int]](nil, reduce.WithMinParallel(0))
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Value())

	one, err := reduce.ParallelReduce(sums(42), reduce.WithMinParallel(0), reduce.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, 42, one.Value())
}

func TestParallelReduceError(t *testing.T) {
	in := make([]monoid.Sum[int8], 400)
	for i := range in {
		in[i] = monoid.NewSum[int8](1)
	}
	in[350] = monoid.NewSum[int8](127)

	_, err := reduce.ParallelReduce(in, reduce.WithWorkers(4), reduce.WithMinParallel(0),
		reduce.WithLogger(testr.New(t)))
	assert.ErrorIs(t, err, monoid.ErrOverflow)
}

// failing is a monoid whose Combine fails on a marked element.
type failing struct {
	bad bool
}

var errFailing = errors.New("failing element")

func (f failing) Identity() failing { return failing{} }

func (f failing) Combine(other failing) (failing, error) {
	if f.bad || other.bad {
		return f, errFailing
	}
	return f, nil
}

func TestParallelReduceCombineFailure(t *testing.T) {
	in := make([]failing, 10000)
	in[1] = failing{bad: true}

	_, err := reduce.ParallelReduce(in, reduce.WithWorkers(4), reduce.WithMinParallel(0))
	assert.ErrorIs(t, err, errFailing)
}

func TestParallelReduceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reduce.ParallelReduce(sums(1, 2, 3), reduce.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = reduce.ParallelReduce(sums(1, 2, 3), reduce.WithContext(ctx), reduce.WithMinParallel(0))
	assert.ErrorIs(t, err, context.Canceled)
}

func FuzzParallelReduce(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5}, uint8(2))
	f.Add([]byte{}, uint8(1))
	f.Add([]byte{255, 0, 17}, uint8(9))

	f.Fuzz(func(t *testing.T, data []byte, workers uint8) {
		values := make([]int, len(data))
		for i, b := range data {
			values[i] = int(b)
		}
		in := seqs(values...)

		serial, err := reduce.Reduce(in)
		if err != nil {
			t.Fatal(err)
		}
		parallel, err := reduce.ParallelReduce(in, reduce.WithWorkers(int(workers)), reduce.WithMinParallel(0))
		if err != nil {
			t.Fatal(err)
		}
		tree, err := reduce.TreeReduce(in)
		if err != nil {
			t.Fatal(err)
		}
		if !assert.ObjectsAreEqual(serial.Value(), parallel.Value()) {
			t.Fatalf("parallel %v != serial %v", parallel, serial)
		}
		if !assert.ObjectsAreEqual(serial.Value(), tree.Value()) {
			t.Fatalf("tree %v != serial %v", tree, serial)
		}
	})
}
