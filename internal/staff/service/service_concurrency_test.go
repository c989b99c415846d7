package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"staffbook/internal/staff/models"
	employeestore "staffbook/internal/staff/store/employee"
	dErrors "staffbook/pkg/domain-errors"
)

// Concurrent hires race for a small number of slots. The lock must keep the
// count exact and hand out each slot once.
func TestConcurrentHires(t *testing.T) {
	const (
		capacity = 50
		workers  = 8
		perWork  = 20
	)
	ctx := context.Background()
	seq := &models.Sequence{}
	svc, err := New(employeestore.NewInMemory(capacity, employeestore.WithSequence(seq)))
	require.NoError(t, err)

	results := make([][]int64, workers)
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for i := range perWork {
				e, err := svc.Hire(ctx, models.DepartmentFirst, fmt.Sprintf("worker%d", w), fmt.Sprintf("n%d", i), "", 1)
				if dErrors.HasCode(err, dErrors.CodeCapacityExhausted) {
					continue
				}
				if err != nil {
					return err
				}
				results[w] = append(results[w], e.ID())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]struct{})
	for _, ids := range results {
		for _, id := range ids {
			_, dup := seen[id]
			assert.False(t, dup, "id %d handed out twice", id)
			seen[id] = struct{}{}
		}
	}
	assert.Len(t, seen, capacity)
	assert.Equal(t, capacity, svc.Count(ctx))
	assert.Equal(t, int64(capacity), seq.Issued())
}

// Mixed readers and writers on one book.
func TestConcurrentChangesAndReads(t *testing.T) {
	ctx := context.Background()
	svc, err := New(employeestore.NewInMemory(10, employeestore.WithSequence(&models.Sequence{})))
	require.NoError(t, err)

	e, err := svc.Hire(ctx, models.DepartmentFirst, "orlov", "ilya", "", 0)
	require.NoError(t, err)

	g, gctx := errgroup.WithContext(ctx)
	for i := range 4 {
		g.Go(func() error {
			for j := range 50 {
				if _, err := svc.Change(gctx, e.ID(), models.SetSalary(float64(i*100+j))); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for range 50 {
				if _, err := svc.Get(gctx, e.ID()); err != nil {
					return err
				}
				_ = svc.Names(gctx, "- ", models.DepartmentFirst)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, svc.Count(ctx))
}
