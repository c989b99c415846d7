package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbook/internal/staff/models"
)

func TestNewService(t *testing.T) {
	ctx := context.Background()
	seq := &models.Sequence{}

	book, err := NewService(2, seq)
	require.NoError(t, err)
	assert.Equal(t, 2, book.Capacity(ctx))

	e, err := book.Hire(ctx, models.DepartmentFirst, "ivanov", "ivan", "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID())
	assert.Equal(t, int64(1), seq.Issued())
}
