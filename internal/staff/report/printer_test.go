package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbook/internal/staff/models"
	employeestore "staffbook/internal/staff/store/employee"
)

// storeSource adapts the bare store to Source for these tests.
type storeSource struct {
	store *employeestore.InMemory
}

func (s storeSource) Names(_ context.Context, prefix string, d models.Department) []string {
	return s.store.Names(prefix, d)
}

func (s storeSource) ByDepartment(_ context.Context, d models.Department) []*models.Employee {
	var out []*models.Employee
	for e := range s.store.ByDepartment(d) {
		out = append(out, e)
	}
	return out
}

func newSource(t *testing.T) storeSource {
	t.Helper()
	store := employeestore.NewInMemory(10, employeestore.WithSequence(&models.Sequence{}))
	_, ok := store.Add(models.DepartmentFirst, "ivanov", "ivan", "ivanovich", 1000)
	require.True(t, ok)
	_, ok = store.Add(models.DepartmentThird, "petrova", "maria", "", 2500.5)
	require.True(t, ok)
	_, ok = store.Add(models.DepartmentFirst, "sidorov", "sidor", "", 900)
	require.True(t, ok)
	return storeSource{store: store}
}

func TestDepartments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Departments(context.Background(), newSource(t)))

	want := strings.Join([]string{
		"Department 1",
		"- Ivanov Ivan Ivanovich",
		"- Sidorov Sidor",
		"",
		"Department 2",
		"",
		"Department 3",
		"- Petrova Maria",
		"",
		"Department 4",
		"",
		"Department 5",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRoster(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Roster(context.Background(), newSource(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Ivanov")
	assert.Contains(t, lines[1], "Sidorov")
	assert.Contains(t, lines[2], "Petrova")
	assert.True(t, strings.HasSuffix(lines[2], "2500.50"))
}

func TestRosterFiltered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Roster(context.Background(), newSource(t), models.DepartmentThird))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Department 3"))
	assert.Contains(t, lines[0], "Petrova")
}

func TestFormatEmployee(t *testing.T) {
	e := models.NewEmployeeFromName(&models.Sequence{}, models.DepartmentSecond, "orlov", "ilya", "", 1234.567)
	assert.Equal(t,
		"Department 2    1 Orlov           Ilya                               1234.57",
		FormatEmployee(e))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteErrors(t *testing.T) {
	src := newSource(t)
	assert.Error(t, NewPrinter(failingWriter{}).Departments(context.Background(), src))
	assert.Error(t, NewPrinter(failingWriter{}).Roster(context.Background(), src))
}
