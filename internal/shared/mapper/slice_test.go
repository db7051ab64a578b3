package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice_NilBecomesEmpty(t *testing.T) {
	out := MapSlice[int, string](nil, strconv.Itoa)
	require.NotNil(t, out)
	assert.Empty(t, out)

	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSliceErr_StopsAtFirstError(t *testing.T) {
	calls := 0
	_, err := MapSliceErr([]string{"1", "x", "3"}, func(s string) (int, error) {
		calls++
		return strconv.Atoi(s)
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
