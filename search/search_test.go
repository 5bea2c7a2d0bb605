package search

import (
	"strings"
	"testing"

	"github.com/hupe1980/checked"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func cmpInt(key, elem int) int { return key - elem }

func TestFindReturnsFirstMatch(t *testing.T) {
	table := []int{3, 7, 7, 9}
	count := 4

	p, err := Find(7, table, &count, cmpInt)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Same(t, &table[1], p)
	assert.Equal(t, 4, count)
}

func TestFindNoMatchIsNotAnError(t *testing.T) {
	table := []int{1, 2, 3}
	count := 3

	p, err := Find(42, table, &count, cmpInt)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 3, count)
}

func TestFindIsIdempotent(t *testing.T) {
	table := []int{5, 6, 7}
	count := 3

	first, err := Find(6, table, &count, cmpInt)
	require.NoError(t, err)
	second, err := Find(6, table, &count, cmpInt)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 3, count)
}

func TestFindOrAppendAppendsOnMiss(t *testing.T) {
	table := make([]int, 4)
	copy(table, []int{10, 20, 30})
	count := 3

	p, err := FindOrAppend(40, table, &count, cmpInt)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 40, *p)
	assert.Equal(t, 4, count)
	assert.Same(t, &table[3], p)

	// The appended element is findable, and Find leaves count alone.
	q, err := Find(40, table, &count, cmpInt)
	require.NoError(t, err)
	assert.Same(t, p, q)
	assert.Equal(t, 4, count)
}

func TestFindOrAppendReturnsExistingOnHit(t *testing.T) {
	table := make([]int, 4)
	copy(table, []int{10, 20, 30})
	count := 3

	p, err := FindOrAppend(20, table, &count, cmpInt)
	require.NoError(t, err)
	assert.Same(t, &table[1], p)
	assert.Equal(t, 3, count)
}

func TestEmptyTableAllNilSucceedsTrivially(t *testing.T) {
	count := 0

	p, err := Find[int](0, nil, &count, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = FindOrAppend[int](0, nil, &count, nil)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 0, count)
}

func TestArgumentValidation(t *testing.T) {
	table := []int{1}
	count := 1

	_, err := Find(1, table, nil, cmpInt)
	assert.ErrorIs(t, err, checked.ErrInvalidArgument)

	_, err = Find[int](1, nil, &count, cmpInt)
	assert.ErrorIs(t, err, checked.ErrInvalidArgument)

	_, err = Find(1, table, &count, nil)
	assert.ErrorIs(t, err, checked.ErrInvalidArgument)

	_, err = FindOrAppend(1, table, nil, cmpInt)
	assert.ErrorIs(t, err, checked.ErrInvalidArgument)
}

func TestCountBeyondCapacityIsRange(t *testing.T) {
	table := []int{1, 2}
	count := 3

	_, err := Find(1, table, &count, cmpInt)
	assert.ErrorIs(t, err, checked.ErrRange)

	count = -1
	_, err = Find(1, table, &count, cmpInt)
	assert.ErrorIs(t, err, checked.ErrRange)
}

func TestFindOrAppendWithoutRoomIsRange(t *testing.T) {
	table := []int{1, 2}
	count := 2

	_, err := FindOrAppend(3, table, &count, cmpInt)
	assert.ErrorIs(t, err, checked.ErrRange)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int{1, 2}, table)
}

func TestWithArgThreadsArgument(t *testing.T) {
	table := []string{"Alpha", "beta", "GAMMA"}
	count := 3

	foldCmp := func(key, elem string, fold bool) int {
		if fold {
			return strings.Compare(strings.ToLower(key), strings.ToLower(elem))
		}
		return strings.Compare(key, elem)
	}

	p, err := FindWithArg("gamma", table, &count, foldCmp, true)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Same(t, &table[2], p)

	p, err = FindWithArg("gamma", table, &count, foldCmp, false)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFindOrAppendWithArg(t *testing.T) {
	table := make([]string, 3)
	copy(table, []string{"a", "b"})
	count := 2

	cmp := func(key, elem string, _ struct{}) int { return strings.Compare(key, elem) }

	p, err := FindOrAppendWithArg("c", table, &count, cmp, struct{}{})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "c", *p)
	assert.Equal(t, 3, count)
}

func TestConcurrentDisjointTables(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			table := make([]int, 128)
			count := 0
			for v := 0; v < 127; v++ {
				if _, err := FindOrAppend(v*i, table, &count, cmpInt); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
