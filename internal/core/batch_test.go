package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeJobIDs(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		added    []int
		want     []int
	}{
		{"both empty", nil, nil, nil},
		{"add to empty", nil, []int{3, 1}, []int{1, 3}},
		{"dedup across both", []int{1, 2}, []int{2, 3}, []int{1, 2, 3}},
		{"dedup inside added", []int{5}, []int{7, 7, 6}, []int{5, 6, 7}},
		{"already sorted stays", []int{1, 2, 3}, nil, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeJobIDs(tt.existing, tt.added))
		})
	}
}

func TestMergeJobIDsIsIdempotent(t *testing.T) {
	first := MergeJobIDs([]int{4, 1, 9}, []int{9, 2})
	second := MergeJobIDs(first, []int{9, 2})
	assert.Equal(t, first, second)
}

func TestMergeJobIDsDoesNotMutateInputs(t *testing.T) {
	existing := []int{3, 1}
	MergeJobIDs(existing, []int{2})
	assert.Equal(t, []int{3, 1}, existing)
}
