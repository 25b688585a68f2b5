package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstThread(t *testing.T) {
	cases := []struct {
		name           string
		threadsPerCore int
		core           int
		want           int
	}{
		{"smt2_core0", 2, 0, 0},
		{"smt2_core3", 2, 3, 6},
		{"smt2_core7", 2, 7, 14},
		{"no_smt", 1, 5, 5},
		{"smt4", 4, 3, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := &Info{Cores: 8, ThreadsPerCore: tc.threadsPerCore}
			assert.Equal(t, tc.want, info.FirstThread(tc.core))
		})
	}
}

func TestThreads(t *testing.T) {
	info := &Info{Cores: 8, ThreadsPerCore: 2}
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14}, info.Threads())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Info{Cores: 1, ThreadsPerCore: 1}).Validate())
	assert.ErrorIs(t, (&Info{Cores: 0, ThreadsPerCore: 2}).Validate(), ErrInvalid)
	assert.ErrorIs(t, (&Info{Cores: 8, ThreadsPerCore: 0}).Validate(), ErrInvalid)
	assert.ErrorIs(t, (&Info{Cores: -1, ThreadsPerCore: -1}).Validate(), ErrInvalid)
}
