package rmlist_test

import (
	"slices"
	"testing"

	"deedles.dev/rmlist"
	"github.com/stretchr/testify/require"
)

func TestDrain(t *testing.T) {
	var ls rmlist.List[int]
	for i := range 5 {
		ls.PushFront(i)
	}

	d := ls.Drain()
	require.Zero(t, ls.Len())
	require.Equal(t, 5, d.Len())
	require.Equal(t, "Drain([4 3 2 1 0])", d.String())

	require.Equal(t, []int{4, 3, 2, 1, 0}, slices.Collect(d.All()))
	require.Zero(t, d.Len())
	_, ok := d.Next()
	require.False(t, ok)
	_, ok = d.NextBack()
	require.False(t, ok)
}

func TestDrainBackward(t *testing.T) {
	d := rmlist.Of(1, 2, 3).Drain()
	require.Equal(t, []int{3, 2, 1}, slices.Collect(d.Backward()))
	require.Zero(t, d.Len())
}

func TestDrainBothEnds(t *testing.T) {
	for n := range 8 {
		ls := rmlist.New[int]()
		for i := range n {
			ls.PushFront(n - 1 - i)
		}

		d := ls.Drain()
		var front, back []int
		for i := 0; ; i++ {
			require.Equal(t, n-len(front)-len(back), d.Len())

			var v int
			var ok bool
			if i%2 == 0 {
				v, ok = d.Next()
				if ok {
					front = append(front, v)
				}
			} else {
				v, ok = d.NextBack()
				if ok {
					back = append(back, v)
				}
			}
			if !ok {
				break
			}
		}

		var want []int
		for i := range n {
			want = append(want, i)
		}
		slices.Reverse(back)
		require.Equal(t, want, append(front, back...))
	}
}

func TestDrainLeavesListUsable(t *testing.T) {
	ls := rmlist.Of(1, 2)
	d := ls.Drain()

	ls.PushFront(3)
	require.Equal(t, []int{3}, ls.Slice())
	require.Equal(t, 2, d.Len())

	v, _ := d.Next()
	require.Equal(t, 1, v)
}

func TestDrainEarlyStop(t *testing.T) {
	d := rmlist.Of(1, 2, 3).Drain()
	for v := range d.All() {
		if v == 2 {
			break
		}
	}
	require.Equal(t, 1, d.Len())
	v, ok := d.NextBack()
	require.True(t, ok)
	require.Equal(t, 3, v)
}
