package soix

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zbh255/gocode/random"
)

func TestBTree(t *testing.T) {
	t.Run("Smoke", func(t *testing.T) {
		bt, err := New[string, int](Config{})
		require.NoError(t, err)
		_, replaced := bt.Put("theanswer", 42)
		require.False(t, replaced)
		v, found := bt.Get("theanswer")
		require.True(t, found)
		require.Equal(t, 42, v)
		old, replaced := bt.Put("theanswer", 43)
		require.True(t, replaced)
		require.Equal(t, 42, old)
		v, found = bt.Get("theanswer")
		require.True(t, found)
		require.Equal(t, 43, v)
		_, found = bt.Get("nosuchkey")
		require.False(t, found)
		require.Equal(t, 1, bt.Len())
	})
	t.Run("BadDegree", func(t *testing.T) {
		_, err := New[int, int](Config{Degree: 2})
		require.ErrorIs(t, err, ErrDegreeOutOfRange)
		_, err = New[int, int](Config{Degree: maxDegree + 1})
		require.ErrorIs(t, err, ErrDegreeOutOfRange)
		_, err = New[int, int](Config{Degree: minDegree})
		require.NoError(t, err)
	})
	t.Run("EmptyTree", func(t *testing.T) {
		bt, err := New[uint64, string](Config{})
		require.NoError(t, err)
		require.Equal(t, 0, bt.Len())
		require.Equal(t, 1, bt.Height())
		_, ok := bt.MinKey()
		require.False(t, ok)
		_, ok = bt.MaxKey()
		require.False(t, ok)
		_, found := bt.Get(1)
		require.False(t, found)
		bt.Range(0, func(k uint64, v string) bool {
			t.Fatal("range over empty tree yielded a pair")
			return false
		})
	})
	t.Run("Differential", func(t *testing.T) {
		for _, degree := range []int{3, 8, 32} {
			bt, err := New[uint16, int32](Config{Degree: degree})
			require.NoError(t, err)
			truth := make(map[uint16]int32)
			keys := make([]uint16, 0, 1<<16)
			for i := 0; i < 300000; i++ {
				if rand.IntN(2) == 0 && len(keys) > 0 {
					k := keys[rand.IntN(len(keys))]
					v, found := bt.Get(k)
					require.True(t, found)
					require.Equal(t, truth[k], v)
				} else {
					k := uint16(rand.UintN(1 << 16))
					v := rand.Int32()
					_, want := truth[k]
					old, replaced := bt.Put(k, v)
					require.Equal(t, want, replaced)
					if want {
						require.Equal(t, truth[k], old)
					}
					truth[k] = v
					keys = append(keys, k)
				}
			}
			require.Equal(t, len(truth), bt.Len())

			var got []uint16
			bt.Range(0, func(k uint16, v int32) bool {
				got = append(got, k)
				require.Equal(t, truth[k], v)
				return true
			})
			want := make([]uint16, 0, len(truth))
			for k := range truth {
				want = append(want, k)
			}
			slices.Sort(want)
			require.Equal(t, want, got)
		}
	})
	t.Run("HeightGrowth", func(t *testing.T) {
		const degree = 8
		bt, err := New[int, int](Config{Degree: degree})
		require.NoError(t, err)
		for i := 0; i <= degree*degree; i++ {
			bt.Put(i, i)
			if !bt.root.isLeaf() {
				// a split always runs before its parent gains the new
				// child, so the root can never overflow
				require.LessOrEqual(t, bt.in.at(bt.root.index()).cnt, degree)
			}
		}
		require.False(t, bt.root.isLeaf())
		require.GreaterOrEqual(t, bt.Height(), 2)
		for i := 0; i <= degree*degree; i++ {
			v, found := bt.Get(i)
			require.True(t, found)
			require.Equal(t, i, v)
		}
	})
	t.Run("StringKeys", func(t *testing.T) {
		bt, err := New[string, string](Config{Degree: 8})
		require.NoError(t, err)
		truth := make(map[string]string)
		for i := 0; i < 4096; i++ {
			k := random.GenStringOnAscii(16)
			v := random.GenStringOnAscii(64)
			_, want := truth[k]
			_, replaced := bt.Put(k, v)
			require.Equal(t, want, replaced)
			truth[k] = v
		}
		require.Equal(t, len(truth), bt.Len())
		for k, v := range truth {
			got, found := bt.Get(k)
			require.True(t, found)
			require.Equal(t, v, got)
		}
	})
	t.Run("MinMax", func(t *testing.T) {
		bt, err := New[uint64, uint64](Config{Degree: 4})
		require.NoError(t, err)
		for i := 0; i < 1024; i++ {
			bt.Put(rand.Uint64N(1<<32)+1, uint64(i))
		}
		bt.Put(0, 0)
		bt.Put(1<<40, 0)
		minKey, ok := bt.MinKey()
		require.True(t, ok)
		require.EqualValues(t, 0, minKey)
		maxKey, ok := bt.MaxKey()
		require.True(t, ok)
		require.EqualValues(t, 1<<40, maxKey)
	})
	t.Run("RangeFromKey", func(t *testing.T) {
		bt, err := New[int, int](Config{Degree: 4})
		require.NoError(t, err)
		for i := 0; i < 1000; i++ {
			bt.Put(i*2, i) // even keys only
		}
		var got []int
		bt.Range(501, func(k, v int) bool {
			got = append(got, k)
			return len(got) < 10
		})
		require.Equal(t, []int{502, 504, 506, 508, 510, 512, 514, 516, 518, 520}, got)
	})
	t.Run("RefUpdate", func(t *testing.T) {
		bt, err := New[string, int](Config{Degree: 4})
		require.NoError(t, err)
		for i, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
			bt.Put(k, i)
		}
		p := bt.Ref("d")
		require.NotNil(t, p)
		require.Equal(t, 3, *p)
		*p = 333
		v, found := bt.Get("d")
		require.True(t, found)
		require.Equal(t, 333, v)
		require.Nil(t, bt.Ref("zz"))
	})
	t.Run("Stat", func(t *testing.T) {
		const degree = 4
		bt, err := New[int, int](Config{Degree: degree})
		require.NoError(t, err)
		for i := 0; i < 256; i++ {
			bt.Put(i, i)
		}
		bt.Put(0, 100)
		bt.Get(0)
		bt.Get(-1)
		st := bt.Stat()
		require.EqualValues(t, 257, st.Puts)
		require.EqualValues(t, 1, st.Replaces)
		require.EqualValues(t, 2, st.Gets)
		require.EqualValues(t, 1, st.GetHits)
		require.NotZero(t, st.LeafSplits)
		require.NotZero(t, st.RootGrows)
		require.EqualValues(t, bt.lf.size(), st.LeafNodes)
		require.EqualValues(t, bt.in.size(), st.InternalNodes)
		// splits only ever allocate, nothing is freed or reused
		require.EqualValues(t, st.LeafSplits+1, st.LeafNodes)
		require.EqualValues(t, st.InternalSplits+st.RootGrows, st.InternalNodes)
	})
}

func TestBTreeInvariants(t *testing.T) {
	// structural audit after a random workload: every internal key is
	// the max key reachable under its son, all nodes within capacity
	bt, err := New[uint16, int](Config{Degree: 8})
	require.NoError(t, err)
	for i := 0; i < 100000; i++ {
		bt.Put(uint16(rand.UintN(1<<16)), i)
	}
	var audit func(ref nodeRef) uint16
	audit = func(ref nodeRef) uint16 {
		if ref.isLeaf() {
			lf := bt.lf.at(ref.index())
			require.Positive(t, lf.cnt)
			require.LessOrEqual(t, lf.cnt, len(lf.keys))
			require.True(t, slices.IsSorted(lf.keys[:lf.cnt]))
			return lf.keys[lf.cnt-1]
		}
		nd := bt.in.at(ref.index())
		require.Positive(t, nd.cnt)
		require.LessOrEqual(t, nd.cnt, len(nd.sons))
		require.True(t, slices.IsSorted(nd.keys[:nd.cnt-1]))
		var subMax uint16
		for i := 0; i < nd.cnt; i++ {
			subMax = audit(nd.sons[i])
			if i < nd.cnt-1 {
				require.Equal(t, nd.keys[i], subMax)
			}
		}
		return subMax
	}
	audit(bt.root)
}
