package binary

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bstree/chops"
	"golang.org/x/exp/slices"
)

// TestAgainstBTree replays random inserts and deletes on both a Tree
// and a google/btree, which serves as the reference ordered set.
func TestAgainstBTree(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20
	const ops = 2000
	const keyspace = 300

	for round := 0; round < rounds; round++ {
		rd := rand.New(rand.NewSource(int64(seedrd.Uint64())))
		tr := &Tree[int]{}
		ref := btree.NewOrderedG[int](8)

		for op := 0; op < ops; op++ {
			k := rd.Intn(keyspace)

			if rd.Intn(3) == 0 {
				err := tr.Delete(k)
				_, had := ref.Delete(k)
				if had {
					require.NoError(t, err, "round %d op %d: delete %d", round, op, k)
				} else {
					require.ErrorIs(t, err, ErrElementNotFound, "round %d op %d: delete %d", round, op, k)
				}
			} else {
				err := tr.Insert(k)
				_, had := ref.ReplaceOrInsert(k)
				if had {
					require.ErrorIs(t, err, ErrDuplicateElement, "round %d op %d: insert %d", round, op, k)
				} else {
					require.NoError(t, err, "round %d op %d: insert %d", round, op, k)
				}
			}

			q := rd.Intn(keyspace+20) - 10
			require.Equal(t, ref.Has(q), tr.Contains(q), "round %d op %d: contains %d", round, op, q)
		}

		var want []int
		ref.Ascend(func(k int) bool {
			want = append(want, k)
			return true
		})
		assert.Equal(t, want, tr.Keys(), "round %d", round)
		assert.Equal(t, ref.Len(), tr.Count(), "round %d", round)

		var wantRev []int
		ref.Descend(func(k int) bool {
			wantRev = append(wantRev, k)
			return true
		})
		assert.Equal(t, wantRev, chops.Collect[int](tr.InOrderReverseIterator()), "round %d", round)

		refMin, refMinOk := ref.Min()
		min, minOk := tr.Min()
		assert.Equal(t, refMinOk, minOk)
		assert.Equal(t, refMin, min)

		refMax, refMaxOk := ref.Max()
		max, maxOk := tr.Max()
		assert.Equal(t, refMaxOk, maxOk)
		assert.Equal(t, refMax, max)

		for k := -1; k <= keyspace; k++ {
			wantLess, wantLessOk := refLess(ref, k)
			less, lessOk := tr.Less(k)
			assert.Equal(t, wantLessOk, lessOk, "round %d: Less(%d)", round, k)
			assert.Equal(t, wantLess, less, "round %d: Less(%d)", round, k)

			wantGreater, wantGreaterOk := refGreater(ref, k)
			greater, greaterOk := tr.Greater(k)
			assert.Equal(t, wantGreaterOk, greaterOk, "round %d: Greater(%d)", round, k)
			assert.Equal(t, wantGreater, greater, "round %d: Greater(%d)", round, k)
		}
	}
}

func refLess(ref *btree.BTreeG[int], k int) (less int, ok bool) {
	ref.DescendLessOrEqual(k, func(x int) bool {
		if x == k {
			return true
		}
		less, ok = x, true
		return false
	})
	return
}

func refGreater(ref *btree.BTreeG[int], k int) (greater int, ok bool) {
	ref.AscendGreaterOrEqual(k, func(x int) bool {
		if x == k {
			return true
		}
		greater, ok = x, true
		return false
	})
	return
}

func TestQuick_RoundTrip(t *testing.T) {
	f := func(keys []int16, absent []int16) bool {
		tr := &Tree[int16]{}
		_, _ = tr.InsertAll(keys...)

		for _, k := range keys {
			if !tr.Contains(k) {
				return false
			}
		}
		for _, k := range absent {
			if tr.Contains(k) != slices.Contains(keys, k) {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuick_AscendingAndCount(t *testing.T) {
	f := func(keys []int8, deletes []int8) bool {
		tr := &Tree[int8]{}
		_, _ = tr.InsertAll(keys...)

		distinct := slices.Clone(keys)
		slices.Sort(distinct)
		distinct = slices.Compact(distinct)
		if tr.Count() != len(distinct) {
			return false
		}

		deleted := 0
		for _, k := range deletes {
			if tr.Delete(k) == nil {
				deleted++
			}
		}
		if tr.Count() != len(distinct)-deleted {
			return false
		}

		got := tr.Keys()
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				return false
			}
		}

		min, ok := tr.Min()
		if ok != (len(got) > 0) || (ok && min != got[0]) {
			return false
		}
		max, ok := tr.Max()
		return ok == (len(got) > 0) && (!ok || max == got[len(got)-1])
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
