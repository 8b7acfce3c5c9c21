// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venue-chain/venue/stackedmap"
)

func M(a ...any) []any {
	return a
}

func TestStackedMap(t *testing.T) {
	assert := assert.New(t)
	src := make(map[string]string)
	src["foo"] = "bar"

	sm := stackedmap.New(func(key any) (any, bool) {
		v, r := src[key.(string)]
		return v, r
	})

	tests := []struct {
		f         func()
		depth     int
		putKey    string
		putValue  string
		getKey    string
		getReturn []any
	}{
		{func() { sm.Push() }, 1, "", "", "foo", []any{"bar", true}},
		{func() { sm.Push() }, 2, "foo", "baz", "foo", []any{"baz", true}},
		{func() {}, 2, "foo", "baz1", "foo", []any{"baz1", true}},
		{func() { sm.Push() }, 3, "foo", "qux", "foo", []any{"qux", true}},
		{func() { sm.Pop() }, 2, "", "", "foo", []any{"baz1", true}},
		{func() { sm.Pop() }, 1, "", "", "foo", []any{"bar", true}},

		{func() { sm.Push(); sm.Push() }, 3, "", "", "", nil},
		{func() { sm.PopTo(0) }, 0, "", "", "", nil},
	}

	for _, test := range tests {
		test.f()
		assert.Equal(sm.Depth(), test.depth)
		if test.putKey != "" {
			sm.Put(test.putKey, test.putValue)
		}
		if test.getKey != "" {
			assert.Equal(M(sm.Get(test.getKey)), test.getReturn)
		}
	}
}

func TestStackedMapMissingKey(t *testing.T) {
	assert := assert.New(t)
	sm := stackedmap.New(func(_ any) (any, bool) {
		return nil, false
	})

	sm.Push()
	assert.Equal(M(sm.Get("a")), []any{nil, false})

	sm.Put("a", "b")
	assert.Equal(M(sm.Get("a")), []any{"b", true})

	sm.Pop()
	assert.Equal(M(sm.Get("a")), []any{nil, false})
}
