// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/test/datagen"
	"github.com/venue-chain/venue/venue"
)

func newTestContext() *Context {
	return NewContext(datagen.RandAddress(), state.New())
}

func TestUint256(t *testing.T) {
	u := NewUint256(newTestContext(), datagen.RandBytes32())

	value, err := u.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, value.Sign())

	u.Set(big.NewInt(100))
	value, err = u.Get()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), value)

	require.NoError(t, u.Add(big.NewInt(5)))
	require.NoError(t, u.Sub(big.NewInt(30)))
	value, err = u.Get()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(75), value)
}

func TestAddress(t *testing.T) {
	a := NewAddress(newTestContext(), datagen.RandBytes32())

	addr, err := a.Get()
	require.NoError(t, err)
	assert.True(t, addr.IsZero())

	stored := datagen.RandAddress()
	a.Set(&stored)
	addr, err = a.Get()
	require.NoError(t, err)
	assert.Equal(t, stored, addr)

	a.Set(nil)
	addr, err = a.Get()
	require.NoError(t, err)
	assert.True(t, addr.IsZero())
}

type addrKey venue.Address

func (k addrKey) Bytes() []byte { return k[:] }

func TestMapping(t *testing.T) {
	type record struct {
		Amount *big.Int
		Closed bool
	}

	ctx := newTestContext()
	m := NewMapping[addrKey, *record](ctx, datagen.RandBytes32())

	key := addrKey(datagen.RandAddress())

	// missing keys decode to the zero value
	value, err := m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, &record{}, value)

	require.NoError(t, m.Set(key, &record{Amount: big.NewInt(7), Closed: true}))
	value, err = m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), value.Amount)
	assert.True(t, value.Closed)

	// distinct keys occupy distinct slots
	other, err := m.Get(addrKey(datagen.RandAddress()))
	require.NoError(t, err)
	assert.Equal(t, &record{}, other)
}

func TestConfigVariableOverride(t *testing.T) {
	ctx := newTestContext()

	v := NewConfigVariable("test-config-value", 33)
	assert.Equal(t, uint64(33), v.Get())

	ctx.State().SetStorage(ctx.Address(), v.Slot(), venue.BytesToBytes32(big.NewInt(44).Bytes()))
	v.Override(ctx)
	assert.Equal(t, uint64(44), v.Get())

	// a second override is a no-op
	ctx.State().SetStorage(ctx.Address(), v.Slot(), venue.BytesToBytes32(big.NewInt(55).Bytes()))
	v.Override(ctx)
	assert.Equal(t, uint64(44), v.Get())
}

func TestConfigVariableDefault(t *testing.T) {
	v := NewConfigVariable("test-config-default", 10)
	v.Override(newTestContext())
	assert.Equal(t, uint64(10), v.Get())
}
