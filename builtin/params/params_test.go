// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package params_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-chain/venue/builtin/params"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/test/datagen"
	"github.com/venue-chain/venue/venue"
)

func TestParamsGetSet(t *testing.T) {
	st := state.New()
	p := params.New(datagen.RandAddress(), st)

	key := venue.BytesToBytes32([]byte("key"))
	value := big.NewInt(999)

	require.NoError(t, p.Set(key, value))
	got, err := p.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// unset keys read as zero
	got, err = p.Get(datagen.RandBytes32())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Sign())
}
