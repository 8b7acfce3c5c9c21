// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package params

import (
	"math/big"

	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
)

// Params binder of `Params` contract.
type Params struct {
	addr  venue.Address
	state *state.State
}

func New(addr venue.Address, state *state.State) *Params {
	return &Params{addr, state}
}

// Get native way to get param.
func (p *Params) Get(key venue.Bytes32) (*big.Int, error) {
	var v big.Int
	if err := p.state.GetStructuredStorage(p.addr, key, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Set native way to set param.
func (p *Params) Set(key venue.Bytes32, value *big.Int) error {
	return p.state.SetStructuredStorage(p.addr, key, value)
}
