// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
)

// Context binds a built-in contract address to the state it stores into.
type Context struct {
	address venue.Address
	state   *state.State
}

func NewContext(address venue.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() venue.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}
