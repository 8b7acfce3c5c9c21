// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/venue-chain/venue/venue"
)

// Address is a wrapper for storage and retrieval of an address. Similar to storing an address in a smart contract.
// It can also be accessed directly in the relevant built-in contract if declared in the same `pos`
type Address struct {
	context *Context
	pos     venue.Bytes32
}

func NewAddress(context *Context, pos venue.Bytes32) *Address {
	return &Address{context: context, pos: pos}
}

func (a *Address) Get() (venue.Address, error) {
	storage, err := a.context.state.GetStorage(a.context.address, a.pos)
	if err != nil {
		return venue.Address{}, err
	}
	return venue.BytesToAddress(storage.Bytes()), nil
}

func (a *Address) Set(addr *venue.Address) {
	var storage venue.Bytes32
	if addr != nil {
		storage = venue.BytesToBytes32(addr.Bytes())
	}
	a.context.state.SetStorage(a.context.address, a.pos, storage)
}
