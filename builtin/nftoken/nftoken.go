// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nftoken

import (
	"math/big"

	"github.com/venue-chain/venue/builtin/reverts"
	"github.com/venue-chain/venue/builtin/solidity"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
)

var (
	slotMaster    = venue.BytesToBytes32([]byte("nftoken-master"))
	slotOwners    = venue.BytesToBytes32([]byte("nftoken-owners"))
	slotApprovals = venue.BytesToBytes32([]byte("nftoken-approvals"))
)

// NFToken is a minimal non-fungible token registry: per-token ownership
// and a single transfer approval per token. It is the transferable asset
// the auction engine escrows.
type NFToken struct {
	sctx      *solidity.Context
	master    *solidity.Address
	owners    *solidity.Mapping[*big.Int, venue.Address]
	approvals *solidity.Mapping[*big.Int, venue.Address]
}

// New create a new instance.
func New(addr venue.Address, st *state.State) *NFToken {
	sctx := solidity.NewContext(addr, st)
	return &NFToken{
		sctx:      sctx,
		master:    solidity.NewAddress(sctx, slotMaster),
		owners:    solidity.NewMapping[*big.Int, venue.Address](sctx, slotOwners),
		approvals: solidity.NewMapping[*big.Int, venue.Address](sctx, slotApprovals),
	}
}

// Address returns the contract address.
func (n *NFToken) Address() venue.Address {
	return n.sctx.Address()
}

// SetMaster binds the minting authority.
func (n *NFToken) SetMaster(master venue.Address) {
	n.master.Set(&master)
}

func (n *NFToken) Master() (venue.Address, error) {
	return n.master.Get()
}

// Mint assigns a fresh token to the given owner. Restricted to the master.
func (n *NFToken) Mint(caller, to venue.Address, tokenID *big.Int) error {
	master, err := n.master.Get()
	if err != nil {
		return err
	}
	if caller != master {
		return reverts.New("Not the token master")
	}
	if to.IsZero() {
		return reverts.New("Mint to zero address")
	}
	owner, err := n.owners.Get(tokenID)
	if err != nil {
		return err
	}
	if !owner.IsZero() {
		return reverts.New("Token already minted")
	}
	return n.owners.Set(tokenID, to)
}

// OwnerOf returns the current owner of a token.
// The zero address means the token does not exist.
func (n *NFToken) OwnerOf(tokenID *big.Int) (venue.Address, error) {
	return n.owners.Get(tokenID)
}

// Approve authorizes the given address to transfer the token on the owner's behalf.
// Only the current owner may approve.
func (n *NFToken) Approve(caller, approved venue.Address, tokenID *big.Int) error {
	owner, err := n.owners.Get(tokenID)
	if err != nil {
		return err
	}
	if owner.IsZero() {
		return reverts.New("Token does not exist")
	}
	if caller != owner {
		return reverts.New("Not the token owner")
	}
	return n.approvals.Set(tokenID, approved)
}

// GetApproved returns the address approved to transfer the token, if any.
func (n *NFToken) GetApproved(tokenID *big.Int) (venue.Address, error) {
	return n.approvals.Get(tokenID)
}

// TransferFrom moves the token from its owner to the recipient.
// The caller must be the owner or the approved transfer agent.
// Any outstanding approval is cleared by the transfer.
func (n *NFToken) TransferFrom(caller, from, to venue.Address, tokenID *big.Int) error {
	owner, err := n.owners.Get(tokenID)
	if err != nil {
		return err
	}
	if owner.IsZero() {
		return reverts.New("Token does not exist")
	}
	if from != owner {
		return reverts.New("Transfer from wrong owner")
	}
	if to.IsZero() {
		return reverts.New("Transfer to zero address")
	}
	if caller != owner {
		approved, err := n.approvals.Get(tokenID)
		if err != nil {
			return err
		}
		if caller != approved {
			return reverts.New("Not authorized to transfer")
		}
	}
	if err := n.approvals.Set(tokenID, venue.Address{}); err != nil {
		return err
	}
	return n.owners.Set(tokenID, to)
}
