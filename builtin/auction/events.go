// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/binary"
	"math/big"

	"github.com/venue-chain/venue/venue"
	"github.com/venue-chain/venue/xenv"
)

// Event signatures, keccak256 of the canonical event declaration.
var (
	auctionCreatedEvent = venue.Keccak256([]byte("AuctionCreated(address,uint256,address,uint256,uint256,uint256)"))
	newBidEvent         = venue.Keccak256([]byte("NewBid(uint256,uint256,address)"))
	auctionEndedEvent   = venue.Keccak256([]byte("AuctionEnded(uint256,address,uint256)"))
	claimedEvent        = venue.Keccak256([]byte("Claimed(address,uint256)"))
	adminTransferEvent  = venue.Keccak256([]byte("AdminTransferred(address,address)"))
)

func idTopic(id uint64) venue.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	return venue.BytesToBytes32(b[:])
}

func addrTopic(addr venue.Address) venue.Bytes32 {
	return venue.BytesToBytes32(addr.Bytes())
}

func emitAuctionCreated(env *xenv.Environment, addr venue.Address, id uint64, lot *Lot) error {
	return env.Log(auctionCreatedEvent, addr,
		[]venue.Bytes32{addrTopic(lot.Seller), idTopic(id)},
		lot.TokenContract, lot.TokenID, lot.Price, lot.StartTime, lot.EndTime)
}

func emitNewBid(env *xenv.Environment, addr venue.Address, id uint64, bidder venue.Address, amount *big.Int) error {
	return env.Log(newBidEvent, addr,
		[]venue.Bytes32{idTopic(id), addrTopic(bidder)},
		amount)
}

func emitAuctionEnded(env *xenv.Environment, addr venue.Address, id uint64, winner venue.Address, finalAmount *big.Int) error {
	return env.Log(auctionEndedEvent, addr,
		[]venue.Bytes32{idTopic(id), addrTopic(winner)},
		finalAmount)
}

func emitClaimed(env *xenv.Environment, addr venue.Address, claimer venue.Address, id uint64) error {
	return env.Log(claimedEvent, addr,
		[]venue.Bytes32{addrTopic(claimer), idTopic(id)})
}

func emitAdminTransferred(env *xenv.Environment, addr venue.Address, prev, next venue.Address) error {
	return env.Log(adminTransferEvent, addr,
		[]venue.Bytes32{addrTopic(prev), addrTopic(next)})
}
