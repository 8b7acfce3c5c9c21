// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/venue-chain/venue/venue"
)

// Lot is a single auctioned asset and its bidding state.
// The asset sits in the engine's escrow from creation until settlement;
// IsClaimed latches the record once settled, records are never deleted.
type Lot struct {
	Seller        venue.Address // asset owner at creation time
	TokenContract venue.Address // contract the escrowed token belongs to
	TokenID       *big.Int
	Price         *big.Int // reserve price, floor for all bids
	StartTime     uint64
	EndTime       uint64
	HighestBid    *big.Int      // starts at the reserve price
	HighestBidder venue.Address // zero until the first accepted bid
	IsClaimed     bool
}

// IsEmpty returns whether the entry can be treated as empty.
func (l *Lot) IsEmpty() bool {
	return l.Seller.IsZero()
}

// HasBidder returns whether any bid has been accepted.
func (l *Lot) HasBidder() bool {
	return !l.HighestBidder.IsZero()
}

// IsOpen returns whether bids are accepted at the given time.
func (l *Lot) IsOpen(now uint64) bool {
	return now >= l.StartTime && now < l.EndTime
}

// Ended returns whether the bidding window has passed.
func (l *Lot) Ended(now uint64) bool {
	return now >= l.EndTime
}
