// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/venue-chain/venue/builtin/reverts"
	"github.com/venue-chain/venue/builtin/solidity"
	"github.com/venue-chain/venue/log"
	"github.com/venue-chain/venue/metrics"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
	"github.com/venue-chain/venue/xenv"
)

var logger = log.WithContext("pkg", "auction")

var (
	metricCreated = metrics.LazyLoadCounter("auction_created_count")
	metricBids    = metrics.LazyLoadCounter("auction_bid_count")
	metricSettled = metrics.LazyLoadCounterVec("auction_settled_count", []string{"path"})
)

// TransferableAsset is the narrow surface the engine needs from the
// contract of an escrowed asset. Sellers must approve the engine as
// transfer agent before listing.
type TransferableAsset interface {
	OwnerOf(tokenID *big.Int) (venue.Address, error)
	TransferFrom(caller, from, to venue.Address, tokenID *big.Int) error
}

// AssetResolver binds a token contract address to its asset surface.
type AssetResolver func(venue.Address) TransferableAsset

// Auction implements the English auction engine. It escrows one
// transferable asset per lot, holds competing bids in native value and
// refunds displaced bidders within the call that displaces them.
type Auction struct {
	addr    venue.Address
	storage *Storage
	resolve AssetResolver
}

// New create a new instance.
func New(addr venue.Address, st *state.State, resolve AssetResolver) *Auction {
	sctx := solidity.NewContext(addr, st)
	return &Auction{
		addr:    addr,
		storage: NewStorage(sctx),
		resolve: resolve,
	}
}

// Address returns the engine's contract address, the escrow account.
func (a *Auction) Address() venue.Address {
	return a.addr
}

// Admin returns the current administrator.
func (a *Auction) Admin() (venue.Address, error) {
	return a.storage.getAdmin()
}

// Initialize binds the administrator. One shot.
func (a *Auction) Initialize(env *xenv.Environment, admin venue.Address) (err error) {
	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
		}
	}()

	current, err := a.storage.getAdmin()
	if err != nil {
		return err
	}
	if !current.IsZero() {
		return reverts.New("Already initialized")
	}
	if admin.IsZero() {
		return reverts.New("Invalid admin address")
	}
	a.storage.setAdmin(admin)
	return emitAdminTransferred(env, a.addr, venue.Address{}, admin)
}

// TransferAdmin hands the administrator role over. Restricted to the
// current administrator; the zero address is rejected.
func (a *Auction) TransferAdmin(env *xenv.Environment, next venue.Address) (err error) {
	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
		}
	}()

	admin, err := a.storage.getAdmin()
	if err != nil {
		return err
	}
	if env.Caller() != admin {
		return reverts.New("Not the contract admin")
	}
	if next.IsZero() {
		return reverts.New("Invalid admin address")
	}
	a.storage.setAdmin(next)
	return emitAdminTransferred(env, a.addr, admin, next)
}

// AddAuction lists an asset for sale and pulls it into escrow.
// Auction ids start at 1.
func (a *Auction) AddAuction(
	env *xenv.Environment,
	tokenContract venue.Address,
	tokenID *big.Int,
	price *big.Int,
	startTime uint64,
	endTime uint64,
) (id uint64, err error) {
	caller := env.Caller()
	now := env.BlockContext().Time
	logger.Debug("adding auction", "seller", caller, "tokenContract", tokenContract, "tokenID", tokenID, "price", price)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("add auction failed", "seller", caller, "error", err)
		}
	}()

	asset := a.resolve(tokenContract)
	owner, err := asset.OwnerOf(tokenID)
	if err != nil {
		return 0, err
	}
	if owner != caller {
		return 0, reverts.New("Not the token owner")
	}
	if startTime <= now {
		return 0, reverts.New("Invalid start time")
	}
	if endTime <= startTime {
		return 0, reverts.New("Invalid end time")
	}

	// escrow the asset; requires prior approval of the engine
	if err := asset.TransferFrom(a.addr, caller, a.addr, tokenID); err != nil {
		return 0, err
	}

	count, err := a.storage.getCount()
	if err != nil {
		return 0, err
	}
	id = count + 1

	lot := &Lot{
		Seller:        caller,
		TokenContract: tokenContract,
		TokenID:       tokenID,
		Price:         price,
		StartTime:     startTime,
		EndTime:       endTime,
		HighestBid:    new(big.Int).Set(price),
	}
	if err := a.storage.setLot(id, lot); err != nil {
		return 0, err
	}
	a.storage.setCount(id)

	if err := emitAuctionCreated(env, a.addr, id, lot); err != nil {
		return 0, err
	}
	metricCreated().Add(1)
	logger.Info("added auction", "id", id, "seller", caller)
	return id, nil
}

// Bid places the value attached to the call as a new highest bid.
// The displaced bidder, if any, is refunded in full within this call.
func (a *Auction) Bid(env *xenv.Environment, id uint64) (err error) {
	caller := env.Caller()
	amount := env.Value()
	logger.Debug("bidding", "id", id, "bidder", caller, "amount", amount)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("bid failed", "id", id, "error", err)
		}
	}()

	lot, err := a.storage.getLot(id)
	if err != nil {
		return err
	}
	if lot.IsEmpty() {
		return reverts.New("Auction does not exist")
	}
	if lot.IsClaimed {
		return reverts.New("Auction closed")
	}
	if !lot.IsOpen(env.BlockContext().Time) {
		return reverts.New("Auction not open")
	}
	if amount.Cmp(lot.HighestBid) <= 0 {
		return reverts.New("Bid too low")
	}

	prevBidder := lot.HighestBidder
	prevBid := lot.HighestBid

	// record update precedes any value movement
	lot.HighestBid = amount
	lot.HighestBidder = caller
	if err := a.storage.setLot(id, lot); err != nil {
		return err
	}

	if err := env.Transfer(caller, a.addr, amount); err != nil {
		return err
	}
	if !prevBidder.IsZero() {
		if err := env.Transfer(a.addr, prevBidder, prevBid); err != nil {
			return err
		}
	}

	if err := emitNewBid(env, a.addr, id, caller, amount); err != nil {
		return err
	}
	metricBids().Add(1)
	logger.Info("new bid", "id", id, "bidder", caller, "amount", amount)
	return nil
}

// EndAuction lets the seller settle early while no bid has arrived.
// The escrowed asset returns to the seller with zero proceeds.
func (a *Auction) EndAuction(env *xenv.Environment, id uint64) (err error) {
	caller := env.Caller()
	logger.Debug("ending auction", "id", id, "caller", caller)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("end auction failed", "id", id, "error", err)
		}
	}()

	lot, err := a.storage.getLot(id)
	if err != nil {
		return err
	}
	if lot.IsEmpty() {
		return reverts.New("Auction does not exist")
	}
	if lot.IsClaimed {
		return reverts.New("Auction closed")
	}
	if caller != lot.Seller {
		return reverts.New("Not the token owner")
	}
	if env.BlockContext().Time < lot.StartTime {
		return reverts.New("Auction not open")
	}
	if lot.HasBidder() {
		return reverts.New("Already have bidder")
	}

	// latch before the asset leaves escrow
	lot.IsClaimed = true
	if err := a.storage.setLot(id, lot); err != nil {
		return err
	}
	if err := a.resolve(lot.TokenContract).TransferFrom(a.addr, a.addr, lot.Seller, lot.TokenID); err != nil {
		return err
	}

	if err := emitAuctionEnded(env, a.addr, id, venue.Address{}, new(big.Int)); err != nil {
		return err
	}
	metricSettled().AddWithLabel(1, map[string]string{"path": "end"})
	logger.Info("auction ended with no bidder", "id", id)
	return nil
}

// ClaimNFT settles a closed auction to the winner: the asset goes to
// the highest bidder and the winning bid to the seller.
func (a *Auction) ClaimNFT(env *xenv.Environment, id uint64) (err error) {
	caller := env.Caller()
	logger.Debug("claiming auction", "id", id, "caller", caller)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("claim failed", "id", id, "error", err)
		}
	}()

	lot, err := a.storage.getLot(id)
	if err != nil {
		return err
	}
	if lot.IsEmpty() {
		return reverts.New("Auction does not exist")
	}
	if lot.IsClaimed {
		return reverts.New("Auction already claimed")
	}
	if !lot.Ended(env.BlockContext().Time) {
		return reverts.New("Auction not ended yet")
	}
	if caller != lot.HighestBidder {
		return reverts.New("Not the token highest bidder")
	}

	// latch before the asset and the proceeds leave escrow
	lot.IsClaimed = true
	if err := a.storage.setLot(id, lot); err != nil {
		return err
	}
	if err := a.resolve(lot.TokenContract).TransferFrom(a.addr, a.addr, caller, lot.TokenID); err != nil {
		return err
	}
	if err := env.Transfer(a.addr, lot.Seller, lot.HighestBid); err != nil {
		return err
	}

	if err := emitClaimed(env, a.addr, caller, id); err != nil {
		return err
	}
	if err := emitAuctionEnded(env, a.addr, id, caller, lot.HighestBid); err != nil {
		return err
	}
	metricSettled().AddWithLabel(1, map[string]string{"path": "claim"})
	logger.Info("auction claimed", "id", id, "winner", caller, "amount", lot.HighestBid)
	return nil
}

// ForceEnded settles an auction by administrator override, any time
// before regular settlement: the active bidder, if any, is refunded and
// the asset returns to the seller.
func (a *Auction) ForceEnded(env *xenv.Environment, id uint64) (err error) {
	caller := env.Caller()
	logger.Debug("force ending auction", "id", id, "caller", caller)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("force end failed", "id", id, "error", err)
		}
	}()

	admin, err := a.storage.getAdmin()
	if err != nil {
		return err
	}
	if caller != admin {
		return reverts.New("Not the contract admin")
	}
	lot, err := a.storage.getLot(id)
	if err != nil {
		return err
	}
	if lot.IsEmpty() {
		return reverts.New("Auction does not exist")
	}
	if lot.IsClaimed {
		return reverts.New("Auction closed")
	}

	// latch before any refund or asset movement
	lot.IsClaimed = true
	if err := a.storage.setLot(id, lot); err != nil {
		return err
	}
	refund := new(big.Int)
	if lot.HasBidder() {
		refund = lot.HighestBid
		if err := env.Transfer(a.addr, lot.HighestBidder, refund); err != nil {
			return err
		}
	}
	if err := a.resolve(lot.TokenContract).TransferFrom(a.addr, a.addr, lot.Seller, lot.TokenID); err != nil {
		return err
	}

	// the refunded bidder and bid, so a forced settlement with bids
	// stays distinguishable from one without
	if err := emitAuctionEnded(env, a.addr, id, lot.HighestBidder, refund); err != nil {
		return err
	}
	metricSettled().AddWithLabel(1, map[string]string{"path": "force"})
	logger.Info("auction force ended", "id", id)
	return nil
}

// GetAuctionInfo returns the lot of an existing auction.
func (a *Auction) GetAuctionInfo(id uint64) (*Lot, error) {
	lot, err := a.storage.getLot(id)
	if err != nil {
		return nil, err
	}
	if lot.IsEmpty() {
		return nil, reverts.New("Auction does not exist")
	}
	return lot, nil
}

// Count returns the number of auctions ever created.
func (a *Auction) Count() (uint64, error) {
	return a.storage.getCount()
}
