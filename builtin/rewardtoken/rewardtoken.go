// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardtoken

import (
	"math/big"

	"github.com/venue-chain/venue/builtin/reverts"
	"github.com/venue-chain/venue/builtin/solidity"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
)

var (
	slotMaster      = venue.BytesToBytes32([]byte("reward-token-master"))
	slotTotalSupply = venue.BytesToBytes32([]byte("reward-token-supply"))
	slotBalances    = venue.BytesToBytes32([]byte("reward-token-balances"))
	slotMinters     = venue.BytesToBytes32([]byte("reward-token-minters"))
)

// RewardToken is the fungible token staking rewards are minted from.
// Minting is gated by a capability the master grants to other contracts.
type RewardToken struct {
	sctx        *solidity.Context
	master      *solidity.Address
	totalSupply *solidity.Uint256
	balances    *solidity.Mapping[venue.Address, *big.Int]
	minters     *solidity.Mapping[venue.Address, bool]
}

// New create a new instance.
func New(addr venue.Address, st *state.State) *RewardToken {
	sctx := solidity.NewContext(addr, st)
	return &RewardToken{
		sctx:        sctx,
		master:      solidity.NewAddress(sctx, slotMaster),
		totalSupply: solidity.NewUint256(sctx, slotTotalSupply),
		balances:    solidity.NewMapping[venue.Address, *big.Int](sctx, slotBalances),
		minters:     solidity.NewMapping[venue.Address, bool](sctx, slotMinters),
	}
}

// Address returns the contract address.
func (r *RewardToken) Address() venue.Address {
	return r.sctx.Address()
}

// SetMaster binds the capability-granting authority.
func (r *RewardToken) SetMaster(master venue.Address) {
	r.master.Set(&master)
}

func (r *RewardToken) Master() (venue.Address, error) {
	return r.master.Get()
}

// GrantMinter gives the address the minter capability. Restricted to the master.
func (r *RewardToken) GrantMinter(caller, addr venue.Address) error {
	master, err := r.master.Get()
	if err != nil {
		return err
	}
	if caller != master {
		return reverts.New("Not the token master")
	}
	return r.minters.Set(addr, true)
}

// RevokeMinter removes the minter capability. Restricted to the master.
func (r *RewardToken) RevokeMinter(caller, addr venue.Address) error {
	master, err := r.master.Get()
	if err != nil {
		return err
	}
	if caller != master {
		return reverts.New("Not the token master")
	}
	return r.minters.Set(addr, false)
}

// IsMinter returns whether the address holds the minter capability.
func (r *RewardToken) IsMinter(addr venue.Address) (bool, error) {
	return r.minters.Get(addr)
}

// MintTo mints new tokens to the recipient. Restricted to minter capability holders.
func (r *RewardToken) MintTo(caller, recipient venue.Address, amount *big.Int) error {
	ok, err := r.minters.Get(caller)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.New("Not a minter")
	}
	if amount.Sign() == 0 {
		return nil
	}
	bal, err := r.balanceOf(recipient)
	if err != nil {
		return err
	}
	if err := r.balances.Set(recipient, bal.Add(bal, amount)); err != nil {
		return err
	}
	return r.totalSupply.Add(amount)
}

// BalanceOf returns token balance of an account.
func (r *RewardToken) BalanceOf(addr venue.Address) (*big.Int, error) {
	return r.balanceOf(addr)
}

// TotalSupply returns total minted supply.
func (r *RewardToken) TotalSupply() (*big.Int, error) {
	return r.totalSupply.Get()
}

func (r *RewardToken) balanceOf(addr venue.Address) (*big.Int, error) {
	bal, err := r.balances.Get(addr)
	if err != nil {
		return nil, err
	}
	if bal == nil {
		return new(big.Int), nil
	}
	return bal, nil
}
