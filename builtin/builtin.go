// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/venue-chain/venue/builtin/auction"
	"github.com/venue-chain/venue/builtin/nftoken"
	"github.com/venue-chain/venue/builtin/params"
	"github.com/venue-chain/venue/builtin/rewardtoken"
	"github.com/venue-chain/venue/builtin/staking"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
)

// Builtin contracts binding. Addresses are the right-aligned contract
// names, stable across deployments.
var (
	Params      = &paramsContract{contract{venue.BytesToAddress([]byte("Params"))}}
	NFToken     = &nftokenContract{contract{venue.BytesToAddress([]byte("NFToken"))}}
	RewardToken = &rewardTokenContract{contract{venue.BytesToAddress([]byte("RewardToken"))}}
	Auction     = &auctionContract{contract{venue.BytesToAddress([]byte("Auction"))}}
	Staking     = &stakingContract{contract{venue.BytesToAddress([]byte("Staking"))}}
)

type contract struct {
	Address venue.Address
}

type (
	paramsContract      struct{ contract }
	nftokenContract     struct{ contract }
	rewardTokenContract struct{ contract }
	auctionContract     struct{ contract }
	stakingContract     struct{ contract }
)

func (p *paramsContract) WithState(state *state.State) *params.Params {
	return params.New(p.Address, state)
}

func (n *nftokenContract) WithState(state *state.State) *nftoken.NFToken {
	return nftoken.New(n.Address, state)
}

func (r *rewardTokenContract) WithState(state *state.State) *rewardtoken.RewardToken {
	return rewardtoken.New(r.Address, state)
}

// WithState binds the auction engine, resolving escrowed token contracts
// to NFT registries living on the same state.
func (a *auctionContract) WithState(state *state.State) *auction.Auction {
	return auction.New(a.Address, state, func(tokenContract venue.Address) auction.TransferableAsset {
		return nftoken.New(tokenContract, state)
	})
}

// WithState binds the staking engine, resolving the bound reward token
// to a mintable token on the same state.
func (s *stakingContract) WithState(state *state.State) *staking.Staking {
	return staking.New(s.Address, state, Params.WithState(state), func(token venue.Address) staking.RewardMinter {
		return rewardtoken.New(token, state)
	})
}
