// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"encoding/binary"
	"math/big"

	"github.com/venue-chain/venue/venue"
	"github.com/venue-chain/venue/xenv"
)

// Event signatures, keccak256 of the canonical event declaration.
var (
	stakedEvent         = venue.Keccak256([]byte("Staked(address,uint256,uint256,uint256)"))
	unstakedEvent       = venue.Keccak256([]byte("Unstaked(address,uint256,uint256)"))
	rewardClaimedEvent  = venue.Keccak256([]byte("RewardClaimed(address,uint256,uint256)"))
	depositedEvent      = venue.Keccak256([]byte("Deposited(address,uint256)"))
	rewardTokenSetEvent = venue.Keccak256([]byte("RewardTokenSet(address,address)"))
	adminTransferEvent  = venue.Keccak256([]byte("AdminTransferred(address,address)"))
)

func addrTopic(addr venue.Address) venue.Bytes32 {
	return venue.BytesToBytes32(addr.Bytes())
}

func indexTopic(index uint64) venue.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], index)
	return venue.BytesToBytes32(b[:])
}

func emitStaked(env *xenv.Environment, addr venue.Address, owner venue.Address, index uint64, amount *big.Int, packageIndex uint8) error {
	return env.Log(stakedEvent, addr,
		[]venue.Bytes32{addrTopic(owner), indexTopic(index)},
		amount, packageIndex)
}

func emitUnstaked(env *xenv.Environment, addr venue.Address, owner venue.Address, index uint64, amount *big.Int) error {
	return env.Log(unstakedEvent, addr,
		[]venue.Bytes32{addrTopic(owner), indexTopic(index)},
		amount)
}

func emitRewardClaimed(env *xenv.Environment, addr venue.Address, owner venue.Address, index uint64, reward *big.Int) error {
	return env.Log(rewardClaimedEvent, addr,
		[]venue.Bytes32{addrTopic(owner), indexTopic(index)},
		reward)
}

func emitDeposited(env *xenv.Environment, addr venue.Address, from venue.Address, amount *big.Int) error {
	return env.Log(depositedEvent, addr,
		[]venue.Bytes32{addrTopic(from)},
		amount)
}

func emitRewardTokenSet(env *xenv.Environment, addr venue.Address, prev, next venue.Address) error {
	return env.Log(rewardTokenSetEvent, addr,
		[]venue.Bytes32{addrTopic(prev), addrTopic(next)})
}

func emitAdminTransferred(env *xenv.Environment, addr venue.Address, prev, next venue.Address) error {
	return env.Log(adminTransferEvent, addr,
		[]venue.Bytes32{addrTopic(prev), addrTopic(next)})
}
