// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/venue-chain/venue/venue"
)

// Package is a fixed (duration, reward-rate) tier selectable at stake time.
// The rate is expressed in parts per hundred thousand per locked day.
type Package struct {
	Duration   uint64 // lock period in seconds
	RewardRate uint64
}

// Stake is one deposit of native value locked for a package's duration.
// Duration and rate are frozen at stake time; rebinding the reward token
// or tuning the tier table later never changes an existing stake.
type Stake struct {
	Amount        *big.Int
	StartTime     uint64
	Duration      uint64
	RewardRate    uint64
	Withdrawn     bool // principal returned, one shot
	RewardClaimed bool // reward minted, one shot, independent of Withdrawn
}

// IsEmpty returns whether the entry can be treated as empty.
func (s *Stake) IsEmpty() bool {
	return s.Amount == nil || s.Amount.Sign() == 0
}

// MatureTime returns the first moment the stake can be withdrawn.
func (s *Stake) MatureTime() uint64 {
	return s.StartTime + s.Duration
}

// Matured returns whether the lock period has fully passed.
func (s *Stake) Matured(now uint64) bool {
	return now >= s.MatureTime()
}

// Reward computes the flat reward for the committed lock period:
// amount * rate * duration / (day * scale), the rate being per locked
// day. Computed in seconds so sub-day debug periods prorate rather
// than truncate to zero. It does not accrue past maturity.
func (s *Stake) Reward(scale *big.Int) *big.Int {
	reward := new(big.Int).Mul(s.Amount, new(big.Int).SetUint64(s.RewardRate))
	reward.Mul(reward, new(big.Int).SetUint64(s.Duration))
	day := new(big.Int).SetUint64(venue.DaySeconds)
	return reward.Quo(reward, day.Mul(day, scale))
}
