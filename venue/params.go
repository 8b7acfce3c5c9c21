// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package venue

import "math/big"

// Constants of the protocol.
const (
	DaySeconds uint64 = 24 * 60 * 60 // seconds per day, the unit of staking package durations.

	RewardRateScale uint64 = 100_000 // reward rates are expressed in parts per hundred thousand per locked day.
)

// Keys of governance params.
var (
	KeyRewardRateScale = BytesToBytes32([]byte("reward-rate-scale"))

	InitialRewardRateScale = new(big.Int).SetUint64(RewardRateScale)
)
