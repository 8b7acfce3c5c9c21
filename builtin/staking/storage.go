// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/venue-chain/venue/builtin/solidity"
	"github.com/venue-chain/venue/venue"
)

var (
	slotAdmin       = venue.BytesToBytes32([]byte("staking-admin"))
	slotRewardToken = venue.BytesToBytes32([]byte("staking-reward-token"))
	slotStakes      = venue.BytesToBytes32([]byte("staking-stakes"))
	slotCounts      = venue.BytesToBytes32([]byte("staking-stake-counts"))
)

// stakeKey addresses one stake record: (depositor, position in the depositor's list).
type stakeKey struct {
	owner venue.Address
	index uint64
}

func (k stakeKey) Bytes() []byte {
	b := make([]byte, venue.AddressLength+8)
	copy(b, k.owner.Bytes())
	binary.BigEndian.PutUint64(b[venue.AddressLength:], k.index)
	return b
}

type countKey venue.Address

func (k countKey) Bytes() []byte {
	return k[:]
}

type Storage struct {
	admin       *solidity.Address
	rewardToken *solidity.Address
	stakes      *solidity.Mapping[stakeKey, Stake]
	counts      *solidity.Mapping[countKey, uint64]
}

func NewStorage(sctx *solidity.Context) *Storage {
	return &Storage{
		admin:       solidity.NewAddress(sctx, slotAdmin),
		rewardToken: solidity.NewAddress(sctx, slotRewardToken),
		stakes:      solidity.NewMapping[stakeKey, Stake](sctx, slotStakes),
		counts:      solidity.NewMapping[countKey, uint64](sctx, slotCounts),
	}
}

func (s *Storage) getStake(owner venue.Address, index uint64) (*Stake, error) {
	stake, err := s.stakes.Get(stakeKey{owner, index})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stake")
	}
	return &stake, nil
}

func (s *Storage) setStake(owner venue.Address, index uint64, stake *Stake) error {
	if err := s.stakes.Set(stakeKey{owner, index}, *stake); err != nil {
		return errors.Wrap(err, "failed to set stake")
	}
	return nil
}

func (s *Storage) getCount(owner venue.Address) (uint64, error) {
	count, err := s.counts.Get(countKey(owner))
	if err != nil {
		return 0, errors.Wrap(err, "failed to get stake count")
	}
	return count, nil
}

func (s *Storage) setCount(owner venue.Address, count uint64) error {
	if err := s.counts.Set(countKey(owner), count); err != nil {
		return errors.Wrap(err, "failed to set stake count")
	}
	return nil
}

func (s *Storage) getAdmin() (venue.Address, error) {
	admin, err := s.admin.Get()
	if err != nil {
		return venue.Address{}, errors.Wrap(err, "failed to get admin")
	}
	return admin, nil
}

func (s *Storage) setAdmin(admin venue.Address) {
	s.admin.Set(&admin)
}

func (s *Storage) getRewardToken() (venue.Address, error) {
	addr, err := s.rewardToken.Get()
	if err != nil {
		return venue.Address{}, errors.Wrap(err, "failed to get reward token")
	}
	return addr, nil
}

func (s *Storage) setRewardToken(addr venue.Address) {
	s.rewardToken.Set(&addr)
}
