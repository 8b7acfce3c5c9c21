// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"

	"github.com/venue-chain/venue/builtin/solidity"
	"github.com/venue-chain/venue/venue"
)

var (
	slotAdmin = venue.BytesToBytes32([]byte("auction-admin"))
	slotCount = venue.BytesToBytes32([]byte("auction-count"))
	slotLots  = venue.BytesToBytes32([]byte("auction-lots"))
)

type lotID uint64

func (id lotID) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b[:]
}

type Storage struct {
	admin *solidity.Address
	count *solidity.Uint256
	lots  *solidity.Mapping[lotID, Lot]
}

func NewStorage(sctx *solidity.Context) *Storage {
	return &Storage{
		admin: solidity.NewAddress(sctx, slotAdmin),
		count: solidity.NewUint256(sctx, slotCount),
		lots:  solidity.NewMapping[lotID, Lot](sctx, slotLots),
	}
}

func (s *Storage) getLot(id uint64) (*Lot, error) {
	lot, err := s.lots.Get(lotID(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get lot")
	}
	return &lot, nil
}

func (s *Storage) setLot(id uint64, lot *Lot) error {
	if err := s.lots.Set(lotID(id), *lot); err != nil {
		return errors.Wrap(err, "failed to set lot")
	}
	return nil
}

func (s *Storage) getCount() (uint64, error) {
	count, err := s.count.Get()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get auction count")
	}
	return count.Uint64(), nil
}

func (s *Storage) setCount(count uint64) {
	s.count.Set(new(big.Int).SetUint64(count))
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
