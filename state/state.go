// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/venue-chain/venue/stackedmap"
	"github.com/venue-chain/venue/venue"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

type (
	balanceKey venue.Address
	storageKey struct {
		addr venue.Address
		key  venue.Bytes32
	}
)

// State manages the account state of the built-in contracts and their callers.
// All changes are journaled, so a failed call can be rolled back to its
// checkpoint with no partial effect.
type State struct {
	sm *stackedmap.StackedMap
}

// New creates a fresh state instance.
func New() *State {
	sm := stackedmap.New(func(_ any) (any, bool) {
		return nil, false
	})
	// base level, never popped
	sm.Push()
	return &State{sm: sm}
}

// GetBalance returns native balance of an account.
func (s *State) GetBalance(addr venue.Address) (*big.Int, error) {
	if v, ok := s.sm.Get(balanceKey(addr)); ok {
		return new(big.Int).Set(v.(*big.Int)), nil
	}
	return new(big.Int), nil
}

// SetBalance sets native balance of an account.
func (s *State) SetBalance(addr venue.Address, balance *big.Int) error {
	if balance.Sign() < 0 {
		return &Error{fmt.Errorf("negative balance for %v", addr)}
	}
	s.sm.Put(balanceKey(addr), new(big.Int).Set(balance))
	return nil
}

// GetRawStorage returns the raw storage value for the given key.
func (s *State) GetRawStorage(addr venue.Address, key venue.Bytes32) (rlp.RawValue, error) {
	if v, ok := s.sm.Get(storageKey{addr, key}); ok {
		return v.(rlp.RawValue), nil
	}
	return nil, nil
}

// SetRawStorage sets the raw storage value for the given key.
// Empty raw clears the slot.
func (s *State) SetRawStorage(addr venue.Address, key venue.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// GetStorage returns storage value for the given key.
func (s *State) GetStorage(addr venue.Address, key venue.Bytes32) (venue.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return venue.Bytes32{}, err
	}
	return venue.BytesToBytes32(raw), nil
}

// SetStorage sets storage value for the given key.
// Zero value clears the slot.
func (s *State) SetStorage(addr venue.Address, key, value venue.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	trimmed := value.Bytes()
	for len(trimmed) > 0 && trimmed[0] == 0 {
		trimmed = trimmed[1:]
	}
	s.SetRawStorage(addr, key, trimmed)
}

// EncodeStorage sets storage value encoded by given enc method.
// An empty encoded value clears the slot.
func (s *State) EncodeStorage(addr venue.Address, key venue.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage gets storage value and decodes it by the given dec method.
func (s *State) DecodeStorage(addr venue.Address, key venue.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// GetStructuredStorage gets and decodes RLP structured storage value for the given key.
// The val should be a pointer to the storage value type.
func (s *State) GetStructuredStorage(addr venue.Address, key venue.Bytes32, val any) error {
	return s.DecodeStorage(addr, key, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, val)
	})
}

// SetStructuredStorage encodes the given value with RLP and stores it under the given key.
func (s *State) SetStructuredStorage(addr venue.Address, key venue.Bytes32, val any) error {
	return s.EncodeStorage(addr, key, func() ([]byte, error) {
		return rlp.EncodeToBytes(val)
	})
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts state to the given revision.
// The base revision can not be popped.
func (s *State) RevertTo(revision int) {
	if revision < 1 {
		revision = 1
	}
	s.sm.PopTo(revision)
}
