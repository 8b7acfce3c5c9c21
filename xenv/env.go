// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
)

// BlockContext block context.
type BlockContext struct {
	Number uint32
	Time   uint64
}

// Event is a log record produced by a built-in contract call.
// Topics[0] is the keccak256 hash of the event signature, further topics
// carry the indexed arguments, and Data the RLP encoded rest.
type Event struct {
	Address venue.Address
	Topics  []venue.Bytes32
	Data    []byte
}

// Environment is the environment of a single built-in contract call.
// It carries the caller identity, the value attached to the call and
// collects the events the call emits.
type Environment struct {
	state    *state.State
	blockCtx *BlockContext
	caller   venue.Address
	value    *big.Int
	events   []Event
}

// New creates a new call environment.
func New(state *state.State, blockCtx *BlockContext, caller venue.Address, value *big.Int) *Environment {
	if value == nil {
		value = new(big.Int)
	}
	return &Environment{
		state:    state,
		blockCtx: blockCtx,
		caller:   caller,
		value:    value,
	}
}

func (env *Environment) State() *state.State        { return env.state }
func (env *Environment) BlockContext() *BlockContext { return env.blockCtx }
func (env *Environment) Caller() venue.Address      { return env.caller }

// Value returns the native value attached to the call.
func (env *Environment) Value() *big.Int {
	return new(big.Int).Set(env.value)
}

// Transfer moves native value between two accounts.
// It fails if the sender balance is insufficient.
func (env *Environment) Transfer(from, to venue.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	fromBal, err := env.state.GetBalance(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return errors.Errorf("insufficient balance of %v", from)
	}
	// a self-transfer moves nothing
	if from == to {
		return nil
	}
	toBal, err := env.state.GetBalance(to)
	if err != nil {
		return err
	}
	if err := env.state.SetBalance(from, fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	return env.state.SetBalance(to, toBal.Add(toBal, amount))
}

// Log emits an event into the environment.
func (env *Environment) Log(signature venue.Bytes32, address venue.Address, topics []venue.Bytes32, args ...any) error {
	data, err := rlp.EncodeToBytes(args)
	if err != nil {
		return errors.WithMessage(err, "encode event data")
	}
	all := make([]venue.Bytes32, 0, len(topics)+1)
	all = append(all, signature)
	all = append(all, topics...)
	env.events = append(env.events, Event{
		Address: address,
		Topics:  all,
		Data:    data,
	})
	return nil
}

// Events returns the events emitted so far.
func (env *Environment) Events() []Event {
	return env.events
}

// Checkpoint marks a point the call can be fully rolled back to,
// covering both state writes and emitted events.
type Checkpoint struct {
	revision int
	nEvents  int
}

// NewCheckpoint makes a checkpoint of the environment.
func (env *Environment) NewCheckpoint() Checkpoint {
	return Checkpoint{
		revision: env.state.NewCheckpoint(),
		nEvents:  len(env.events),
	}
}

// RevertTo rolls the environment back to the given checkpoint.
func (env *Environment) RevertTo(cp Checkpoint) {
	env.state.RevertTo(cp.revision)
	env.events = env.events[:cp.nEvents]
}
