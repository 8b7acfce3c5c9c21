// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/venue-chain/venue/builtin/params"
	"github.com/venue-chain/venue/builtin/reverts"
	"github.com/venue-chain/venue/builtin/solidity"
	"github.com/venue-chain/venue/log"
	"github.com/venue-chain/venue/metrics"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/venue"
	"github.com/venue-chain/venue/xenv"
)

var logger = log.WithContext("pkg", "staking")

// Lock periods of the fixed package table. Overridable through storage
// slots for debug deployments, the way staking periods are tuned.
var (
	ShortStakingPeriod  = solidity.NewConfigVariable("staking-short-period", 30*venue.DaySeconds)
	MediumStakingPeriod = solidity.NewConfigVariable("staking-medium-period", 60*venue.DaySeconds)
	LongStakingPeriod   = solidity.NewConfigVariable("staking-long-period", 90*venue.DaySeconds)
)

// Reward rates per package, parts per hundred thousand per locked day.
const (
	ShortRewardRate  uint64 = 10
	MediumRewardRate uint64 = 20
	LongRewardRate   uint64 = 30
)

var (
	metricStakes  = metrics.LazyLoadCounter("staking_stake_count")
	metricUnstake = metrics.LazyLoadCounter("staking_unstake_count")
	metricClaims  = metrics.LazyLoadCounter("staking_reward_claim_count")
	metricActive  = metrics.LazyLoadGauge("staking_active_stakes")
)

// RewardMinter is the narrow surface the engine needs from the reward
// token: minting against the engine's minter capability.
type RewardMinter interface {
	MintTo(caller, recipient venue.Address, amount *big.Int) error
}

// MinterResolver binds a reward token address to its minting surface.
type MinterResolver func(venue.Address) RewardMinter

// Staking implements the fixed-duration staking engine. Principal is
// pooled in the engine's own native balance; rewards are minted from an
// external reward token the engine holds a minter capability on.
type Staking struct {
	addr     venue.Address
	storage  *Storage
	params   *params.Params
	resolve  MinterResolver
	packages []Package
}

// New create a new instance.
func New(addr venue.Address, st *state.State, params *params.Params, resolve MinterResolver) *Staking {
	sctx := solidity.NewContext(addr, st)

	// debug overrides for testing
	ShortStakingPeriod.Override(sctx)
	MediumStakingPeriod.Override(sctx)
	LongStakingPeriod.Override(sctx)

	return &Staking{
		addr:    addr,
		storage: NewStorage(sctx),
		params:  params,
		resolve: resolve,
		packages: []Package{
			{Duration: ShortStakingPeriod.Get(), RewardRate: ShortRewardRate},
			{Duration: MediumStakingPeriod.Get(), RewardRate: MediumRewardRate},
			{Duration: LongStakingPeriod.Get(), RewardRate: LongRewardRate},
		},
	}
}

// Address returns the engine's contract address, the principal pool account.
func (s *Staking) Address() venue.Address {
	return s.addr
}

// Packages lists the full package table.
func (s *Staking) Packages() []Package {
	out := make([]Package, len(s.packages))
	copy(out, s.packages)
	return out
}

// Admin returns the current administrator.
func (s *Staking) Admin() (venue.Address, error) {
	return s.storage.getAdmin()
}

// RewardToken returns the bound reward token address.
func (s *Staking) RewardToken() (venue.Address, error) {
	return s.storage.getRewardToken()
}

// Initialize binds the administrator and the reward token. One shot.
func (s *Staking) Initialize(env *xenv.Environment, admin, rewardToken venue.Address) (err error) {
	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
		}
	}()

	current, err := s.storage.getAdmin()
	if err != nil {
		return err
	}
	if !current.IsZero() {
		return reverts.New("Already initialized")
	}
	if admin.IsZero() {
		return reverts.New("Invalid admin address")
	}
	if rewardToken.IsZero() {
		return reverts.New("Invalid reward token")
	}
	s.storage.setAdmin(admin)
	s.storage.setRewardToken(rewardToken)
	if err := emitAdminTransferred(env, s.addr, venue.Address{}, admin); err != nil {
		return err
	}
	return emitRewardTokenSet(env, s.addr, venue.Address{}, rewardToken)
}

// TransferAdmin hands the administrator role over. Restricted to the
// current administrator; the zero address is rejected.
func (s *Staking) TransferAdmin(env *xenv.Environment, next venue.Address) (err error) {
	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
		}
	}()

	admin, err := s.storage.getAdmin()
	if err != nil {
		return err
	}
	if env.Caller() != admin {
		return reverts.New("Not the contract admin")
	}
	if next.IsZero() {
		return reverts.New("Invalid admin address")
	}
	s.storage.setAdmin(next)
	return emitAdminTransferred(env, s.addr, admin, next)
}

// Stake locks the value attached to the call under the selected package.
// It returns the position of the new stake in the caller's list.
func (s *Staking) Stake(env *xenv.Environment, packageIndex uint8) (index uint64, err error) {
	caller := env.Caller()
	amount := env.Value()
	now := env.BlockContext().Time
	logger.Debug("staking", "owner", caller, "package", packageIndex, "amount", amount)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("stake failed", "owner", caller, "error", err)
		}
	}()

	if int(packageIndex) >= len(s.packages) {
		return 0, reverts.New("Invalid duration")
	}
	if amount.Sign() == 0 {
		return 0, reverts.New("Invalid amount")
	}
	pkg := s.packages[packageIndex]

	count, err := s.storage.getCount(caller)
	if err != nil {
		return 0, err
	}
	index = count

	stake := &Stake{
		Amount:     amount,
		StartTime:  now,
		Duration:   pkg.Duration,
		RewardRate: pkg.RewardRate,
	}
	if err := s.storage.setStake(caller, index, stake); err != nil {
		return 0, err
	}
	if err := s.storage.setCount(caller, count+1); err != nil {
		return 0, err
	}
	if err := env.Transfer(caller, s.addr, amount); err != nil {
		return 0, err
	}

	if err := emitStaked(env, s.addr, caller, index, amount, packageIndex); err != nil {
		return 0, err
	}
	metricStakes().Add(1)
	metricActive().Add(1)
	logger.Info("staked", "owner", caller, "index", index, "amount", amount)
	return index, nil
}

// Unstake returns the principal of a matured stake.
// The principal must be payable from the engine's own pool; exhaustion
// is surfaced to the caller and left to an administrator top-up.
func (s *Staking) Unstake(env *xenv.Environment, index uint64) (err error) {
	caller := env.Caller()
	logger.Debug("unstaking", "owner", caller, "index", index)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("unstake failed", "owner", caller, "index", index, "error", err)
		}
	}()

	stake, err := s.getExistingStake(caller, index)
	if err != nil {
		return err
	}
	if !stake.Matured(env.BlockContext().Time) {
		return reverts.New("Stake not completed yet")
	}
	if stake.Withdrawn {
		return reverts.New("Already unstaked")
	}
	pool, err := env.State().GetBalance(s.addr)
	if err != nil {
		return err
	}
	if pool.Cmp(stake.Amount) < 0 {
		return reverts.New("Insufficient balance, contact admin to unstake")
	}

	// latch before the principal leaves the pool
	stake.Withdrawn = true
	if err := s.storage.setStake(caller, index, stake); err != nil {
		return err
	}
	if err := env.Transfer(s.addr, caller, stake.Amount); err != nil {
		return err
	}

	if err := emitUnstaked(env, s.addr, caller, index, stake.Amount); err != nil {
		return err
	}
	metricUnstake().Add(1)
	metricActive().Add(-1)
	logger.Info("unstaked", "owner", caller, "index", index, "amount", stake.Amount)
	return nil
}

// ClaimReward mints the flat reward of a matured stake to its owner.
// Claimable once per stake, independent of the principal withdrawal.
func (s *Staking) ClaimReward(env *xenv.Environment, index uint64) (err error) {
	caller := env.Caller()
	logger.Debug("claiming reward", "owner", caller, "index", index)

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
			logger.Info("claim reward failed", "owner", caller, "index", index, "error", err)
		}
	}()

	stake, err := s.getExistingStake(caller, index)
	if err != nil {
		return err
	}
	if !stake.Matured(env.BlockContext().Time) {
		return reverts.New("Stake not completed yet")
	}
	if stake.RewardClaimed {
		return reverts.New("Reward already claimed")
	}
	tokenAddr, err := s.storage.getRewardToken()
	if err != nil {
		return err
	}
	if tokenAddr.IsZero() {
		return reverts.New("Reward token not set")
	}
	scale, err := s.rewardScale()
	if err != nil {
		return err
	}
	reward := stake.Reward(scale)

	// latch before the mint call leaves the engine
	stake.RewardClaimed = true
	if err := s.storage.setStake(caller, index, stake); err != nil {
		return err
	}
	if err := s.resolve(tokenAddr).MintTo(s.addr, caller, reward); err != nil {
		return err
	}

	if err := emitRewardClaimed(env, s.addr, caller, index, reward); err != nil {
		return err
	}
	metricClaims().Add(1)
	logger.Info("reward claimed", "owner", caller, "index", index, "reward", reward)
	return nil
}

// Deposit tops the principal pool up. Restricted to the administrator.
func (s *Staking) Deposit(env *xenv.Environment) (err error) {
	caller := env.Caller()
	amount := env.Value()

	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
		}
	}()

	admin, err := s.storage.getAdmin()
	if err != nil {
		return err
	}
	if caller != admin {
		return reverts.New("Not the contract admin")
	}
	if amount.Sign() == 0 {
		return reverts.New("Invalid amount")
	}
	if err := env.Transfer(caller, s.addr, amount); err != nil {
		return err
	}
	if err := emitDeposited(env, s.addr, caller, amount); err != nil {
		return err
	}
	logger.Info("pool deposit", "from", caller, "amount", amount)
	return nil
}

// SetRewardToken rebinds the reward token. Restricted to the
// administrator; existing stakes' accounting is unaffected.
func (s *Staking) SetRewardToken(env *xenv.Environment, next venue.Address) (err error) {
	cp := env.NewCheckpoint()
	defer func() {
		if err != nil {
			env.RevertTo(cp)
		}
	}()

	admin, err := s.storage.getAdmin()
	if err != nil {
		return err
	}
	if env.Caller() != admin {
		return reverts.New("Not the contract admin")
	}
	if next.IsZero() {
		return reverts.New("Invalid reward token")
	}
	prev, err := s.storage.getRewardToken()
	if err != nil {
		return err
	}
	s.storage.setRewardToken(next)
	logger.Info("reward token rebound", "prev", prev, "next", next)
	return emitRewardTokenSet(env, s.addr, prev, next)
}

// GetStake returns one stake of the owner's list.
func (s *Staking) GetStake(owner venue.Address, index uint64) (*Stake, error) {
	return s.getExistingStake(owner, index)
}

// GetAllStakes returns the owner's full stake list.
func (s *Staking) GetAllStakes(owner venue.Address) ([]*Stake, error) {
	count, err := s.storage.getCount(owner)
	if err != nil {
		return nil, err
	}
	stakes := make([]*Stake, 0, count)
	for i := uint64(0); i < count; i++ {
		stake, err := s.storage.getStake(owner, i)
		if err != nil {
			return nil, err
		}
		stakes = append(stakes, stake)
	}
	return stakes, nil
}

// StakeCount returns the number of stakes the owner ever created.
func (s *Staking) StakeCount(owner venue.Address) (uint64, error) {
	return s.storage.getCount(owner)
}

func (s *Staking) getExistingStake(owner venue.Address, index uint64) (*Stake, error) {
	count, err := s.storage.getCount(owner)
	if err != nil {
		return nil, err
	}
	if index >= count {
		return nil, reverts.New("Invalid stake index")
	}
	return s.storage.getStake(owner, index)
}

func (s *Staking) rewardScale() (*big.Int, error) {
	scale, err := s.params.Get(venue.KeyRewardRateScale)
	if err != nil {
		return nil, err
	}
	if scale.Sign() == 0 {
		return venue.InitialRewardRateScale, nil
	}
	return scale, nil
}
