// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-chain/venue/builtin/params"
	"github.com/venue-chain/venue/builtin/rewardtoken"
	"github.com/venue-chain/venue/builtin/staking"
	"github.com/venue-chain/venue/state"
	"github.com/venue-chain/venue/test/datagen"
	"github.com/venue-chain/venue/venue"
	"github.com/venue-chain/venue/xenv"
)

type testVenue struct {
	t      *testing.T
	st     *state.State
	token  *rewardtoken.RewardToken
	engine *staking.Staking
	admin  venue.Address
	now    uint64
}

func newTestVenue(t *testing.T) *testVenue {
	st := state.New()
	engineAddr := datagen.RandAddress()
	token := rewardtoken.New(datagen.RandAddress(), st)
	token.SetMaster(engineAddr)
	require.NoError(t, token.GrantMinter(engineAddr, engineAddr))

	engine := staking.New(engineAddr, st, params.New(datagen.RandAddress(), st), func(addr venue.Address) staking.RewardMinter {
		return rewardtoken.New(addr, st)
	})

	tv := &testVenue{
		t:      t,
		st:     st,
		token:  token,
		engine: engine,
		admin:  datagen.RandAddress(),
		now:    1000,
	}
	require.NoError(t, engine.Initialize(tv.env(venue.Address{}, nil), tv.admin, token.Address()))
	return tv
}

func (tv *testVenue) env(caller venue.Address, value *big.Int) *xenv.Environment {
	return xenv.New(tv.st, &xenv.BlockContext{Number: uint32(tv.now / 10), Time: tv.now}, caller, value)
}

func (tv *testVenue) fund(addr venue.Address, amount int64) {
	require.NoError(tv.t, tv.st.SetBalance(addr, big.NewInt(amount)))
}

func (tv *testVenue) balance(addr venue.Address) *big.Int {
	bal, err := tv.st.GetBalance(addr)
	require.NoError(tv.t, err)
	return bal
}

func (tv *testVenue) pass(days uint64) {
	tv.now += days * venue.DaySeconds
}

func TestStakingInitialize(t *testing.T) {
	st := state.New()
	engine := staking.New(datagen.RandAddress(), st, params.New(datagen.RandAddress(), st), func(venue.Address) staking.RewardMinter {
		return nil
	})
	env := xenv.New(st, &xenv.BlockContext{}, venue.Address{}, nil)
	tokenAddr := datagen.RandAddress()

	assert.EqualError(t, engine.Initialize(env, venue.Address{}, tokenAddr), "Invalid admin address")
	assert.EqualError(t, engine.Initialize(env, datagen.RandAddress(), venue.Address{}), "Invalid reward token")

	admin := datagen.RandAddress()
	require.NoError(t, engine.Initialize(env, admin, tokenAddr))
	got, err := engine.Admin()
	require.NoError(t, err)
	assert.Equal(t, admin, got)
	bound, err := engine.RewardToken()
	require.NoError(t, err)
	assert.Equal(t, tokenAddr, bound)

	assert.EqualError(t, engine.Initialize(env, admin, tokenAddr), "Already initialized")
}

func TestPackages(t *testing.T) {
	tv := newTestVenue(t)

	pkgs := tv.engine.Packages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, 30*venue.DaySeconds, pkgs[0].Duration)
	assert.Equal(t, 60*venue.DaySeconds, pkgs[1].Duration)
	assert.Equal(t, 90*venue.DaySeconds, pkgs[2].Duration)
	assert.Equal(t, staking.ShortRewardRate, pkgs[0].RewardRate)
	assert.Equal(t, staking.MediumRewardRate, pkgs[1].RewardRate)
	assert.Equal(t, staking.LongRewardRate, pkgs[2].RewardRate)
}

func TestStake(t *testing.T) {
	tv := newTestVenue(t)
	alice := datagen.RandAddress()
	tv.fund(alice, 1_000_000)

	_, err := tv.engine.Stake(tv.env(alice, big.NewInt(100)), 3)
	assert.EqualError(t, err, "Invalid duration")

	_, err = tv.engine.Stake(tv.env(alice, nil), 0)
	assert.EqualError(t, err, "Invalid amount")

	index, err := tv.engine.Stake(tv.env(alice, big.NewInt(300_000)), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), index)
	assert.Equal(t, big.NewInt(700_000), tv.balance(alice))
	assert.Equal(t, big.NewInt(300_000), tv.balance(tv.engine.Address()))

	index, err = tv.engine.Stake(tv.env(alice, big.NewInt(200_000)), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), index)

	count, err := tv.engine.StakeCount(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	stakes, err := tv.engine.GetAllStakes(alice)
	require.NoError(t, err)
	require.Len(t, stakes, 2)
	assert.Equal(t, big.NewInt(300_000), stakes[0].Amount)
	assert.Equal(t, 30*venue.DaySeconds, stakes[0].Duration)
	assert.Equal(t, 60*venue.DaySeconds, stakes[1].Duration)
	assert.Equal(t, tv.now, stakes[0].StartTime)

	_, err = tv.engine.GetStake(alice, 2)
	assert.EqualError(t, err, "Invalid stake index")
}

func TestStakeRollback(t *testing.T) {
	tv := newTestVenue(t)
	pauper := datagen.RandAddress()

	env := tv.env(pauper, big.NewInt(100))
	_, err := tv.engine.Stake(env, 0)
	assert.ErrorContains(t, err, "insufficient balance")
	assert.Empty(t, env.Events())

	count, err := tv.engine.StakeCount(pauper)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestUnstake(t *testing.T) {
	tv := newTestVenue(t)
	alice := datagen.RandAddress()
	tv.fund(alice, 500_000)

	index, err := tv.engine.Stake(tv.env(alice, big.NewInt(500_000)), 0)
	require.NoError(t, err)

	assert.EqualError(t, tv.engine.Unstake(tv.env(alice, nil), 5), "Invalid stake index")
	assert.EqualError(t, tv.engine.Unstake(tv.env(alice, nil), index), "Stake not completed yet")

	tv.pass(29)
	assert.EqualError(t, tv.engine.Unstake(tv.env(alice, nil), index), "Stake not completed yet")

	tv.pass(1)
	require.NoError(t, tv.engine.Unstake(tv.env(alice, nil), index))
	assert.Equal(t, big.NewInt(500_000), tv.balance(alice))
	assert.Equal(t, 0, tv.balance(tv.engine.Address()).Sign())

	assert.EqualError(t, tv.engine.Unstake(tv.env(alice, nil), index), "Already unstaked")
}

func TestUnstakeExhaustedPool(t *testing.T) {
	tv := newTestVenue(t)
	alice := datagen.RandAddress()
	tv.fund(alice, 100_000)

	index, err := tv.engine.Stake(tv.env(alice, big.NewInt(100_000)), 0)
	require.NoError(t, err)
	tv.pass(30)

	// drain the pool out from under the stake
	require.NoError(t, tv.st.SetBalance(tv.engine.Address(), new(big.Int)))
	assert.EqualError(t, tv.engine.Unstake(tv.env(alice, nil), index), "Insufficient balance, contact admin to unstake")

	// an admin top-up unblocks the withdrawal
	tv.fund(tv.admin, 100_000)
	require.NoError(t, tv.engine.Deposit(tv.env(tv.admin, big.NewInt(100_000))))
	require.NoError(t, tv.engine.Unstake(tv.env(alice, nil), index))
	assert.Equal(t, big.NewInt(100_000), tv.balance(alice))
}

func TestClaimReward(t *testing.T) {
	tv := newTestVenue(t)
	alice := datagen.RandAddress()
	tv.fund(alice, 1_000_000)

	index, err := tv.engine.Stake(tv.env(alice, big.NewInt(1_000_000)), 0)
	require.NoError(t, err)

	assert.EqualError(t, tv.engine.ClaimReward(tv.env(alice, nil), 5), "Invalid stake index")
	assert.EqualError(t, tv.engine.ClaimReward(tv.env(alice, nil), index), "Stake not completed yet")

	tv.pass(30)
	require.NoError(t, tv.engine.ClaimReward(tv.env(alice, nil), index))

	// 1_000_000 * 10 * 30 days / 100_000
	bal, err := tv.token.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(3000), bal)

	assert.EqualError(t, tv.engine.ClaimReward(tv.env(alice, nil), index), "Reward already claimed")

	// the reward latch is independent of the principal
	require.NoError(t, tv.engine.Unstake(tv.env(alice, nil), index))
	assert.EqualError(t, tv.engine.ClaimReward(tv.env(alice, nil), index), "Reward already claimed")
}

func TestClaimRewardAfterUnstake(t *testing.T) {
	tv := newTestVenue(t)
	alice := datagen.RandAddress()
	tv.fund(alice, 200_000)

	index, err := tv.engine.Stake(tv.env(alice, big.NewInt(200_000)), 2)
	require.NoError(t, err)
	tv.pass(90)

	require.NoError(t, tv.engine.Unstake(tv.env(alice, nil), index))
	require.NoError(t, tv.engine.ClaimReward(tv.env(alice, nil), index))

	// 200_000 * 30 * 90 days / 100_000
	bal, err := tv.token.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5400), bal)
}

func TestRewardScaleOverride(t *testing.T) {
	st := state.New()
	engineAddr := datagen.RandAddress()
	token := rewardtoken.New(datagen.RandAddress(), st)
	token.SetMaster(engineAddr)
	require.NoError(t, token.GrantMinter(engineAddr, engineAddr))

	gov := params.New(datagen.RandAddress(), st)
	require.NoError(t, gov.Set(venue.KeyRewardRateScale, big.NewInt(200_000)))

	engine := staking.New(engineAddr, st, gov, func(addr venue.Address) staking.RewardMinter {
		return rewardtoken.New(addr, st)
	})
	admin := datagen.RandAddress()
	env := xenv.New(st, &xenv.BlockContext{Time: 1000}, venue.Address{}, nil)
	require.NoError(t, engine.Initialize(env, admin, token.Address()))

	alice := datagen.RandAddress()
	require.NoError(t, st.SetBalance(alice, big.NewInt(1_000_000)))
	index, err := engine.Stake(xenv.New(st, &xenv.BlockContext{Time: 1000}, alice, big.NewInt(1_000_000)), 0)
	require.NoError(t, err)

	mature := 1000 + 30*venue.DaySeconds
	require.NoError(t, engine.ClaimReward(xenv.New(st, &xenv.BlockContext{Time: mature}, alice, nil), index))

	// the doubled scale halves the reward
	bal, err := token.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1500), bal)
}

func TestDeposit(t *testing.T) {
	tv := newTestVenue(t)
	outsider := datagen.RandAddress()
	tv.fund(outsider, 1000)
	tv.fund(tv.admin, 1000)

	assert.EqualError(t, tv.engine.Deposit(tv.env(outsider, big.NewInt(100))), "Not the contract admin")
	assert.EqualError(t, tv.engine.Deposit(tv.env(tv.admin, nil)), "Invalid amount")

	require.NoError(t, tv.engine.Deposit(tv.env(tv.admin, big.NewInt(400))))
	assert.Equal(t, big.NewInt(400), tv.balance(tv.engine.Address()))
	assert.Equal(t, big.NewInt(600), tv.balance(tv.admin))
}

func TestSetRewardToken(t *testing.T) {
	tv := newTestVenue(t)
	next := datagen.RandAddress()

	assert.EqualError(t, tv.engine.SetRewardToken(tv.env(next, nil), next), "Not the contract admin")
	assert.EqualError(t, tv.engine.SetRewardToken(tv.env(tv.admin, nil), venue.Address{}), "Invalid reward token")

	require.NoError(t, tv.engine.SetRewardToken(tv.env(tv.admin, nil), next))
	bound, err := tv.engine.RewardToken()
	require.NoError(t, err)
	assert.Equal(t, next, bound)
}

func TestTransferStakingAdmin(t *testing.T) {
	tv := newTestVenue(t)
	next := datagen.RandAddress()

	assert.EqualError(t, tv.engine.TransferAdmin(tv.env(next, nil), next), "Not the contract admin")
	assert.EqualError(t, tv.engine.TransferAdmin(tv.env(tv.admin, nil), venue.Address{}), "Invalid admin address")

	require.NoError(t, tv.engine.TransferAdmin(tv.env(tv.admin, nil), next))
	got, err := tv.engine.Admin()
	require.NoError(t, err)
	assert.Equal(t, next, got)
}
