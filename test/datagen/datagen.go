// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"

	"github.com/venue-chain/venue/venue"
)

func RandAddress() (addr venue.Address) {
	rand.Read(addr[:])
	return
}

func RandBytes32() (b venue.Bytes32) {
	rand.Read(b[:])
	return
}

func RandInt() int {
	return mathrand.Int() //#nosec G404
}

func RandIntN(n int) int {
	return mathrand.N(n) //#nosec G404
}

func RandUint64() uint64 {
	return mathrand.Uint64() //#nosec G404
}

func RandBigInt() *big.Int {
	return new(big.Int).SetUint64(mathrand.Uint64()) //#nosec G404
}
