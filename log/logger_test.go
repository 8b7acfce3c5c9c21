// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestLogfmtOutput(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	lg := NewLogger(LogfmtHandlerWithLevel(&buf, level))

	lg.Info("hello", "key", "value")
	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "key=value")

	// debug is below the default level
	buf.Reset()
	lg.Debug("quiet")
	assert.Empty(t, buf.String())

	level.Set(LevelDebug)
	lg.Debug("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	prev := Root()
	defer SetDefault(prev)
	SetDefault(NewLogger(LogfmtHandlerWithLevel(&buf, new(slog.LevelVar))))

	lg := WithContext("pkg", "auction")
	lg.Info("listed")
	assert.Contains(t, buf.String(), "pkg=auction")
}

func TestBigNumberFormatting(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(LogfmtHandlerWithLevel(&buf, new(slog.LevelVar)))

	value, _ := new(big.Int).SetString("111222333444555678999", 10)
	lg.Info("big", "value", value)
	assert.Contains(t, buf.String(), "value=111222333444555678999")

	buf.Reset()
	lg.Info("u256", "value", uint256.NewInt(1234567))
	assert.Contains(t, buf.String(), "value=1234567")

	buf.Reset()
	lg.Info("nil", "value", (*big.Int)(nil))
	assert.Contains(t, buf.String(), "value=<nil>")
}

func TestRootDefaultsToDiscard(t *testing.T) {
	lines := 0
	// the default root logger drops everything
	if Root().Handler().Enabled(nil, LevelError) { //nolint:staticcheck
		lines++
	}
	assert.Equal(t, 0, lines)

	Debug("dropped")
	Info("dropped")
	Warn("dropped")
	Error("dropped")
}

func TestLogfmtQuoting(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(LogfmtHandlerWithLevel(&buf, new(slog.LevelVar)))

	lg.Info("spaced", "key", "two words")
	out := buf.String()
	assert.True(t, strings.Contains(out, `key="two words"`), out)
}
