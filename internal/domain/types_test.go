package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidChain(t *testing.T) {
	tests := []struct {
		name     string
		chainID  ChainID
		expected bool
	}{
		{
			name:     "ethereum mainnet",
			chainID:  ChainEthereumMainnet,
			expected: true,
		},
		{
			name:     "ethereum sepolia",
			chainID:  ChainEthereumSepolia,
			expected: true,
		},
		{
			name:     "polygon",
			chainID:  ChainPolygon,
			expected: true,
		},
		{
			name:     "zero chain",
			chainID:  0,
			expected: false,
		},
		{
			name:     "unknown chain",
			chainID:  999999,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidChain(tt.chainID))
		})
	}
}

func TestChainID_Network(t *testing.T) {
	network, ok := ChainEthereumMainnet.Network()
	assert.True(t, ok)
	assert.Equal(t, "eth-mainnet", network)

	network, ok = ChainBase.Network()
	assert.True(t, ok)
	assert.Equal(t, "base-mainnet", network)

	_, ok = ChainID(42).Network()
	assert.False(t, ok)

	assert.Equal(t, "11155111", ChainEthereumSepolia.String())
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "checksummed address",
			input:    "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
			expected: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
		},
		{
			name:     "already lowercase",
			input:    "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
			expected: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
		},
		{
			name:     "surrounding whitespace",
			input:    "  0xAB5801A7D398351B8BE11C439E05C5B3259AEC9B ",
			expected: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
		},
		{
			name:    "too short",
			input:   "0xabc",
			wantErr: true,
		},
		{
			name:    "not hex",
			input:   "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeAddress(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAddress))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeAddresses(t *testing.T) {
	result := NormalizeAddresses([]string{
		"0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		"invalid",
		"0x0000000000000000000000000000000000000001",
	})
	assert.Equal(t, []string{
		"0xab5801a7d398351b8be11c439e05c5b3259aec9b",
		"0x0000000000000000000000000000000000000001",
	}, result)
}

func TestNormalizeTokenID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "decimal", input: "1234", expected: "1234"},
		{name: "hex", input: "0x4d2", expected: "1234"},
		{name: "padded hex", input: "0x00000000000000000000000000000000000000000000000000000000000004d2", expected: "1234"},
		{name: "upper hex prefix", input: "0X4D2", expected: "1234"},
		{name: "zero", input: "0x0", expected: "0"},
		{name: "leading zeros decimal", input: "0007", expected: "7"},
		{name: "large id", input: "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", expected: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{name: "empty", input: "", wantErr: true},
		{name: "bare prefix", input: "0x", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeTokenID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTokenID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseTokenStandard(t *testing.T) {
	assert.Equal(t, StandardERC721, ParseTokenStandard("ERC721"))
	assert.Equal(t, StandardERC1155, ParseTokenStandard(" erc1155 "))
	assert.Equal(t, StandardUnknown, ParseTokenStandard("NO_SUPPORTED_NFT_STANDARD"))
}

func TestParseWalletType(t *testing.T) {
	assert.Equal(t, WalletTypeMetaMask, ParseWalletType("MetaMask"))
	assert.Equal(t, WalletTypeWalletConnect, ParseWalletType("walletconnect"))
	assert.Equal(t, WalletTypeOther, ParseWalletType("ledger"))
}

func TestOwnershipTransition_Changed(t *testing.T) {
	assert.False(t, TransitionNone.Changed())
	assert.True(t, TransitionLost.Changed())
	assert.True(t, TransitionRegained.Changed())
}
