package signature

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

const (
	signatureLength = 65
	recoveryIDIndex = 64

	timestampLinePrefix = "Timestamp: "
)

// Verifier verifies wallet ownership proofs
//
//go:generate mockgen -source=verifier.go -destination=../mocks/signature_verifier.go -package=mocks -mock_names=Verifier=MockSignatureVerifier
type Verifier interface {
	// Verify recovers the signer of an EIP-191 personal message and compares it with the
	// claimed address. timestamp is the challenge time in unix milliseconds and the message
	// must carry it on a "Timestamp: <n>" line. Returns domain.ErrInvalidSignature on any failure.
	Verify(claimedAddress string, chainID domain.ChainID, message string, signature string, timestamp int64) error
}

type verifier struct {
	clock  adapter.Clock
	maxAge time.Duration
}

// NewVerifier creates a verifier. A positive maxAge rejects challenges older than maxAge
// (or dated more than maxAge in the future); zero disables the freshness check.
func NewVerifier(clock adapter.Clock, maxAge time.Duration) Verifier {
	return &verifier{
		clock:  clock,
		maxAge: maxAge,
	}
}

// ChallengeMessage builds the message a wallet signs to prove control of address
func ChallengeMessage(address string, chainID domain.ChainID, timestamp int64) string {
	return fmt.Sprintf("Sign this message to verify you own this wallet.\n\nWallet: %s\nChain ID: %d\n%s%d",
		strings.ToLower(address), int64(chainID), timestampLinePrefix, timestamp)
}

// embedsTimestamp reports whether one line of message is exactly the timestamp line
func embedsTimestamp(message string, timestamp int64) bool {
	want := timestampLinePrefix + strconv.FormatInt(timestamp, 10)
	for _, line := range strings.Split(message, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}

func (v *verifier) Verify(claimedAddress string, chainID domain.ChainID, message string, signature string, timestamp int64) error {
	if !embedsTimestamp(message, timestamp) {
		return fmt.Errorf("%w: message does not embed the challenge timestamp", domain.ErrInvalidSignature)
	}

	if v.maxAge > 0 {
		age := v.clock.Now().Sub(time.UnixMilli(timestamp))
		if age > v.maxAge || age < -v.maxAge {
			return fmt.Errorf("%w: challenge expired", domain.ErrInvalidSignature)
		}
	}

	recovered, err := RecoverAddress(message, signature)
	if err != nil {
		return err
	}

	if !strings.EqualFold(recovered, strings.TrimSpace(claimedAddress)) {
		return fmt.Errorf("%w: signer %s does not match wallet on chain %d", domain.ErrInvalidSignature, recovered, int64(chainID))
	}

	return nil
}

// RecoverAddress recovers the checksummed address that signed message as an EIP-191 personal message
func RecoverAddress(message string, signature string) (string, error) {
	sigHex := strings.TrimSpace(signature)
	if !strings.HasPrefix(sigHex, "0x") && !strings.HasPrefix(sigHex, "0X") {
		sigHex = "0x" + sigHex
	}

	sig, err := hexutil.Decode(sigHex)
	if err != nil {
		return "", fmt.Errorf("%w: malformed signature: %v", domain.ErrInvalidSignature, err)
	}
	if len(sig) != signatureLength {
		return "", fmt.Errorf("%w: signature must be %d bytes, got %d", domain.ErrInvalidSignature, signatureLength, len(sig))
	}

	// Wallets produce v as 27/28, crypto.SigToPub expects 0/1
	if sig[recoveryIDIndex] >= 27 {
		sig[recoveryIDIndex] -= 27
	}
	if sig[recoveryIDIndex] > 1 {
		return "", fmt.Errorf("%w: invalid recovery id", domain.ErrInvalidSignature)
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
