package chain

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/sha3"
)

// Chain identifies the address format and BIP44 coin type of a deriver.
type Chain string

const (
	// Ethereum derives EIP-55 addresses on coin type 60.
	Ethereum Chain = "ethereum"

	// Bitcoin derives legacy P2PKH addresses on coin type 0.
	Bitcoin Chain = "bitcoin"
)

// MaxPathIndex is the largest account or address index. Indexes from
// hdkeychain.HardenedKeyStart up would collide with the hardened range.
const MaxPathIndex = hdkeychain.HardenedKeyStart - 1

// DefaultChain is the chain used when none is configured.
const DefaultChain = Ethereum

// Chains returns every supported chain name.
func Chains() []string {
	return []string{string(Bitcoin), string(Ethereum)}
}

// ParseChain resolves a chain name. Common ticker aliases are accepted.
func ParseChain(name string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ethereum", "eth":
		return Ethereum, nil
	case "bitcoin", "btc":
		return Bitcoin, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedChain, name, strings.Join(Chains(), ", "))
	}
}

// CoinType returns the BIP44 coin type of the chain.
func (c Chain) CoinType() uint32 {
	if c == Bitcoin {
		return 0
	}
	return 60
}

// Deriver derives the address of a mnemonic on one BIP44 path.
type Deriver struct {
	chain      Chain
	passphrase string
	account    uint32
	index      uint32
	encode     func(*btcec.PublicKey) (string, error)
}

// DeriverOption configures a Deriver.
type DeriverOption func(*Deriver)

// WithPassphrase sets the BIP39 passphrase mixed into the seed.
func WithPassphrase(passphrase string) DeriverOption {
	return func(d *Deriver) {
		d.passphrase = passphrase
	}
}

// WithAccount sets the hardened BIP44 account index.
func WithAccount(account uint32) DeriverOption {
	return func(d *Deriver) {
		d.account = account
	}
}

// WithAddressIndex sets the BIP44 address index on the external chain.
func WithAddressIndex(index uint32) DeriverOption {
	return func(d *Deriver) {
		d.index = index
	}
}

// NewDeriver returns a Deriver for the given chain. By default it derives
// the first receiving address of account 0 with an empty passphrase.
func NewDeriver(c Chain, opts ...DeriverOption) (*Deriver, error) {
	d := &Deriver{chain: c}
	switch c {
	case Ethereum:
		d.encode = ethereumAddress
	case Bitcoin:
		d.encode = bitcoinAddress
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, c)
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.account > MaxPathIndex {
		return nil, fmt.Errorf("%w: account %d, maximum %d", ErrPathIndexOutOfRange, d.account, MaxPathIndex)
	}
	if d.index > MaxPathIndex {
		return nil, fmt.Errorf("%w: address index %d, maximum %d", ErrPathIndexOutOfRange, d.index, MaxPathIndex)
	}
	return d, nil
}

// Chain returns the chain of the deriver.
func (d *Deriver) Chain() Chain {
	return d.chain
}

// Path returns the derivation path in the usual m/44'/... notation.
func (d *Deriver) Path() string {
	return fmt.Sprintf("m/44'/%d'/%d'/0/%d", d.chain.CoinType(), d.account, d.index)
}

// DeriveAddress derives the address of a checksum-valid mnemonic.
func (d *Deriver) DeriveAddress(words []string) (string, error) {
	seed := bip39.NewSeed(strings.Join(words, " "), d.passphrase)
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("failed to create master key: %w", err)
	}

	for _, i := range d.pathIndexes() {
		key, err = key.Derive(i)
		if err != nil {
			return "", fmt.Errorf("failed to derive %s: %w", d.Path(), err)
		}
	}

	pub, err := key.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("failed to get public key: %w", err)
	}
	return d.encode(pub)
}

func (d *Deriver) pathIndexes() []uint32 {
	return []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + d.chain.CoinType(),
		hdkeychain.HardenedKeyStart + d.account,
		0,
		d.index,
	}
}

func ethereumAddress(pub *btcec.PublicKey) (string, error) {
	// Drop the 0x04 prefix of the uncompressed encoding.
	hash := sha3.NewLegacyKeccak256()
	hash.Write(pub.SerializeUncompressed()[1:])
	sum := hash.Sum(nil)
	return eip55(fmt.Sprintf("%x", sum[len(sum)-20:])), nil
}

// eip55 applies the EIP-55 mixed-case checksum to a lowercase hex address
// without the 0x prefix.
func eip55(hexAddr string) string {
	buf := []byte(strings.ToLower(hexAddr))
	hash := sha3.NewLegacyKeccak256()
	hash.Write(buf)
	sum := hash.Sum(nil)

	for i, c := range buf {
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if c >= 'a' && c <= 'f' && nibble > 7 {
			buf[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(buf)
}

func bitcoinAddress(pub *btcec.PublicKey) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
