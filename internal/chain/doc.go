// Package chain provides the BIP39 checksum validator and the BIP44 address
// derivers the search engine uses to confirm candidates.
//
// Validation is backed by github.com/tyler-smith/go-bip39. Derivation turns a
// mnemonic and optional passphrase into a BIP32 master key with
// github.com/btcsuite/btcd/btcutil/hdkeychain, walks the BIP44 path of the
// selected chain and encodes the resulting public key as an address:
//
//   - ethereum: m/44'/60'/account'/0/index, Keccak-256 of the uncompressed
//     public key, EIP-55 mixed-case hex
//   - bitcoin: m/44'/0'/account'/0/index, P2PKH Base58Check of the
//     compressed public key
//
// Both ChecksumValidator and Deriver are safe for concurrent use.
package chain
