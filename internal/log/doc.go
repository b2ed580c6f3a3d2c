// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of seed phrases, passphrases and private keys
//   - Configurable log levels with verbose mode support
//   - Text or JSON output with identical masking
//
// # Security Features
//
// The SecureHandler sanitizes attributes by key (phrase, mnemonic, seed,
// words, passphrase, private_key, ...) and by value: anything shaped like a
// mnemonic, an extended private key, a WIF key or a raw hex private key is
// replaced with MaskValue.
//
// Even in verbose mode, sensitive values are masked. Recovered phrases reach
// the user only through report output, never through the log.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	logger.Info("match found",
//	    "position", 3,
//	    "phrase", phrase, // Will be replaced with ***REDACTED***
//	)
//
//	slog.SetDefault(logger)
package log
