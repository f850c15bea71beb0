package pcs

import (
	"runtime"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
)

// Config collects the tower levels and ambient parameters a TensorPCS
// instance is built from.
type Config struct {
	// LogRows is the base-2 logarithm of the number of rows in the
	// committed matrix.
	LogRows int
	// BaseLevel is the tower level of committed polynomial coefficients.
	BaseLevel tower.Level
	// AlphabetLevel is the tower level of the encoding alphabet.
	AlphabetLevel tower.Level
	// IntermediateLevel is the tower level base field elements are packed
	// into before encoding (equal to BaseLevel in the basic scheme, equal
	// to AlphabetLevel in the block scheme).
	IntermediateLevel tower.Level
	// ExtensionLevel is the tower level cryptographic challenges live at.
	ExtensionLevel tower.Level
	// HashFunction names the column/digest hash ("sha3" or "blake3").
	HashFunction string
	// NumWorkers must be positive. No operation reads it: the parallel
	// row-encoding and multilinear-evaluation helpers size their goroutine
	// fan-out from runtime.GOMAXPROCS.
	NumWorkers int
}

// DefaultConfig mirrors Construction 3.7 (the "basic" scheme) at a small
// size suitable for examples and tests.
func DefaultConfig() *Config {
	return &Config{
		LogRows:           4,
		BaseLevel:         tower.Level3,
		AlphabetLevel:     tower.Level3,
		IntermediateLevel: tower.Level3,
		ExtensionLevel:    tower.Level7,
		HashFunction:      "sha3",
		NumWorkers:        runtime.GOMAXPROCS(0),
	}
}

// Validate checks internal consistency of the configuration.
func (c *Config) Validate() error {
	if c.LogRows < 0 {
		return newErr(ErrInvalidConfig, "LogRows must be non-negative, got %d", c.LogRows)
	}
	if c.BaseLevel > c.IntermediateLevel {
		return newErr(ErrInvalidConfig, "BaseLevel (%d) cannot exceed IntermediateLevel (%d)", c.BaseLevel, c.IntermediateLevel)
	}
	if c.IntermediateLevel > c.ExtensionLevel {
		return newErr(ErrInvalidConfig, "IntermediateLevel (%d) cannot exceed ExtensionLevel (%d)", c.IntermediateLevel, c.ExtensionLevel)
	}
	if c.AlphabetLevel > c.IntermediateLevel {
		return newErr(ErrInvalidConfig, "AlphabetLevel (%d) cannot exceed IntermediateLevel (%d)", c.AlphabetLevel, c.IntermediateLevel)
	}
	if c.HashFunction != "sha3" && c.HashFunction != "blake3" {
		return newErr(ErrInvalidConfig, "HashFunction must be 'sha3' or 'blake3', got %q", c.HashFunction)
	}
	if c.NumWorkers <= 0 {
		return newErr(ErrInvalidConfig, "NumWorkers must be positive, got %d", c.NumWorkers)
	}
	return nil
}

// WithLogRows sets LogRows.
func (c *Config) WithLogRows(logRows int) *Config {
	c.LogRows = logRows
	return c
}

// WithBaseLevel sets BaseLevel.
func (c *Config) WithBaseLevel(level tower.Level) *Config {
	c.BaseLevel = level
	return c
}

// WithExtensionLevel sets ExtensionLevel.
func (c *Config) WithExtensionLevel(level tower.Level) *Config {
	c.ExtensionLevel = level
	return c
}

// WithHashFunction sets HashFunction.
func (c *Config) WithHashFunction(name string) *Config {
	c.HashFunction = name
	return c
}

// WithNumWorkers sets NumWorkers.
func (c *Config) WithNumWorkers(n int) *Config {
	c.NumWorkers = n
	return c
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
