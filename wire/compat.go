package wire

import (
	"os"
	"strconv"
)

// Config controls tunables of the codec.
type Config struct {
	// FastStringMinLength: strings whose encoded length is at least this many
	// bytes are decoded through the bulk validate-and-convert path instead of
	// the byte-by-byte decoder. Output is identical either way; this only
	// moves the crossover point.
	FastStringMinLength int

	// InitialCapacity: size of the first allocation made by an empty Encoder.
	// Later growth doubles from here.
	InitialCapacity int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		FastStringMinLength: 12,
		InitialCapacity:     16,
	}
}

var config = DefaultConfig()

// SetConfig sets the global wire configuration. Call it before any Encoder or
// Decoder is in use; non-positive fields fall back to their defaults.
func SetConfig(c Config) {
	def := DefaultConfig()
	if c.FastStringMinLength <= 0 {
		c.FastStringMinLength = def.FastStringMinLength
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = def.InitialCapacity
	}
	config = c
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config { return config }

func init() {
	// Optional env toggles for benchmarking; invalid values are ignored.
	if v, ok := envInt("PBF_FAST_STRING_MIN_LENGTH"); ok {
		config.FastStringMinLength = v
	}
	if v, ok := envInt("PBF_INITIAL_CAPACITY"); ok {
		config.InitialCapacity = v
	}
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
