package config

type (
	Collect struct {
		// SegmentsPrealloc is the initial capacity of the slice returned by Splitter.Collect.
		// It is just a hint, the slice grows as usual when more segments are produced.
		SegmentsPrealloc int
	}
)

// Config holds settings used by the splitter, currently pre-allocations only.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero values are not meaningful defaults.
type Config struct {
	Collect Collect
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Collect: Collect{
			// most of the split strings are short lists: words, path segments, csv-ish lines
			SegmentsPrealloc: 8,
		},
	}
}
