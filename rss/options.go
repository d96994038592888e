package rss

import "github.com/regsaturation/rssprep/vcg"

// DebugMask gates which debug views Prepare dumps.
type DebugMask uint32

const (
	DebugCBC DebugMask = 1 << iota
	DebugKill
	DebugPKG
	DebugDVG
	DebugDVGPkg

	DebugAll = DebugCBC | DebugKill | DebugPKG | DebugDVG | DebugDVGPkg
)

type config struct {
	sink    vcg.Sink
	mask    DebugMask
	irgName string
}

// Option configures a Prepare call.
type Option func(*config)

// WithDumper installs a vcg.Sink that Prepare writes debug graphs through.
// Without one, Prepare never dumps regardless of WithDebugMask.
func WithDumper(sink vcg.Sink) Option {
	return func(c *config) { c.sink = sink }
}

// WithDebugMask selects which views are dumped when a Sink is installed.
func WithDebugMask(mask DebugMask) Option {
	return func(c *config) { c.mask = mask }
}

// WithIRGName names the compilation unit for dump filenames; defaults to
// "irg" if never set.
func WithIRGName(name string) Option {
	return func(c *config) { c.irgName = name }
}

func newConfig(opts ...Option) *config {
	c := &config{irgName: "irg"}
	for _, o := range opts {
		o(c)
	}

	return c
}
