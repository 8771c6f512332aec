package embedcli

import "fmt"

// WriteCharFunc is the mandatory per-byte output hook. If it is nil at the
// time Process is called, Process is a no-op — see spec.md §6.
type WriteCharFunc func(e *Engine, b byte)

// WriteStringFunc is an optional fast-path output hook; when nil the
// engine falls back to calling WriteCharFunc once per byte.
type WriteStringFunc func(e *Engine, s string)

// OnCommandFunc is an optional fallback invoked by the dispatcher when a
// submitted command line's name does not match any binding.
type OnCommandFunc func(e *Engine, name, args string)

// PostCommandFunc is an optional hook invoked after every binding
// invocation or unknown-command event, with the result code surfaced
// verbatim.
type PostCommandFunc func(handle any, result int)

// Config holds the arena-sizing parameters and host-supplied hooks for an
// Engine. Defaults follow spec.md §6 exactly.
type Config struct {
	RxBufferSize       int
	CmdBufferSize      int
	HistoryBufferSize  int
	MaxBindingCount    int
	EnableAutoComplete bool
	Invitation         string

	// Buffer, when non-nil, supplies the backing arena; New fails with
	// ErrArenaTooSmall if it is smaller than RequiredSize(cfg). When nil,
	// New allocates its own arena.
	Buffer []byte

	WriteChar   WriteCharFunc
	WriteString WriteStringFunc
	OnCommand   OnCommandFunc
	PostCommand PostCommandFunc
}

// Option configures a Config in the functional-options style.
type Option func(*Config)

// WithRxBufferSize sets the capacity of the ingest ring buffer (C1).
func WithRxBufferSize(n int) Option { return func(c *Config) { c.RxBufferSize = n } }

// WithCmdBufferSize sets the capacity of the editable command buffer.
// Must be at least 2 for any useful input.
func WithCmdBufferSize(n int) Option { return func(c *Config) { c.CmdBufferSize = n } }

// WithHistorySize sets the capacity of the history arena (C2). 0 disables
// history.
func WithHistorySize(n int) Option { return func(c *Config) { c.HistoryBufferSize = n } }

// WithMaxBindings sets the capacity for user-registered bindings (the
// internal "help" binding is added on top of this).
func WithMaxBindings(n int) Option { return func(c *Config) { c.MaxBindingCount = n } }

// WithAutoComplete enables or disables live and tab completion.
func WithAutoComplete(enabled bool) Option {
	return func(c *Config) { c.EnableAutoComplete = enabled }
}

// WithInvitation sets the prompt string emitted at the start of each
// editable line.
func WithInvitation(s string) Option { return func(c *Config) { c.Invitation = s } }

// WithBuffer supplies a caller-owned arena instead of letting New
// allocate one.
func WithBuffer(buf []byte) Option { return func(c *Config) { c.Buffer = buf } }

// WithWriteChar sets the mandatory per-byte output hook.
func WithWriteChar(fn WriteCharFunc) Option { return func(c *Config) { c.WriteChar = fn } }

// WithWriteString sets the optional whole-string output hook.
func WithWriteString(fn WriteStringFunc) Option { return func(c *Config) { c.WriteString = fn } }

// WithOnCommand sets the optional fallback for unbound commands.
func WithOnCommand(fn OnCommandFunc) Option { return func(c *Config) { c.OnCommand = fn } }

// WithPostCommand sets the optional post-dispatch hook.
func WithPostCommand(fn PostCommandFunc) Option { return func(c *Config) { c.PostCommand = fn } }

func defaultConfig() Config {
	return Config{
		RxBufferSize:       64,
		CmdBufferSize:      64,
		HistoryBufferSize:  128,
		MaxBindingCount:    8,
		EnableAutoComplete: true,
		Invitation:         "> ",
	}
}

func applyDefaults(cfg *Config) {
	d := defaultConfig()
	if cfg.RxBufferSize <= 0 {
		cfg.RxBufferSize = d.RxBufferSize
	}
	if cfg.CmdBufferSize <= 0 {
		cfg.CmdBufferSize = d.CmdBufferSize
	}
	if cfg.HistoryBufferSize < 0 {
		cfg.HistoryBufferSize = d.HistoryBufferSize
	}
	if cfg.MaxBindingCount <= 0 {
		cfg.MaxBindingCount = d.MaxBindingCount
	}
	if cfg.Invitation == "" {
		cfg.Invitation = d.Invitation
	}
}

// RequiredSize returns the byte count needed for the arena given cfg. Go's
// garbage collector removes the need for manual struct-field alignment
// that the original malloc-free-slab design cared about (see
// SPEC_FULL.md §1); this function still gives callers who want to
// pre-allocate via WithBuffer a deterministic, pure sizing function, which
// is the part of the original contract that still matters.
func RequiredSize(cfg Config) int {
	applyDefaults(&cfg)
	ringBytes := cfg.RxBufferSize + 1 // one slot reserved to distinguish full from empty
	return ringBytes + cfg.CmdBufferSize + cfg.HistoryBufferSize
}

// New constructs an Engine from cfg plus any options, carving its byte
// buffers out of a single arena (either cfg.Buffer or a freshly allocated
// slice). Construction is the only point at which New itself can fail;
// every other engine operation recovers locally from bad input per
// spec.md §7.
func New(cfg Config, opts ...Option) (*Engine, error) {
	for _, o := range opts {
		o(&cfg)
	}
	applyDefaults(&cfg)

	if cfg.CmdBufferSize < 2 {
		return nil, fmt.Errorf("cmd buffer size must be at least 2: %w", ErrInvalidConfig)
	}

	size := RequiredSize(cfg)
	var arena []byte
	selfAllocated := false
	if cfg.Buffer != nil {
		if len(cfg.Buffer) < size {
			return nil, ErrArenaTooSmall
		}
		arena = cfg.Buffer
	} else {
		arena = make([]byte, size)
		selfAllocated = true
	}

	ringBytes := cfg.RxBufferSize + 1
	ring := &ringBuffer{data: arena[:ringBytes:ringBytes]}
	cmdEnd := ringBytes + cfg.CmdBufferSize
	cmd := arena[ringBytes:cmdEnd:cmdEnd]
	histStart := ringBytes + cfg.CmdBufferSize
	histEnd := histStart + cfg.HistoryBufferSize
	hist := &history{arena: arena[histStart:histStart:histEnd]}

	e := &Engine{
		cfg:               cfg,
		invitation:        cfg.Invitation,
		ring:              ring,
		cmd:               cmd,
		bindings:          newBindingTable(cfg.MaxBindingCount),
		hist:              hist,
		flagAutocomplete:  cfg.EnableAutoComplete,
		flagSelfAllocated: selfAllocated,
	}
	e.cmd[0] = 0
	e.bindings.add(Binding{Name: "help", Help: "Print list of commands", TokenizeArgs: true, Handler: e.handleHelp})
	return e, nil
}
