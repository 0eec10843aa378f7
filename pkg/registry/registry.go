package registry

import "github.com/spf13/cobra"

// CommandRegistry collects subcommand constructors registered from init() functions
// so that a parent command can attach them once it is built.
type CommandRegistry struct {
	fns []func(*cobra.Command)
}

func (r *CommandRegistry) Register(fn func(*cobra.Command)) {
	r.fns = append(r.fns, fn)
}

// FillCommands attaches every registered subcommand to parent.
func (r *CommandRegistry) FillCommands(parent *cobra.Command) {
	for _, fn := range r.fns {
		fn(parent)
	}
}
