// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// DefaultRegistry holds the built-in commands.
// Commands are registered during package initialization.
var DefaultRegistry = NewRegistry()

// Registry maps command names to commands. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Panics if the name is empty or already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		panic("shell: cannot register command with empty name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("shell: command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup retrieves a command by exact name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the names of all registered commands in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the command named by args[0]. Unknown names yield an
// ErrNotFound CommandError suggesting installation with pacman.
func (r *Registry) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, ok := r.Lookup(args[0])
	if !ok {
		return newCommandError(args[0], ErrNotFound, nil,
			"Command not found: %s. Try 'pacman -S %s' to install it.", args[0], args[0])
	}
	return cmd.Run(ctx, args)
}

// RegisterDefault registers a command in the DefaultRegistry.
func RegisterDefault(cmd Command) {
	DefaultRegistry.Register(cmd)
}
