package command

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry stores commands in registration order.
type Registry struct {
	commands *orderedmap.OrderedMap
	nextID   int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: orderedmap.New()}
}

// Register adds cmd unless a command with the same caller and alias is
// already known. It returns whether cmd was added.
func (r *Registry) Register(cmd Command) bool {
	if cmd == nil || r.Contains(cmd.Caller(), cmd.Alias()) {
		return false
	}
	r.commands.Set(r.nextID, cmd)
	r.nextID++
	return true
}

// FindByCaller returns the first command whose caller is name.
func (r *Registry) FindByCaller(name string) (Command, bool) {
	return r.find(func(c Command) bool { return c.Caller() == name })
}

// FindByAlias returns the first command whose alias is name.
func (r *Registry) FindByAlias(name string) (Command, bool) {
	return r.find(func(c Command) bool { return c.Alias() == name })
}

// Resolve looks name up as a caller first and then as an alias.
func (r *Registry) Resolve(name string) (Command, bool) {
	if cmd, ok := r.FindByCaller(name); ok {
		return cmd, true
	}
	return r.FindByAlias(name)
}

// Contains reports whether some command has caller and some command has
// alias. The two need not be the same command.
func (r *Registry) Contains(caller, alias string) bool {
	_, hasCaller := r.FindByCaller(caller)
	_, hasAlias := r.FindByAlias(alias)
	return hasCaller && hasAlias
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, r.commands.Len())
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		cmds = append(cmds, pair.Value.(Command))
	}
	return cmds
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return r.commands.Len()
}

func (r *Registry) find(match func(Command) bool) (Command, bool) {
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		cmd := pair.Value.(Command)
		if match(cmd) {
			return cmd, true
		}
	}
	return nil, false
}
