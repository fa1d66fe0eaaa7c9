package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, indent int) {
	// aliases share the command value
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}

	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	prefix := strings.Repeat("  ", indent)
	for _, e := range entries {
		if e.command.Description == "" {
			fmt.Fprintf(w, "%s%s\n", prefix, strings.Join(e.names, ", "))
		} else {
			fmt.Fprintf(w, "%s%s\t%s\n", prefix, strings.Join(e.names, ", "), e.command.Description)
		}
		if len(e.command.Subs) > 0 {
			writeCommands(w, e.command.Subs, indent+1)
		}
	}
}
