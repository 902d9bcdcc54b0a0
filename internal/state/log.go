package state

// Log is the ordered, append-only history of committed draw commands.
// Entries are immutable once appended; the only removals are Undo (pop the
// most recent entry) and Clear (drop everything). Log is not safe for
// concurrent use on its own; Canvas guards it.
type Log struct {
	commands []*Command
}

// Append adds a committed command to the end of the history.
func (l *Log) Append(c *Command) {
	l.commands = append(l.commands, c)
}

// Undo removes the most recent entry and reports whether one was removed.
// On an empty log it does nothing.
func (l *Log) Undo() bool {
	if len(l.commands) == 0 {
		return false
	}
	l.commands[len(l.commands)-1] = nil
	l.commands = l.commands[:len(l.commands)-1]
	return true
}

// Clear drops the whole history.
func (l *Log) Clear() {
	l.commands = nil
}

// Len returns the number of committed commands.
func (l *Log) Len() int {
	return len(l.commands)
}

// Commands returns a snapshot of the history in commit order. The returned
// slice is fresh, but the commands themselves are shared; that is safe
// because committed commands are never mutated.
func (l *Log) Commands() []*Command {
	out := make([]*Command, len(l.commands))
	copy(out, l.commands)
	return out
}
