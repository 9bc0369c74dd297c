package ports

// HelpRenderer turns a symbol key into the help text the shell prints.
type HelpRenderer interface {
	// Render returns the help text for key and whether documentation exists.
	Render(key string) (string, bool, error)
}
