package ports

// Prompter collects interactive input from the user.
type Prompter interface {
	// Line prompts for a single line of input.
	Line(label string) (string, error)
	// Password prompts for a secret. Implementations may fall back to
	// plain line input when no terminal is available.
	Password(label string) (string, error)
}
