package domain

// Policy is a parsed policy document. Nothing consults it yet; it is
// loaded so future releases can act on it without changing the CLI
// surface.
type Policy map[string]any
