// Package ui renders hheat's result boxes on stderr.
//
// Mutations finish with a short success box and failures with a failure box
// carrying troubleshooting tips. Both use Lipgloss when stderr is a terminal
// and fall back to plain text otherwise, so redirected output stays readable.
//
//	fmt.Fprintln(os.Stderr, ui.NewFailureResult("Login failed", err, hints).
//	    SetWidth(ui.GetTerminalWidth(os.Stderr)).
//	    SetPlain(!ui.IsTerminal(os.Stderr)))
//
// Status output never goes through this package; it is written to stdout
// unstyled so scripts can parse it.
package ui
