// Package cli implements the termui command-line interface.
//
// Every command is a thin Cobra wrapper around the ui and tabbar packages.
// The root command resolves configuration, logging and the color profile
// once in PersistentPreRunE and hands the result to subcommands through a
// shared app value.
//
// # Command Structure
//
//	termui demo                  - Walk through every component
//	termui progress              - Drive an inline progress bar
//	termui spinner MESSAGE       - Spin for a fixed duration
//	termui confirm MESSAGE       - Ask yes/no, exit 1 on no
//	termui pause                 - Wait for Enter
//	termui header TITLE [SUB]    - Draw a header box
//	termui box TEXT              - Draw a boxed line
//	termui colors                - Show the palette
//	termui status                - Draw the status block
//	termui tabbar                - Render a tab bar line
//	termui battery               - Print the battery readout
//	termui config [init|show]    - Manage .termui.yaml
//	termui version               - Print build information
//
// # Flag Handling
//
// Global flags (--config, --no-color, --quiet, --log-level) live on the root
// command. Settings from flags win over the config file, which wins over
// defaults.
package cli
