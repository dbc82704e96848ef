// Package cli provides the interactive contactbook command-line client.
//
// It binds a ContactService to a terminal: prompt-driven add/edit forms with
// per-field validation, yes/no confirmation before destructive actions,
// coloured status notifications and a list view that is re-rendered after
// every change.
//
// The REPL is started by the root cobra command (see NewRootCommand); list,
// add, delete and clear are also available as one-shot subcommands.
package cli
