// Package handlers implements the business logic for CLI commands.
//
// Each handler builds its collaborators through package-level factory
// variables so tests can replace the store, the trainer directory, the
// prompter and the terminal streams.
package handlers
