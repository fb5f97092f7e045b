// Package setup asks the rider the setup questions.
//
// Form renders each prompt with charmbracelet/huh and is used on a
// terminal. Line reads plain answers line by line and is used when stdin is
// piped, in scripts and in tests. Both implement bootstrap.Prompter.
package setup
