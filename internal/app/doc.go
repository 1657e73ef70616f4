// Package app wires application dependencies for the CLI.
//
// It builds the word splitter, EPUB converter, web server, subprocess runner,
// browser opener and launcher from Config, exposing them via the Wire struct
// for commands to use.
package app
