// Package commands defines the speedread CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - launch   Prepare the venv, install requirements and start the app
//   - serve    Run the native EPUB converter web server
//   - convert  Convert a local EPUB file
//   - status   Show the last recorded launch for this project
//   - config   Show or initialise the configuration file
//   - version  Print the build version
//
// # Implementation
//
// The root command loads configuration, builds the logger and constructs the
// dependency graph (converter, web server, runner, browser opener) before any
// subcommand runs, so handlers share one app context. SIGINT and SIGTERM
// cancel the command context, which stops the web server or the launched
// application.
package commands
