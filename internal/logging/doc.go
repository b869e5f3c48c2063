// Package logging centralizes slog construction for the CLI.
//
// Output defaults to a console handler on stderr so progress rendering on
// stdout stays clean; configuring a log directory tees the same stream into
// cineload.log. Components obtain child loggers through NewComponentLogger
// so every line carries a stable component attribute.
package logging
