// Package cli implements the tuiotime command tree.
//
// Commands:
//
//	now                       current clock reading
//	calc add|sub <a> <b>      time arithmetic; b may be a "<n>us" delta
//	calc ms <a>               whole milliseconds
//	session start|elapsed|mark|marks|list|delete
//
// Every command writes through OutputFormatter, so --format json wraps the
// result in a CLIResponse envelope. Failures return an *ExitError whose Code
// is the process exit status.
package cli
