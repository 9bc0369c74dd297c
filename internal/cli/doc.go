// Package cli implements the protohelp command tree.
//
// Settings come from flags, an optional --config file and PROTOHELP_*
// environment variables, resolved through viper in that order of precedence.
package cli
