// Package config loads the tuiotime YAML configuration file.
//
// A configuration file looks like:
//
//	format: json
//	database: ./sessions.db
//	clock:
//	  kind: fixed
//	  seconds: 3913000000
//	  microseconds: 250000
//
// Decoded files are validated against an embedded CUE schema before use.
// Unknown keys are rejected.
package config
