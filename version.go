package gffutils

// Version is the release of the gff-utils module and command.
var Version = "0.4.0"
