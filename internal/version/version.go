package version

// Version is the toolkit release string shared by both binaries.
var Version = "0.2.0"
