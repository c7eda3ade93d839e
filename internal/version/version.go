// internal/version/version.go
package version

// Version is stamped by the release build via -ldflags.
var Version = "0.2.0-dev"
