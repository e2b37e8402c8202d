package version

// Version is overridden at build time with -ldflags "-X github.com/battlesnakeio/arcade/version.Version=..."
var Version = "dev"
