package version

// Version is overridden at build time by
// -ldflags "-X github.com/c9s/bbgo-wallet/pkg/version.Version=v0.1.0"
var Version = "v0.1.0-dev"
