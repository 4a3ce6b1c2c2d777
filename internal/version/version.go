package version

// AppVersion is overridden at build time with
// -ldflags "-X mogger/internal/version.AppVersion=...".
var AppVersion = "dev"
