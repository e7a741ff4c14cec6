package hodos

// Version is the demo engine release, overridable at build time with
// -ldflags "-X github.com/quez2777/hodos-360-website.Version=...".
var Version = "1.0.0"
