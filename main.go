package main

import (
	"github.com/ytget/resource-browser/assets"
	"github.com/ytget/resource-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	bundle := assets.FS()
	ui.Run(version, bundle, ui.BundleProviderFactory(bundle))
}
