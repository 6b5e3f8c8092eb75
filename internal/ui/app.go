package ui

import (
	"io/fs"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/resource-browser/internal/export"
)

const (
	AppID   = "com.ytget.resource-browser"
	AppName = "Resource Browser"
)

// Run opens the browser window and blocks until it is closed
func Run(version string, bundle fs.FS, providers ProviderFactory) {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(NewCompactTheme())

	if icon, err := LoadAppIcon(bundle); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.Printf("No app icon: %v", err)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	rootUI := NewRootUI(myWindow, myApp, providers, export.NewService())
	rootUI.SetVersion(version)

	myWindow.ShowAndRun()
}
