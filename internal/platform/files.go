package platform

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	AndroidCommand  = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Default export locations
const (
	PicturesDirName        = "Pictures"
	AndroidPicturesDir     = "/sdcard/Pictures"
	MediaScannerScanAction = "android.intent.action.MEDIA_SCANNER_SCAN_FILE"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	case OSAndroid:
		return openFileInManagerAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// openFileInManagerAndroid opens the directory containing the file, falling
// back to the storage settings screen
func openFileInManagerAndroid(filePath string) error {
	dir := filepath.Dir(filePath)

	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + dir},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", "image/*"},
		{"start", "-a", "android.settings.INTERNAL_STORAGE_SETTINGS"},
	}
	for _, args := range attempts {
		if err := exec.Command(AndroidCommand, args...).Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to open file in manager: no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs on Android. Fyne Android apps
// run as libdist.so, so the environment is checked as well as GOOS.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// GetDefaultExportDir returns the user's Pictures directory, where exported
// images go unless the user picked another one
func GetDefaultExportDir() (string, error) {
	if IsAndroid() {
		return AndroidPicturesDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, PicturesDirName), nil
}

// NotifyMediaScanner asks Android to index a new image so it shows up in the
// Gallery. It is a no-op elsewhere.
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}

	cmd := exec.Command(AndroidCommand, "broadcast", "-a", MediaScannerScanAction, "-d", "file://"+filePath)
	go func() {
		if err := cmd.Run(); err != nil {
			log.Printf("Failed to notify media scanner about %s: %v", filePath, err)
		}
	}()

	return nil
}
