package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconCopy     = "📋"
	IconExport   = "💾"
	IconRefresh  = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (ResourceRow / list)
const (
	PreviewSize      float32 = 32
	FormatLabelWidth float32 = 48

	RowMinWidth  float32 = 320
	RowMinHeight float32 = 40

	// Mobile-specific sizing
	MobilePreviewSize  float32 = 44
	MobileRowMinHeight float32 = 56

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Window and dialog sizing
const (
	WindowWidth          float32 = 720
	WindowHeight         float32 = 560
	SaveDialogWidth      float32 = 640
	SaveDialogHeight     float32 = 480
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)
