package config

// Setting keys
const (
	// Section is the configuration namespace owned by the extension.
	Section = "frameworkIcons"

	KeyEnabled         = Section + ".enabled"
	KeyDetectFramework = Section + ".detectFramework"
	KeyManualFramework = Section + ".manualFramework"

	// KeyIconTheme is the editor-wide active icon theme.
	KeyIconTheme = "workbench.iconTheme"
)

// Contributed defaults, used when a key is absent from every settings file.
const (
	DefaultEnabled         = true
	DefaultDetectFramework = true
	DefaultManualFramework = "auto"
)

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644
)

// Path Constants
const (
	// UserSettingsEnv overrides the user settings file location
	UserSettingsEnv = "FRAMEWORK_ICONS_USER_SETTINGS"

	// EditorConfigDir is the editor directory under the OS config dir
	EditorConfigDir = "Code"

	// SettingsFile is the filename of a settings document
	SettingsFile = "settings.json"

	// WorkspaceSettingsDir holds workspace-scoped settings inside a project
	WorkspaceSettingsDir = ".vscode"
)
