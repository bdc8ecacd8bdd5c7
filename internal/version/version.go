package version

// Current defines the application version.
// Update this single line to propagate version changes everywhere.
const Current = "v2.0.0"

const AppName = "CargoForge"
