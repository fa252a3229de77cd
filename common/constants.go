// constants.go

// Package common provides shared functionality and constants for the TadsPlayer application.
// This file contains constants used across the application to replace hardcoded strings.
package common

// AppIdentifiers - Constants for application identification
const (
	// AppID is the application identifier
	AppID = "com.tadsplayer.app"

	// AppName is the application name
	AppName = "TadsPlayer"

	// AppVersion is shown in the about window
	AppVersion = "1.0.0"
)

// FileNames - Constants for file names
const (
	// FileNameSettings is the name of the configuration file
	FileNameSettings = "settings.conf"

	// FileNameLog is the name of the application log file
	FileNameLog = "tadsplayer.log"

	// FolderNameLog is the name of the log folder
	FolderNameLog = "log"
)

// GameFileExtensions lists the extensions offered by the open-game dialog
var GameFileExtensions = []string{"t3", "gam"}

// OperationNames - Constants for operation names used in ErrorContext
const (
	OperationOpenGame     = "OpenGame"
	OperationShowGameInfo = "ShowGameInfo"
	OperationSaveSettings = "SaveSettings"
	OperationLoadConfig   = "LoadConfig"
)
