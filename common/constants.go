package common

// ToolVersion is the current compilerpaths version as a string.
const ToolVersion string = "0.1.0"

// ProjectFileName is the name of the optional per-project defaults file.
const ProjectFileName string = "compilerpaths.toml"
