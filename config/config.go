package config

import "embed"

//go:embed all:defaults/*
var embeddedFiles embed.FS

// DefaultConfig is the accents.yaml shipped with the tool.
func DefaultConfig() []byte {
	data, _ := embeddedFiles.ReadFile("defaults/accents.yaml")
	return data
}

// SamplePalette is the stock Material accent palette.
func SamplePalette() []byte {
	data, _ := embeddedFiles.ReadFile("defaults/accents.json")
	return data
}
