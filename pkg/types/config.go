// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ServerConfig holds settings for the web UI server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadHeaderTimeout bounds how long the server waits for request
	// headers (default 5s).
	ReadHeaderTimeout time.Duration `json:"read_header_timeout" yaml:"read_header_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM
	// (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// StoreConfig holds settings for the in-memory note store.
type StoreConfig struct {
	// MaxResults is the default maximum number of search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ExportConfig holds settings for PDF export.
type ExportConfig struct {
	// PageWidth is the page width in points (default 612, US Letter).
	PageWidth float64 `json:"page_width" yaml:"page_width"`

	// PageHeight is the page height in points (default 792, US Letter).
	PageHeight float64 `json:"page_height" yaml:"page_height"`

	// FontSize is the text size in points (default 12).
	FontSize float64 `json:"font_size" yaml:"font_size"`
}

// AppConfig groups all component configurations.
type AppConfig struct {
	Server ServerConfig `json:"server" yaml:"server"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Export ExportConfig `json:"export" yaml:"export"`
}
