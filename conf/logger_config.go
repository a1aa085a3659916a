// Copyright 2022-2026 The Halcyon Authors
// This file is part of the Halcyon library.
//
// The Halcyon library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Halcyon library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Halcyon library. If not, see <http://www.gnu.org/licenses/>.

package conf

// LoggerConfig controls log output and file rotation.
//
// Rotation policy:
//   - a file is split once it grows past MaxSize MB
//   - rotated files are renamed to name-timestamp.ext
//   - files beyond MaxBackups or older than MaxAge days are deleted
//   - with Compress enabled, rotated files are gzipped
type LoggerConfig struct {
	// LogFile is the log file name. Empty means console-only output.
	LogFile string `json:"name" yaml:"name"`

	// Level is one of: trace, debug, info, warn, error, fatal.
	Level string `json:"level" yaml:"level"`

	// MaxSize is the maximum size of a single log file in MB before it is
	// rotated. Default: 100.
	MaxSize int `json:"max_size" yaml:"max_size"`

	// MaxBackups is the number of rotated files to keep. 0 keeps all
	// (still bounded by MaxAge). Default: 10.
	MaxBackups int `json:"max_count" yaml:"max_count"`

	// MaxAge is the number of days to retain rotated files. 0 disables
	// age-based deletion. Default: 30.
	MaxAge int `json:"max_day" yaml:"max_day"`

	// Compress gzips rotated files. Default: true.
	Compress bool `json:"compress" yaml:"compress"`

	// TotalSizeCap bounds the combined size of all log files in MB; the
	// oldest files are deleted once it is exceeded. 0 disables the cap.
	TotalSizeCap int `json:"total_size_cap" yaml:"total_size_cap"`

	// LocalTime names rotated files in local time instead of UTC.
	LocalTime bool `json:"local_time" yaml:"local_time"`

	// Console mirrors file output to stdout. Default: true.
	Console bool `json:"console" yaml:"console"`

	// JSONFormat emits JSON to the log file. When Console is also set, the
	// mirrored console output uses the same JSON format.
	JSONFormat bool `json:"json_format" yaml:"json_format"`
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogFile:      "", // console only
		Level:        "info",
		MaxSize:      100,
		MaxBackups:   10,
		MaxAge:       30,
		Compress:     true,
		TotalSizeCap: 0,
		LocalTime:    true,
		Console:      true,
		JSONFormat:   true,
	}
}

// Validate repairs out-of-range values in place.
func (c *LoggerConfig) Validate() error {
	if c.MaxSize <= 0 {
		c.MaxSize = 100
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 10
	}
	if c.MaxAge < 0 {
		c.MaxAge = 30
	}
	return nil
}

// NodeConfig holds process-level paths shared by all components.
type NodeConfig struct {
	// DataDir is the root directory for node data; logs go to DataDir/log.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}
