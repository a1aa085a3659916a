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

// VMConfig holds tunables for the virtual machine core.
type VMConfig struct {
	// MetricsEnabled turns on the instrumented step classifier.
	MetricsEnabled bool `json:"metrics_enabled" yaml:"metrics_enabled"`

	// ReturnDataLimit caps the size in bytes of a return payload accepted
	// from a frame. 0 uses the built-in default.
	ReturnDataLimit uint64 `json:"return_data_limit" yaml:"return_data_limit"`

	// AnalysisCacheSize is the number of code-analysis results kept in the
	// LRU cache. 0 uses the built-in default.
	AnalysisCacheSize int `json:"analysis_cache_size" yaml:"analysis_cache_size"`

	// PrewarmInstructionSets builds the instruction set for every known
	// fork preset at startup instead of on first use.
	PrewarmInstructionSets bool `json:"prewarm_instruction_sets" yaml:"prewarm_instruction_sets"`
}

// DefaultVMConfig returns the default VM configuration.
func DefaultVMConfig() VMConfig {
	return VMConfig{
		MetricsEnabled:         false,
		ReturnDataLimit:        32 * 1024 * 1024,
		AnalysisCacheSize:      4096,
		PrewarmInstructionSets: true,
	}
}

// Validate repairs out-of-range values in place.
func (c *VMConfig) Validate() error {
	if c.ReturnDataLimit == 0 {
		c.ReturnDataLimit = 32 * 1024 * 1024
	}
	if c.AnalysisCacheSize <= 0 {
		c.AnalysisCacheSize = 4096
	}
	return nil
}
