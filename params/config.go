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

package params

// ForkConfig is the flat feature-flag record that parameterizes the virtual
// machine by hard fork. Forks are modelled as data, not behavior: a fork is
// nothing more than the set of instructions it enables. New forks extend this
// struct additively.
type ForkConfig struct {
	// HasDelegateCall enables DELEGATECALL (Homestead).
	HasDelegateCall bool `json:"has_delegate_call" yaml:"has_delegate_call"`

	// HasRevert enables REVERT (Byzantium).
	HasRevert bool `json:"has_revert" yaml:"has_revert"`

	// HasStaticCall enables STATICCALL (Byzantium).
	HasStaticCall bool `json:"has_static_call" yaml:"has_static_call"`

	// HasReturnData enables RETURNDATASIZE and RETURNDATACOPY (Byzantium).
	HasReturnData bool `json:"has_return_data" yaml:"has_return_data"`

	// HasShiftOps enables SHL, SHR and SAR (Constantinople).
	HasShiftOps bool `json:"has_shift_ops" yaml:"has_shift_ops"`

	// HasExtCodeHash enables EXTCODEHASH (Constantinople).
	HasExtCodeHash bool `json:"has_extcodehash" yaml:"has_extcodehash"`

	// HasCreate2 enables CREATE2 (Constantinople).
	HasCreate2 bool `json:"has_create2" yaml:"has_create2"`
}

// CacheKey returns a compact string identifying the instruction set this
// config selects. Configs with equal keys select identical sets.
func (c *ForkConfig) CacheKey() string {
	key := ""
	if c.HasDelegateCall {
		key += "D"
	}
	if c.HasRevert {
		key += "R"
	}
	if c.HasStaticCall {
		key += "S"
	}
	if c.HasReturnData {
		key += "V"
	}
	if c.HasShiftOps {
		key += "Sh"
	}
	if c.HasExtCodeHash {
		key += "X"
	}
	if c.HasCreate2 {
		key += "C2"
	}
	if key == "" {
		key = "frontier"
	}
	return key
}

// Named fork presets, oldest first. Each preset is a superset of the previous.
var (
	// FrontierConfig enables only the genesis instruction set.
	FrontierConfig = ForkConfig{}

	// HomesteadConfig adds DELEGATECALL.
	HomesteadConfig = ForkConfig{
		HasDelegateCall: true,
	}

	// ByzantiumConfig adds REVERT, STATICCALL and variable-length return data.
	ByzantiumConfig = ForkConfig{
		HasDelegateCall: true,
		HasRevert:       true,
		HasStaticCall:   true,
		HasReturnData:   true,
	}

	// ConstantinopleConfig adds the shift ops, EXTCODEHASH and CREATE2.
	ConstantinopleConfig = ForkConfig{
		HasDelegateCall: true,
		HasRevert:       true,
		HasStaticCall:   true,
		HasReturnData:   true,
		HasShiftOps:     true,
		HasExtCodeHash:  true,
		HasCreate2:      true,
	}

	// AllForksConfig is the most permissive preset.
	AllForksConfig = ConstantinopleConfig
)

// AllPresets lists every named preset, oldest first. Used by the instruction
// set prewarmer and by tests that sweep the fork matrix.
func AllPresets() []ForkConfig {
	return []ForkConfig{
		FrontierConfig,
		HomesteadConfig,
		ByzantiumConfig,
		ConstantinopleConfig,
	}
}
