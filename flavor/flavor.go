// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package flavor identifies the two runtime flavors a serialized payload can
// come from and resolves, once per process, which one the local host runs.
//
// The flavors share a wire format but name their core library differently,
// so every type name embedded in a payload carries one of two assembly
// tokens. A Profile pairs the token to rewrite away with the token to
// rewrite to.
package flavor

// Flavor is a runtime flavor, distinguished by its core-library assembly name.
type Flavor int

const (
	// Modern is the minimal-core runtime whose core library is System.Private.CoreLib.
	Modern Flavor = iota
	// Legacy is the full-framework runtime whose core library is mscorlib.
	Legacy
)

var (
	modernToken = []byte("System.Private.CoreLib")
	legacyToken = []byte("mscorlib")
)

// String returns the name of the flavor
func (f Flavor) String() string {
	switch f {
	case Legacy:
		return "legacy"
	default:
		return "modern"
	}
}

// AssemblyToken returns the core-library assembly name of the flavor.
// The returned slice is shared and must not be modified.
func (f Flavor) AssemblyToken() []byte {
	if f == Legacy {
		return legacyToken
	}
	return modernToken
}

// Other returns the opposite flavor.
func (f Flavor) Other() Flavor {
	if f == Legacy {
		return Modern
	}
	return Legacy
}

// Profile describes one rewrite direction: payloads produced by the other
// flavor are rewritten so that the target flavor can read them.
// Profiles are immutable values.
type Profile struct {
	target Flavor
}

// NewProfile returns the profile rewriting payloads toward target.
func NewProfile(target Flavor) Profile {
	return Profile{target: target}
}

// Target returns the flavor payloads are rewritten for.
func (p Profile) Target() Flavor {
	return p.target
}

// OldAssemblyToken returns the assembly name to rewrite away.
func (p Profile) OldAssemblyToken() []byte {
	return p.target.Other().AssemblyToken()
}

// NewAssemblyToken returns the assembly name written in its place.
func (p Profile) NewAssemblyToken() []byte {
	return p.target.AssemblyToken()
}

// Inverse returns the profile rewriting in the opposite direction, used to
// prepare outbound payloads for a peer running the other flavor.
func (p Profile) Inverse() Profile {
	return Profile{target: p.target.Other()}
}

// DynamicEnabled reports whether dynamic-object names must be rewritten.
// Only the legacy flavor has a fixed name to rewrite them to.
func (p Profile) DynamicEnabled() bool {
	return p.target == Legacy
}

// String returns a human readable form of the profile
func (p Profile) String() string {
	return p.target.Other().String() + "->" + p.target.String()
}
