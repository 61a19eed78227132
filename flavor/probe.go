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

package flavor

import (
	"slices"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/tochemey/crossframe/log"
)

const (
	modernRuntimeDir    = "Microsoft.NETCore.App"
	modernAspNetDir     = "Microsoft.AspNetCore.App"
	legacyFrameworkRoot = "Microsoft.NET"
)

// Probe gathers where the host runtime loads its system library from.
// It is read from the environment of the process.
type Probe struct {
	// RuntimeLibraryPath is the directory the host runtime loads its
	// system library from.
	RuntimeLibraryPath string `env:"CROSSFRAME_RUNTIME_LIBRARY_PATH"`
	// DotnetRoot is set by installations of the modern runtime.
	DotnetRoot string `env:"DOTNET_ROOT"`
}

// LoadProbe reads a Probe from the environment.
func LoadProbe() (*Probe, error) {
	probe := new(Probe)
	if err := env.Parse(probe); err != nil {
		return nil, err
	}
	return probe, nil
}

// Classify infers the flavor from a runtime library path. The second result
// is false when the path is not conclusive, in which case Modern is returned.
func Classify(path string) (Flavor, bool) {
	elements := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	if slices.Contains(elements, modernRuntimeDir) || slices.Contains(elements, modernAspNetDir) {
		return Modern, true
	}

	for i := 1; i < len(elements); i++ {
		if elements[i-1] != legacyFrameworkRoot {
			continue
		}
		if elements[i] == "Framework" || elements[i] == "Framework64" {
			return Legacy, true
		}
	}

	return Modern, false
}

// Resolve classifies the host described by probe and returns the profile
// rewriting toward it. The second result is false when nothing in probe was
// conclusive and the Modern default was applied.
func Resolve(probe *Probe) (Profile, bool) {
	if probe == nil {
		return NewProfile(Modern), false
	}

	if probe.RuntimeLibraryPath != "" {
		if flavor, ok := Classify(probe.RuntimeLibraryPath); ok {
			return NewProfile(flavor), true
		}
	}

	if probe.DotnetRoot != "" {
		flavor, _ := Classify(probe.DotnetRoot)
		return NewProfile(flavor), true
	}

	return NewProfile(Modern), false
}

var current = sync.OnceValue(func() Profile {
	probe, err := LoadProbe()
	if err != nil {
		log.DefaultLogger.Warnf("failed to read the runtime probe, assuming the %s flavor: %v", Modern, err)
	}

	profile, conclusive := Resolve(probe)
	if !conclusive && log.DefaultLogger.Enabled(log.DebugLevel) {
		log.DefaultLogger.Debugf("runtime flavor is ambiguous, assuming %s", profile.Target())
	}
	return profile
})

// Current returns the profile for the running process. It is resolved on
// first use and never changes afterwards.
func Current() Profile {
	return current()
}
