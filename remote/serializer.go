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

package remote

// Serializer is the extension point for the wire format payloads are encoded
// with. CrossRuntimeSerializer decorates a Serializer bound to the local
// runtime flavor so that it also accepts payloads produced by the other one.
//
// The encoded bytes must be self-describing: type names travel inside the
// payload, which is what makes them subject to rewriting.
//
// A Serializer may be called from multiple goroutines concurrently.
type Serializer interface {
	// Serialize encodes message into a byte slice suitable for transmission.
	// Returns a nil slice and a descriptive non-nil error on failure.
	Serialize(message any) ([]byte, error)

	// Deserialize decodes data produced by Serialize and returns the original
	// value with its concrete type restored.
	// Returns nil and a descriptive non-nil error on failure.
	Deserialize(data []byte) (any, error)
}
