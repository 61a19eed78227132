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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/tochemey/crossframe/flavor"
)

// greeting is the message exchanged by the test serializers.
type greeting struct {
	Text string
}

// netSerializer mimics a serializer bound to one runtime flavor: every frame
// carries a length-prefixed type name that names the flavor's core library,
// followed by a length-prefixed text field.
type netSerializer struct {
	typeName []byte
}

var _ Serializer = (*netSerializer)(nil)

func newNetSerializer(f flavor.Flavor) *netSerializer {
	return &netSerializer{typeName: []byte(stringTypeName(f))}
}

func stringTypeName(f flavor.Flavor) string {
	return fmt.Sprintf("System.String, %s, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089", f.AssemblyToken())
}

func (s *netSerializer) Serialize(message any) ([]byte, error) {
	msg, ok := message.(*greeting)
	if !ok {
		return nil, fmt.Errorf("unsupported message type %T", message)
	}
	buf := binary.LittleEndian.AppendUint32(nil, uint32(len(s.typeName)))
	buf = append(buf, s.typeName...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(msg.Text)))
	return append(buf, msg.Text...), nil
}

func (s *netSerializer) Deserialize(data []byte) (any, error) {
	typeName, rest, err := readField(data)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(typeName, s.typeName) {
		return nil, fmt.Errorf("unknown type %q", typeName)
	}
	text, _, err := readField(rest)
	if err != nil {
		return nil, err
	}
	return &greeting{Text: string(text)}, nil
}

func readField(data []byte) (field, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, errors.New("truncated length field")
	}
	size := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	if size > len(data) {
		return nil, nil, fmt.Errorf("field length %d exceeds %d remaining bytes", size, len(data))
	}
	return data[:size], data[size:], nil
}
