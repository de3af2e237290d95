// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"log/slog"

	"github.com/bureau-foundation/base62x/lib/base62x"
	"github.com/bureau-foundation/base62x/lib/compression"
	"github.com/bureau-foundation/base62x/lib/crypt"
	"github.com/bureau-foundation/base62x/lib/fault"
	"github.com/bureau-foundation/base62x/lib/secret"
)

// TextCodec converts between bytes and printable text. The default is
// lib/base62x.
type TextCodec interface {
	Encode(data []byte) string
	Decode(text string) ([]byte, error)
}

// Mode is the direction a Transform runs in.
type Mode int

const (
	ModeEncode Mode = iota + 1
	ModeDecode
)

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Option configures a Transform at construction.
type Option func(*Transform)

// WithTextCodec replaces the Base62x text codec.
func WithTextCodec(codec TextCodec) Option {
	return func(t *Transform) { t.textCodec = codec }
}

// WithLogger sets the logger that receives per-stage debug records.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transform) { t.logger = logger }
}

// Transform carries one payload through the pipeline in one direction.
type Transform struct {
	mode Mode

	// payload is the normalized input in encode mode.
	payload   []byte
	flattened bool

	// text is the input in decode mode.
	text string

	selection compression.Selection
	method    crypt.Method
	password  *secret.Buffer

	textCodec TextCodec
	logger    *slog.Logger
}

// Encode prepares payload for encoding. Strings and byte slices are
// carried as-is, numbers and booleans by their decimal or literal
// text, and maps, slices and arrays are flattened. Empty payloads,
// resource handles (files, readers, channels, funcs) and object
// references (pointers, structs) fail with an invalid parameter error.
func Encode(payload any, options ...Option) (*Transform, error) {
	data, flattened, err := normalize(payload)
	if err != nil {
		return nil, err
	}
	t := newTransform(ModeEncode, options)
	t.payload = data
	t.flattened = flattened
	return t, nil
}

// Decode prepares text for decoding. Empty text fails with an invalid
// parameter error.
func Decode(text string, options ...Option) (*Transform, error) {
	if text == "" {
		return nil, fault.InvalidParameter("payload cannot be empty")
	}
	t := newTransform(ModeDecode, options)
	t.text = text
	return t, nil
}

func newTransform(mode Mode, options []Option) *Transform {
	t := &Transform{
		mode:      mode,
		textCodec: base62x.Codec{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(t)
	}
	if t.textCodec == nil {
		t.textCodec = base62x.Codec{}
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

// Mode returns the direction the transform runs in.
func (t *Transform) Mode() Mode { return t.mode }

// Compress selects a compression algorithm for encoding. The encoding
// is required for gzip (zlib, deflate or gzip) and ignored for
// huffman. A decode transform accepts the call and ignores it: the
// footprint names the algorithm.
func (t *Transform) Compress(algorithm, encoding string) error {
	selection, err := compression.NewSelection(algorithm, encoding)
	if err != nil {
		return err
	}
	t.selection = selection
	return nil
}

// CompressDefault selects gzip with the zlib encoding.
func (t *Transform) CompressDefault() {
	t.selection = compression.DefaultSelection()
}

// Decompress does nothing. Decoding discovers compression from the
// footprint; the method exists so call chains read the same in both
// directions.
func (t *Transform) Decompress() {}

// Encrypt configures the stream cipher. The key is copied into locked
// memory; the caller keeps ownership of the slice. An empty method
// selects crypt.DefaultMethod. Calling Encrypt again replaces the
// previous key.
func (t *Transform) Encrypt(key []byte, method string) error {
	if len(key) == 0 {
		return fault.InvalidParameter("encryption key cannot be empty")
	}
	resolved, err := crypt.LookupMethod(method)
	if err != nil {
		return err
	}
	password, err := secret.Clone(key)
	if err != nil {
		return fault.Crypt("protecting key: %w", err)
	}
	t.releasePassword()
	t.method = resolved
	t.password = password
	return nil
}

// Decrypt is Encrypt under the name that reads naturally on a decode
// transform.
func (t *Transform) Decrypt(key []byte, method string) error {
	return t.Encrypt(key, method)
}

// Close releases the key material. The transform cannot encrypt or
// decrypt afterwards.
func (t *Transform) Close() error {
	return t.releasePassword()
}

func (t *Transform) releasePassword() error {
	if t.password == nil {
		return nil
	}
	err := t.password.Close()
	t.password = nil
	return err
}
