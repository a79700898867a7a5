package serializer

import (
	"maps"
	"slices"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tarantool/go-serializer/binarycodec"
	"github.com/tarantool/go-serializer/codec"
	"github.com/tarantool/go-serializer/internal/options"
	"github.com/tarantool/go-serializer/xmlcodec"
)

type config struct {
	codecs map[Format]codec.Codec
	fs     afero.Fs
	logger *zap.Logger
}

func defaultConfig() config {
	return config{
		codecs: map[Format]codec.Codec{
			Binary: binarycodec.New(),
			XML:    xmlcodec.New(),
		},
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
}

// WithCodec registers c under format, replacing the codec registered before.
// A nil codec unregisters the format.
func WithCodec(format Format, c codec.Codec) options.OptionCallback[config] {
	return func(cfg *config) {
		if c == nil {
			delete(cfg.codecs, format)
			return
		}

		cfg.codecs[format] = c
	}
}

// WithFs makes file operations use fs instead of the OS filesystem.
func WithFs(fs afero.Fs) options.OptionCallback[config] {
	return func(cfg *config) {
		if fs != nil {
			cfg.fs = fs
		}
	}
}

// WithLogger sets the logger used to report dispatches and failures.
func WithLogger(logger *zap.Logger) options.OptionCallback[config] {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Serializer dispatches calls to the codec registered for a format.
// The codec registry is fixed at construction.
type Serializer struct {
	codecs map[Format]codec.Codec
	fs     afero.Fs
	logger *zap.Logger
}

// New creates a Serializer with Binary and XML codecs registered.
func New(opts ...options.OptionCallback[config]) *Serializer {
	cfg := options.ApplyOptions[config](defaultConfig, opts)

	return &Serializer{
		codecs: maps.Clone(cfg.codecs),
		fs:     cfg.fs,
		logger: cfg.logger,
	}
}

// Formats returns the registered formats in ascending order.
func (s *Serializer) Formats() []Format {
	return slices.Sorted(maps.Keys(s.codecs))
}

func (s *Serializer) dispatch(op string, format Format) (codec.Codec, *zap.Logger, error) {
	logger := s.logger.With(zap.String("op", op), zap.Stringer("format", format))

	c, ok := s.codecs[format]
	if !ok {
		return nil, logger, s.fail(logger, errUnknownFormat(format))
	}

	logger.Debug("dispatching", zap.String("codec", c.Name()))

	return c, logger, nil
}

func (s *Serializer) fail(logger *zap.Logger, err error) error {
	logger.Warn("serialization call failed", zap.Error(err))
	return err
}

// Serialize encodes value into the text form of format.
// A nil value is rejected before any codec is invoked.
func (s *Serializer) Serialize(value any, format Format, opts ...codec.Option) (string, error) {
	if err := codec.CheckValue(value); err != nil {
		return "", s.fail(s.logger.With(zap.String("op", "serialize")), err)
	}

	c, logger, err := s.dispatch("serialize", format)
	if err != nil {
		return "", err
	}

	text, err := c.MarshalText(value, codec.NewOptions(opts...))
	if err != nil {
		return "", s.fail(logger, err)
	}

	return text, nil
}

// SerializeToFile encodes value into a newly created file at path,
// truncating an existing one.
func (s *Serializer) SerializeToFile(value any, format Format, path string, opts ...codec.Option) error {
	if err := codec.CheckValue(value); err != nil {
		return s.fail(s.logger.With(zap.String("op", "serialize_file")), err)
	}

	c, logger, err := s.dispatch("serialize_file", format)
	if err != nil {
		return err
	}

	logger = logger.With(zap.String("path", path))

	if path == "" {
		return s.fail(logger, codec.NewInvalidArgumentError("empty file path"))
	}

	if err := c.MarshalFile(s.fs, path, value, codec.NewOptions(opts...)); err != nil {
		return s.fail(logger, err)
	}

	return nil
}

// Deserialize decodes text in format into out, which must be a non-nil pointer.
func (s *Serializer) Deserialize(text string, format Format, out any, opts ...codec.Option) error {
	c, logger, err := s.dispatch("deserialize", format)
	if err != nil {
		return err
	}

	if err := codec.CheckOut(out); err != nil {
		return s.fail(logger, err)
	}

	if err := c.UnmarshalText(text, out, codec.NewOptions(opts...)); err != nil {
		return s.fail(logger, err)
	}

	return nil
}

// DeserializeFile decodes the file at path in format into out, which must be
// a non-nil pointer.
func (s *Serializer) DeserializeFile(path string, format Format, out any, opts ...codec.Option) error {
	c, logger, err := s.dispatch("deserialize_file", format)
	if err != nil {
		return err
	}

	logger = logger.With(zap.String("path", path))

	if err := codec.CheckOut(out); err != nil {
		return s.fail(logger, err)
	}

	if err := c.UnmarshalFile(s.fs, path, out, codec.NewOptions(opts...)); err != nil {
		return s.fail(logger, err)
	}

	return nil
}
