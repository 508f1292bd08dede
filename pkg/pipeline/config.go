package pipeline

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

// LoadOptions reads a TOML configuration file on top of [Defaults].
// Keys missing from the file keep their default values; unknown keys are
// rejected so that typos do not pass silently.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Options{}, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "config file not found: %s", path).
			WithRemediation("run 'logogif config > %s' to write the default configuration", path)
	}
	if err != nil {
		return Options{}, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "open config %s", path)
	}
	defer f.Close()
	return DecodeOptions(f)
}

// DecodeOptions decodes TOML from r on top of [Defaults].
func DecodeOptions(r io.Reader) (Options, error) {
	opts := Defaults()
	md, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return Options{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	opts.SetDefaults()
	return opts, nil
}

// EncodeOptions writes opts as TOML.
func EncodeOptions(w io.Writer, opts Options) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(opts); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
