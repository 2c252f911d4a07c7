// fixture describes the expected behavior of the stack array program (using
// toml) and checks and reports a run against it.
//
// See [Config] for the format of the toml file.
package fixture

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/goose-lang/stackarr"
)

//go:embed fixture.toml
var embedded []byte

// ErrAssertion is returned by [Config.Check] when a run does not produce the
// expected result.
var ErrAssertion = errors.New("assertion failed")

// Config defines the format of the toml file.
type Config struct {
	// Fixture name. Defaults to "complex_stack_array_coerce".
	Name string `toml:"name"`
	// Name of the generated file this fixture was lowered to.
	Output string `toml:"output"`
	// Expected sum. Defaults to 69+420.
	Sum int32 `toml:"sum"`
	// Labels for the reported lines.
	Labels Labels `toml:"labels"`
}

type Labels struct {
	Val1 string `toml:"val1"`
	Val2 string `toml:"val2"`
	Sum  string `toml:"sum"`
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "complex_stack_array_coerce"
	}
	if c.Output == "" {
		c.Output = c.Name + ".c"
	}
	if c.Sum == 0 {
		c.Sum = stackarr.Expected
	}
	if c.Labels.Val1 == "" {
		c.Labels.Val1 = "val1"
	}
	if c.Labels.Val2 == "" {
		c.Labels.Val2 = "val2"
	}
	if c.Labels.Sum == "" {
		c.Labels.Sum = "stackArr sum"
	}
}

// ParseConfig decodes a fixture description. Unknown keys are an error; missing
// keys take their defaults, so an empty document is valid.
func ParseConfig(raw []byte) (c Config, err error) {
	d := toml.NewDecoder(bytes.NewReader(raw))
	d.DisallowUnknownFields()
	if err = d.Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "fixture config")
	}
	c.setDefaults()
	return c, nil
}

// Load returns the fixture description built into the program.
func Load() Config {
	c, err := ParseConfig(embedded)
	if err != nil {
		panic(fmt.Sprintf("could not parse config: %s", err))
	}
	return c
}

// Check verifies the post-condition of a run: sum must be the expected value
// and must agree with the cells it was computed from.
func (c Config) Check(cells stackarr.Cells, sum int32) error {
	if sum != c.Sum {
		return errors.Wrapf(ErrAssertion, "%s: sum %d != %d", c.Name, sum, c.Sum)
	}
	if got := cells.Sum(); got != sum {
		return errors.Wrapf(ErrAssertion, "%s: %s + %s = %d, but run returned %d",
			c.Name, c.Labels.Val1, c.Labels.Val2, got, sum)
	}
	return nil
}

// Report writes the final cell values and the sum, one per line.
func (c Config) Report(w io.Writer, cells stackarr.Cells, sum int32) error {
	_, err := fmt.Fprintf(w, "%s: %d\n%s: %d\n%s: %d\n",
		c.Labels.Val1, cells.Val1,
		c.Labels.Val2, cells.Val2,
		c.Labels.Sum, sum)
	return errors.Wrap(err, "report")
}
