package heating

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hheat/hheat/internal/hive"
)

// Output formats for the status command
const (
	FormatDetailed = "detailed"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// FireIndicator is shown after the target while the boiler is firing.
const FireIndicator = "🔥"

// Status is the machine-readable status document.
type Status struct {
	Mode        string  `json:"mode" yaml:"mode"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Target      float64 `json:"target" yaml:"target"`
	Working     bool    `json:"working" yaml:"working"`
	Heating     bool    `json:"heating" yaml:"heating"`
}

// IsHeating reports whether the fire indicator applies: the boiler is working
// and the heating is not switched off.
func IsHeating(d *hive.HeatingDevice) bool {
	return d.Props.Working && d.State.Mode != hive.ModeOff
}

// NewStatus extracts the status document from a device.
func NewStatus(d *hive.HeatingDevice) Status {
	return Status{
		Mode:        strings.ToLower(string(d.State.Mode)),
		Temperature: d.Props.Temperature,
		Target:      d.State.Target,
		Working:     d.Props.Working,
		Heating:     IsHeating(d),
	}
}

// FormatStatus returns the three-line status display.
func FormatStatus(d *hive.HeatingDevice) string {
	indicator := ""
	if IsHeating(d) {
		indicator = FireIndicator
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mode          %8s\n", strings.ToLower(string(d.State.Mode)))
	fmt.Fprintf(&b, "Temperature   %7.1f°\n", d.Props.Temperature)
	fmt.Fprintf(&b, "Target        %7.1f° %s\n", d.State.Target, indicator)
	return b.String()
}

// WriteStatus writes the device status to w in the given format.
func WriteStatus(w io.Writer, d *hive.HeatingDevice, format string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(NewStatus(d), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(NewStatus(d))
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatDetailed, "":
		_, err := io.WriteString(w, FormatStatus(d))
		return err
	default:
		return fmt.Errorf("%w: unknown format %q (use detailed, json or yaml)", ErrInvalidArgument, format)
	}
}
