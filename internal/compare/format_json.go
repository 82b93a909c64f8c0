package compare

import (
	"github.com/goccy/go-json"
)

// JSONFormatter formats comparison results as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a comparison set.
func (jf *JSONFormatter) Format(cs *ComparisonSet) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(cs, "", "  ")
	} else {
		data, err = json.Marshal(cs)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
