package comparator

import (
	"io"
	"os"

	"github.com/diagram-converter/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadCheckRules parses a YAML check-rules file. A missing file is not an
// error: the built-in defaults apply.
func LoadCheckRules(filePath string) (*models.CheckRules, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultCheckRules(), nil
		}
		return nil, err
	}
	defer file.Close()

	return LoadCheckRulesFromReader(file)
}

// LoadCheckRulesFromReader parses check rules from an io.Reader. Fields the
// file omits keep their default values.
func LoadCheckRulesFromReader(r io.Reader) (*models.CheckRules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	rules := models.DefaultCheckRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, err
	}
	return rules, nil
}
