package campaign

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlCampaignFile is the top-level YAML structure for campaign manifests.
type yamlCampaignFile struct {
	Campaign yamlCampaign `yaml:"campaign"`
}

// yamlCampaign is the YAML representation of a campaign.
type yamlCampaign struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Levels      []yamlLevel `yaml:"levels"`
}

// yamlLevel is the YAML representation of one level entry.
type yamlLevel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// LoadFromFile reads and validates a campaign manifest.
//
// Precondition: path must point to a valid YAML campaign file.
// Postcondition: Returns a validated Campaign or a non-nil error.
func LoadFromFile(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading campaign file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a campaign from YAML bytes.
//
// Postcondition: Returns a validated Campaign or a non-nil error.
func LoadFromBytes(data []byte) (*Campaign, error) {
	var file yamlCampaignFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing campaign YAML: %w", err)
	}

	c := &Campaign{
		ID:          file.Campaign.ID,
		Name:        file.Campaign.Name,
		Description: file.Campaign.Description,
	}
	for _, yl := range file.Campaign.Levels {
		c.Levels = append(c.Levels, Level{ID: yl.ID, Name: yl.Name, File: yl.File})
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating campaign: %w", err)
	}
	return c, nil
}
