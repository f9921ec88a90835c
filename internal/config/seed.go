package config

import (
    "fmt"
    "os"

    "gopkg.in/yaml.v3"

    "github.com/iliyamo/studio-booking/internal/model"
)

// SeedItem is one equipment entry in the seed file.
type SeedItem struct {
    Name      string `yaml:"name"`
    Quantity  int    `yaml:"quantity"`
    Available int    `yaml:"available"`
}

// seedFile is the layout of SEED_FILE:
//
//   equipment:
//     - name: DSLR Camera
//       quantity: 3
//       available: 3
type seedFile struct {
    Equipment []SeedItem `yaml:"equipment"`
}

// DefaultInventory is seeded when no SEED_FILE is configured.
var DefaultInventory = []SeedItem{
    {Name: "DSLR Camera", Quantity: 3, Available: 3},
    {Name: "Wireless Microphone", Quantity: 5, Available: 5},
    {Name: "Studio Lighting Kit", Quantity: 2, Available: 2},
    {Name: "Camera Tripod", Quantity: 4, Available: 4},
    {Name: "Green Screen", Quantity: 1, Available: 1},
    {Name: "Audio Mixer", Quantity: 2, Available: 2},
    {Name: "Camera Gimbal", Quantity: 1, Available: 1},
    {Name: "Audio Recorder", Quantity: 3, Available: 3},
}

// LoadInventory returns the equipment to seed.  An empty path yields
// DefaultInventory.  Items with a blank name are rejected.
func LoadInventory(path string) ([]model.Equipment, error) {
    items := DefaultInventory
    if path != "" {
        data, err := os.ReadFile(path)
        if err != nil {
            return nil, fmt.Errorf("read seed file: %w", err)
        }
        // Allow ${VAR} references in the seed file.
        expanded := []byte(os.ExpandEnv(string(data)))
        var f seedFile
        if err := yaml.Unmarshal(expanded, &f); err != nil {
            return nil, fmt.Errorf("parse seed file %s: %w", path, err)
        }
        items = f.Equipment
    }
    out := make([]model.Equipment, 0, len(items))
    for i, it := range items {
        if it.Name == "" {
            return nil, fmt.Errorf("seed item %d: name is required", i+1)
        }
        out = append(out, model.Equipment{Name: it.Name, Quantity: it.Quantity, Available: it.Available})
    }
    return out, nil
}
