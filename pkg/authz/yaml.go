package authz

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseMatrixYAML decodes a group-to-permissions mapping from YAML. Typical
// use is shipping the default matrix as a config file and feeding the result
// to Matrix.Seed at startup:
//
//	admin:
//	  - admin.access
//	  - users.*
//	beta:
//	  - beta.access
func ParseMatrixYAML(data []byte) (map[string][]string, error) {
	matrix := make(map[string][]string)
	if err := yaml.Unmarshal(data, &matrix); err != nil {
		return nil, fmt.Errorf("authz: parse matrix yaml: %w", err)
	}
	return matrix, nil
}
