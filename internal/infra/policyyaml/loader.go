package policyyaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/codebatai/pf-verify/internal/domain"
)

// Decoder is the parsing capability behind policy loading. It is
// optional: a Loader holding a nil Decoder downgrades every policy
// file to an empty policy instead of failing the run.
type Decoder interface {
	Decode(data []byte) (domain.Policy, error)
}

// YAML decodes policy documents with gopkg.in/yaml.v3. The document
// must be a mapping; an empty document decodes to an empty policy.
type YAML struct{}

func (YAML) Decode(data []byte) (domain.Policy, error) {
	var policy domain.Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, err
	}
	if policy == nil {
		policy = domain.Policy{}
	}
	return policy, nil
}

// Loader reads optional policy files from disk. The file must exist
// whenever a path is given, decoder or not.
type Loader struct {
	Decoder Decoder
}

func (l Loader) Load(path string) (domain.Policy, error) {
	if l.Decoder == nil {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", domain.ErrPolicyNotFound, path)
			}
			return nil, fmt.Errorf("stat policy: %w", err)
		}
		return domain.Policy{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPolicyNotFound, path)
		}
		return nil, fmt.Errorf("read policy: %w", err)
	}
	policy, err := l.Decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPolicyDecode, err)
	}
	return policy, nil
}
