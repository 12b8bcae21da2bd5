package spec

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the job file LoadProject looks for.
const FileName = "job.yaml"

// Load reads a job spec from a YAML file.
func Load(path string) (*JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: "spec.load", Kind: KindNotFound, Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes job YAML. Unknown keys are rejected so a misspelled
// measurement does not silently price as zero.
func Parse(path string, data []byte) (*JobSpec, error) {
	var s JobSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, &OpError{Op: "spec.parse", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return &s, nil
}

// LoadProject loads a job spec from a project directory.
// It looks for job.yaml in the given directory.
func LoadProject(projectDir string) (*JobSpec, error) {
	return Load(filepath.Join(projectDir, FileName))
}
