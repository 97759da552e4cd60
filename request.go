package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Prescription Request
// ---------------------------------------------------------------------------

// Request is the input file of one run: a patient and the prescriptions to print.
type Request struct {
	Filename      string         `yaml:"filename"`
	Patient       Patient        `yaml:"patient"`
	Prescriptions []Prescription `yaml:"prescriptions"`
}

// loadRequest reads and validates a YAML request file.
func loadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}

	if strings.TrimSpace(req.Patient.Name) == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if len(req.Prescriptions) == 0 {
		return nil, ErrNoPrescriptions
	}
	for i, rx := range req.Prescriptions {
		if rx.Renewals < 0 {
			return nil, fmt.Errorf("prescription %d: renewals must not be negative", i+1)
		}
	}

	return &req, nil
}
