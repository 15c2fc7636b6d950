// SPDX-License-Identifier: MIT

package driver

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rijkvp/tsp/matrix"
	"github.com/rijkvp/tsp/tsp"
)

// Job describes one solve:
//
//	algorithm: annealing
//	seed: 7
//	cities:
//	  - [0, 0]
//	  - [3, 4]
//	annealing:
//	  start_temperature: 30
//
// Annealing fields left out keep their defaults.
type Job struct {
	Algorithm tsp.Kind            `yaml:"algorithm"`
	Seed      int64               `yaml:"seed"`
	Cities    [][2]float64        `yaml:"cities"`
	Annealing tsp.AnnealingConfig `yaml:"annealing"`
}

// LoadJob decodes and validates a YAML job. Unknown keys are rejected.
func LoadJob(r io.Reader) (Job, error) {
	job := Job{Annealing: tsp.DefaultAnnealingConfig()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Job{}, fmt.Errorf("%w: empty document", ErrInvalidJob)
		}

		return Job{}, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	if err := job.Validate(); err != nil {
		return Job{}, err
	}

	return job, nil
}

// Points converts the city pairs to matrix.City values.
func (j Job) Points() []matrix.City {
	out := make([]matrix.City, len(j.Cities))
	for i, c := range j.Cities {
		out[i] = matrix.Pt(c[0], c[1])
	}

	return out
}

// Validate checks the algorithm, the cities and, for annealing, the schedule.
func (j Job) Validate() error {
	switch j.Algorithm {
	case tsp.BruteForceKind, tsp.AnnealingKind:
	default:
		return fmt.Errorf("%w: algorithm %v", ErrInvalidJob, j.Algorithm)
	}
	if err := matrix.ValidateCities(j.Points()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if j.Algorithm == tsp.AnnealingKind {
		if err := j.Annealing.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJob, err)
		}
	}

	return nil
}

// Build constructs the solver the job describes.
func (j Job) Build() (tsp.Algorithm, error) {
	return tsp.New(j.Algorithm, j.Points(),
		tsp.WithSeed(j.Seed),
		tsp.WithAnnealingConfig(j.Annealing),
	)
}
