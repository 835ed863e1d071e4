package seeder

import "fmt"

// SeedConfig controls a single load run.
type SeedConfig struct {
	Count   int   // sample count N for independent entities
	Workers int   // concurrent inserts per stage
	Seed    int64 // 0 picks a time-based seed
}

func (c *SeedConfig) normalize() error {
	if c.Count < 1 {
		return fmt.Errorf("sample count must be at least 1, got %d", c.Count)
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
