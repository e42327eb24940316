package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Rasterizer  RasterizerConfig  `yaml:"rasterizer"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// PathsConfig holds the directory conventions. They live entirely at this
// layer: the core engine only sees in-memory cue lists, timestamp lists and
// slide image sequences.
type PathsConfig struct {
	TranscriptInput  string `yaml:"transcript_input"`
	TranscriptOutput string `yaml:"transcript_output"`
	LectureInput     string `yaml:"lecture_input"`
	LectureOutput    string `yaml:"lecture_output"`
	Temp             string `yaml:"temp"`
}

type RasterizerConfig struct {
	RenderBinary string `yaml:"render_binary"`
	InfoBinary   string `yaml:"info_binary"`
	DPI          int    `yaml:"dpi"`
}

type OutputConfig struct {
	TranscriptPrefix string `yaml:"transcript_prefix"`
	LecturePrefix    string `yaml:"lecture_prefix"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.TranscriptInput == "" {
		return fmt.Errorf("paths.transcript_input is required")
	}
	if c.Paths.TranscriptOutput == "" {
		return fmt.Errorf("paths.transcript_output is required")
	}
	if c.Paths.LectureInput == "" {
		return fmt.Errorf("paths.lecture_input is required")
	}
	if c.Paths.LectureOutput == "" {
		return fmt.Errorf("paths.lecture_output is required")
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Rasterizer.RenderBinary == "" {
		c.Rasterizer.RenderBinary = "pdftoppm"
	}
	if c.Rasterizer.InfoBinary == "" {
		c.Rasterizer.InfoBinary = "pdfinfo"
	}
	if c.Rasterizer.DPI == 0 {
		c.Rasterizer.DPI = 150
	}
	if c.Output.TranscriptPrefix == "" {
		c.Output.TranscriptPrefix = "converted_"
	}
	if c.Output.LecturePrefix == "" {
		c.Output.LecturePrefix = "MULTIMEDIA_"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
