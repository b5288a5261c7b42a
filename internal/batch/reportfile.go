// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/QuantumsKid/stat-q/pkg/types"
)

// ReportFile is the on-disk representation of one extraction run. Writing
// it is optional; the console output remains the primary interface.
type ReportFile struct {
	SourceDirectory      string             `yaml:"source_directory"`
	DestinationDirectory string             `yaml:"destination_directory"`
	Files                []types.FileResult `yaml:"files"`
	Summary              ReportSummary      `yaml:"summary"`
}

// ReportSummary stores run statistics and a timestamp.
type ReportSummary struct {
	Extracted int       `yaml:"extracted"`
	Failed    int       `yaml:"failed"`
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReportFile saves the run outcome to a YAML file at path.
func WriteReportFile(path, srcDir, dstDir string, result BatchResult) error {
	rf := ReportFile{
		SourceDirectory:      srcDir,
		DestinationDirectory: dstDir,
		Files:                result.Results,
		Summary: ReportSummary{
			Extracted: result.Extracted,
			Failed:    result.Failed,
			Total:     result.Total(),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously written run report from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
