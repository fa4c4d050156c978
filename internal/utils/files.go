package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetFilename strips the directory and extension from a path.
func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates a csv output file for a model, either inside its own
// subdirectory (makeDir) or flat with the suffix appended to the name.
func OpenFile(makeDir bool, outputPath string, fileSuffix, modelName string) (*os.File, error) {
	if makeDir && fileSuffix != "" && fileSuffix != "." {
		if err := os.MkdirAll(outputPath+fileSuffix, 0750); err != nil {
			return nil, err
		}
		return os.Create(outputPath + fileSuffix + "/" + modelName + ".csv")
	}
	if fileSuffix == "" {
		return os.Create(outputPath + modelName + ".csv")
	}
	return os.Create(outputPath + modelName + "_" + fileSuffix + ".csv")
}
