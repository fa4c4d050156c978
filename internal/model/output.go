package model

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/plasmagm/airgm/internal/constants"
	"github.com/plasmagm/airgm/internal/utils"
)

// State rows: densities of species 1..NoSpecies, then time and step
// number. The file doubles as the restart source: Resume picks up the
// last complete row.

func (m *GlobalModel) stateFilePath(outputPath, modelName string) string {
	if m.Parameters.MakeDir {
		return outputPath + modelName + "/state.csv"
	}
	return outputPath + modelName + "_state.csv"
}

func (m *GlobalModel) openStateFile(outputPath, modelName string) (*os.File, error) {
	path := m.stateFilePath(outputPath, modelName)
	if m.Parameters.MakeDir {
		if err := os.MkdirAll(outputPath+modelName, 0750); err != nil {
			return nil, err
		}
	}
	if m.Parameters.Resume {
		if err := m.ReadState(path); err != nil {
			logrus.Warnf("state file not resumable, starting fresh: %v", err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, err
	}
	if m.simulationTime == 0. {
		header := make([]string, 0, constants.NoSpecies+2)
		for i := 1; i <= constants.NoSpecies; i++ {
			header = append(header, "#"+m.Species[i].Formula())
		}
		header = append(header, "Time(s)", "StepNo")
		if _, err := fmt.Fprintln(file, strings.Join(header, ",")); err != nil {
			file.Close()
			return nil, err
		}
	}
	return file, nil
}

func (m *GlobalModel) maybeSaveState(out *os.File) error {
	if m.stepCount%m.saveIntervalStep() != 0 || m.simulationTime <= m.lastSavedTime {
		return nil
	}
	row := make([]string, 0, constants.NoSpecies+2)
	for i := 1; i <= constants.NoSpecies; i++ {
		row = append(row, strconv.FormatFloat(m.Species[i].Density(), 'g', 6, 64))
	}
	row = append(row, strconv.FormatFloat(m.simulationTime, 'g', 6, 64), strconv.Itoa(m.stepCount))
	if _, err := fmt.Fprintln(out, strings.Join(row, ",")); err != nil {
		return err
	}
	if m.Parameters.Verbose {
		logrus.Infof("t=%g step=%d Te=%g K", m.simulationTime, m.stepCount, m.electronTemperature)
	}
	return nil
}

// ReadState restores densities, simulation time and step count from the
// last saved row of a state file.
func (m *GlobalModel) ReadState(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var dataLine string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 50 && !strings.HasPrefix(line, "#") {
			dataLine = line
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if dataLine == "" {
		return fmt.Errorf("no state rows in %s", path)
	}

	fields := strings.Split(dataLine, ",")
	if len(fields) < constants.NoSpecies+2 {
		return fmt.Errorf("state row has %d fields, want %d", len(fields), constants.NoSpecies+2)
	}
	values := make([]float64, constants.NoSpecies+2)
	for i := range values {
		values[i], err = strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return fmt.Errorf("state field %d: %w", i, err)
		}
	}

	totalDensity := 0.
	for i := 1; i <= constants.NoSpecies; i++ {
		totalDensity += values[i-1]
		m.Species[i].SetDensity(values[i-1])
	}
	m.Species[0].SetDensity(totalDensity)
	m.simulationTime = values[constants.NoSpecies]
	m.lastSavedTime = m.simulationTime
	m.stepCount = int(values[constants.NoSpecies+1])
	return nil
}

// ReactionRows lists the configured reactions with their current rates
// and species formulas, one row per reaction.
func (m *GlobalModel) ReactionRows() utils.CSV {
	rows := make(utils.CSV, 0, len(m.indices))
	for _, j := range m.indices {
		r := m.reactions[j]
		row := []string{strconv.Itoa(j), strconv.FormatFloat(r.Rate(), 'g', -1, 64)}
		for k := 1; k <= constants.MaxReactionSpecies; k++ {
			formula := ""
			if reactant, err := r.Reactant(k); err == nil {
				formula = m.Species[reactant].Formula()
			}
			row = append(row, formula)
		}
		row = append(row, "--->")
		for k := 1; k <= constants.MaxReactionSpecies; k++ {
			formula := ""
			if product, err := r.Product(k); err == nil {
				formula = m.Species[product].Formula()
			}
			row = append(row, formula)
		}
		rows = append(rows, row)
	}
	return rows
}
