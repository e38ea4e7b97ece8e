package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"randomwalk/estimator"
	"strconv"
	"time"
)

type EstimateRecord struct {
	Kind       estimator.Kind
	Checkpoint int // Episodes completed before the snapshot
	State      int
	Value      float64
}

type ErrorRecord struct {
	Kind    estimator.Kind
	Alpha   float64
	Episode int
	Error   float64 // Mean absolute error over interior states, averaged over runs
}

type Setup struct {
	Seed               uint64        `json:"seed"`
	Checkpoints        []int         `json:"checkpoints"`
	TrajectoryEpisodes int           `json:"trajectoryEpisodes"`
	Episodes           int           `json:"episodes"`
	Runs               int           `json:"runs"`
	TDAlphas           []float64     `json:"tdAlphas"`
	MCAlphas           []float64     `json:"mcAlphas"`
	StartTime          time.Time     `json:"startTime"`
	EndTime            time.Time     `json:"endTime"`
	Duration           time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	return NewWriterAt(filepath.Join(root, timestamp))
}

func NewWriterAt(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// Path joins name onto the writer's directory.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.baseDir, name)
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.Duration = setup.EndTime.Sub(setup.StartTime)

	f, err := os.Create(w.Path("setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteEstimates(kind estimator.Kind, records []EstimateRecord) error {
	header := []string{"kind", "checkpoint", "state", "value"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Kind.String(),
			strconv.Itoa(record.Checkpoint),
			strconv.Itoa(record.State),
			formatFloat(record.Value),
		})
	}

	filename := fmt.Sprintf("estimates_%s.csv", kind)
	if err := w.writeCSV(filename, header, rows); err != nil {
		return fmt.Errorf("failed to write %s estimates: %w", kind, err)
	}
	return nil
}

func (w *Writer) WriteErrors(records []ErrorRecord) error {
	header := []string{"kind", "alpha", "episode", "error"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Kind.String(),
			formatFloat(record.Alpha),
			strconv.Itoa(record.Episode),
			formatFloat(record.Error),
		})
	}

	if err := w.writeCSV("errors.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write error curves: %w", err)
	}
	return nil
}

func (w *Writer) WriteRunMetrics(records []RunMetric) error {
	header := []string{"kind", "alpha", "runs", "episodes", "total_steps", "mean_steps", "right_exits", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Kind.String(),
			formatFloat(record.Alpha),
			strconv.Itoa(record.Runs),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.TotalSteps),
			formatFloat(record.MeanSteps()),
			strconv.Itoa(record.RightExits),
			record.Duration.String(),
		})
	}

	if err := w.writeCSV("metrics.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write run metrics: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) error {
	f, err := os.Create(w.Path(filename))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
