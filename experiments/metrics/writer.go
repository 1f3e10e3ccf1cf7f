package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "grid_size", "policy", "outcome", "player1_score", "player2_score",
		"attempts", "expansions", "leaps", "skips", "conversions", "start_time", "end_time", "duration"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.GridSize),
			record.Policy,
			record.Result.Outcome.String(),
			strconv.Itoa(record.Result.Player1Score),
			strconv.Itoa(record.Result.Player2Score),
			strconv.Itoa(record.Attempts),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Leaps),
			strconv.Itoa(record.Skips),
			strconv.Itoa(record.Conversions),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}

	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "tick", "player", "kind", "target_x", "target_y", "origin_x", "origin_y",
		"conversions", "player1_score", "player2_score"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Tick),
			record.Player.String(),
			record.Kind.String(),
			strconv.Itoa(record.Target.X),
			strconv.Itoa(record.Target.Y),
			strconv.Itoa(record.Origin.X),
			strconv.Itoa(record.Origin.Y),
			strconv.Itoa(record.Conversions),
			strconv.Itoa(record.Player1Score),
			strconv.Itoa(record.Player2Score),
		})
	}

	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
