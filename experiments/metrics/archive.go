package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// MoveRow is one ply of a finished game, stored for later analysis or
// training. Stones lists every stone after the move as x, y pairs, the
// owner in StoneOwner (0 for the first player, 1 for the second).
type MoveRow struct {
	GameID     string  `parquet:"game_id,dict"`
	Step       int32   `parquet:"step"`
	Player     string  `parquet:"player,dict"`
	MoveX      int32   `parquet:"move_x"`
	MoveY      int32   `parquet:"move_y"`
	Value      int64   `parquet:"value"`
	Captures   []int32 `parquet:"captures"` // running pair counts, first player then second
	StoneX     []int32 `parquet:"stone_x"`
	StoneY     []int32 `parquet:"stone_y"`
	StoneOwner []int32 `parquet:"stone_owner"`
	Nodes      int64   `parquet:"nodes"`
	Depth      int32   `parquet:"depth"`
	Outcome    string  `parquet:"outcome,dict"`
	Winner     string  `parquet:"winner,dict,optional"`
}

// WriteArchive writes rows to outPath through a temp file and an atomic
// rename.
func WriteArchive(outPath string, rows []MoveRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "pente_move_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func ReadArchive(path string) ([]MoveRow, error) {
	rows, err := parquet.ReadFile[MoveRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
