// Command seed bulk-loads the places dataset from a directory of chunked
// JSON files into PostgreSQL. The load is idempotent: rows whose id already
// exists are skipped, so re-running after a partial load is safe.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/places-service/internal/config"
	"github.com/places-service/internal/pkg/logger"
	"go.uber.org/zap"
)

const createPlacesTable = `
CREATE TABLE IF NOT EXISTS places (
	id           BIGINT PRIMARY KEY,
	country      CHAR(2),
	zipcode      CHAR(5),
	name         VARCHAR(255),
	region       VARCHAR(255),
	short_region CHAR(2),
	lat          DECIMAL(10, 6),
	lon          DECIMAL(10, 6),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_places_zipcode ON places (zipcode);
CREATE INDEX IF NOT EXISTS idx_places_name ON places (name);
`

// seedPlace mirrors one dataset record. The upstream export carries numbers
// as strings.
type seedPlace struct {
	ID          json.Number `json:"id"`
	Country     string      `json:"country"`
	Zipcode     string      `json:"zipcode"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	ShortRegion string      `json:"short_region"`
	Lat         json.Number `json:"lat"`
	Lon         json.Number `json:"lon"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dir := "./places"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDatabaseDSN())
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, createPlacesTable); err != nil {
		log.Fatal("Failed to create places table", zap.Error(err))
	}

	files, err := chunkFiles(dir)
	if err != nil {
		log.Fatal("Failed to list chunk files", zap.String("dir", dir), zap.Error(err))
	}
	if len(files) == 0 {
		log.Warn("No chunk files found", zap.String("dir", dir))
		return
	}

	existing, err := existingIDs(ctx, pool)
	if err != nil {
		log.Fatal("Failed to load existing ids", zap.Error(err))
	}
	log.Info("Seeding places",
		zap.Int("chunk_files", len(files)),
		zap.Int("existing_rows", len(existing)))

	var total int64
	start := time.Now()
	for _, file := range files {
		inserted, err := loadChunk(ctx, pool, file, existing)
		if err != nil {
			log.Fatal("Failed to load chunk", zap.String("file", file), zap.Error(err))
		}
		if inserted == 0 {
			log.Info("Chunk skipped, all rows present", zap.String("file", filepath.Base(file)))
			continue
		}
		total += inserted
		log.Info("Chunk imported",
			zap.String("file", filepath.Base(file)),
			zap.Int64("rows", inserted))
	}

	log.Info("Seeding complete",
		zap.Int64("rows_inserted", total),
		zap.Duration("elapsed", time.Since(start)))
}

func chunkFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func existingIDs(ctx context.Context, pool *pgxpool.Pool) (map[int64]struct{}, error) {
	rows, err := pool.Query(ctx, `SELECT id FROM places`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func loadChunk(ctx context.Context, pool *pgxpool.Pool, file string, existing map[int64]struct{}) (int64, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}

	var places []seedPlace
	if err := json.Unmarshal(data, &places); err != nil {
		return 0, fmt.Errorf("parse %s: %w", file, err)
	}

	rows := make([][]interface{}, 0, len(places))
	for _, p := range places {
		id, err := p.ID.Int64()
		if err != nil {
			continue
		}
		if _, ok := existing[id]; ok {
			continue
		}
		existing[id] = struct{}{}

		rows = append(rows, []interface{}{
			id,
			p.Country,
			p.Zipcode,
			p.Name,
			p.Region,
			p.ShortRegion,
			parseCoord(p.Lat),
			parseCoord(p.Lon),
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return pool.CopyFrom(
		ctx,
		pgx.Identifier{"places"},
		[]string{"id", "country", "zipcode", "name", "region", "short_region", "lat", "lon"},
		pgx.CopyFromRows(rows),
	)
}

// parseCoord returns nil for missing or unparseable coordinates so they load
// as NULL.
func parseCoord(n json.Number) interface{} {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return v
}
