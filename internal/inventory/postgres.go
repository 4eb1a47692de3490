package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore keeps capacities in a room_inventory table. Unlike the memory and
// file backends it survives restarts and tolerates multiple processes, since
// Set is a single upsert statement.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// Init creates the table if needed and seeds missing room types with their
// default capacity. Existing rows are left untouched.
func (s *PGStore) Init(ctx context.Context, defaults map[string]int) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS room_inventory (
		room_type TEXT PRIMARY KEY,
		capacity INT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create room_inventory: %w", err)
	}
	for roomType, capacity := range defaults {
		_, err := s.db.Exec(ctx, `INSERT INTO room_inventory (room_type, capacity)
			VALUES ($1, $2) ON CONFLICT (room_type) DO NOTHING`, roomType, capacity)
		if err != nil {
			return fmt.Errorf("seed room_inventory %s: %w", roomType, err)
		}
	}
	return nil
}

func (s *PGStore) Get(ctx context.Context, roomType string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT capacity FROM room_inventory WHERE room_type=$1`, roomType).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("unknown room type %q", roomType)
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *PGStore) Set(ctx context.Context, roomType string, count int) error {
	_, err := s.db.Exec(ctx, `INSERT INTO room_inventory (room_type, capacity)
		VALUES ($1, $2)
		ON CONFLICT (room_type) DO UPDATE SET capacity = EXCLUDED.capacity`, roomType, count)
	return err
}

func (s *PGStore) All(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.Query(ctx, `SELECT room_type, capacity FROM room_inventory`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var roomType string
		var capacity int
		if err := rows.Scan(&roomType, &capacity); err != nil {
			return nil, err
		}
		counts[roomType] = capacity
	}
	return counts, rows.Err()
}

var _ Store = (*PGStore)(nil)
