//go:build !js

// Package scoreboard 记录每一局的结果（桌面端）
//
// 使用纯 Go 的 modernc.org/sqlite 驱动，不依赖 CGO。
// 浏览器构建没有文件系统，只保存 gdata 中的最高分。
package scoreboard

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath 默认数据库路径
const DefaultPath = "~/.astroshooter/runs.db"

// timeLayout sqlite DATETIME 的文本格式
const timeLayout = "2006-01-02 15:04:05"

// Run 一局游戏的记录
type Run struct {
	ID        int64
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Store 对局记录存储
type Store struct {
	db *sql.DB
}

// Open 打开（必要时创建）数据库
// 路径以 ~ 开头时展开为用户主目录，父目录不存在时自动创建
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scoreboard: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("scoreboard: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scoreboard: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scoreboard: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`)
	return err
}

// Close 关闭数据库
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record 保存一局的最终分数和时长
func (s *Store) Record(score int, duration time.Duration) error {
	if score < 0 {
		return fmt.Errorf("scoreboard: negative score %d", score)
	}
	if duration < 0 {
		duration = 0
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (score, duration_ms) VALUES (?, ?)",
		score, duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("scoreboard: cannot record run: %w", err)
	}
	return nil
}

// Top 返回分数最高的 limit 局，分数相同时先记录的在前
func (s *Store) Top(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("scoreboard: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond

		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse(timeLayout, v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scoreboard: row iteration error: %w", err)
	}
	return runs, nil
}

// Best 返回记录中的最高分，没有记录时返回 0
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("scoreboard: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Count 返回记录的局数
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("scoreboard: cannot count runs: %w", err)
	}
	return n, nil
}
